package utils

import (
	"fmt"
	"math/rand"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

// GenerateConfirmationCode builds a mock booking confirmation code such as
// "FL4821". The prefix identifies the booking type; the digits carry no
// meaning beyond being human-readable.
func GenerateConfirmationCode(prefix string) string {
	return fmt.Sprintf("%s%04d", prefix, rand.Intn(10000))
}
