package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripbuddy/pkg/utils"
)

func TestHashPassword_roundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")

	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.NoError(t, utils.ComparePasswords(hash, "correct horse"))
	assert.Error(t, utils.ComparePasswords(hash, "wrong horse"))
}

func TestGenerateConfirmationCode(t *testing.T) {
	pattern := regexp.MustCompile(`^FL\d{4}$`)
	for i := 0; i < 50; i++ {
		code := utils.GenerateConfirmationCode("FL")
		assert.Regexp(t, pattern, code)
	}
}
