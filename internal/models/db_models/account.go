package db_models

type Account struct {
	BaseModel
	Username     string
	Email        string `gorm:"unique"`
	PasswordHash string
	AvatarURL    string
	Bio          string
	IsHost       bool

	Trips    []Trip    `gorm:"foreignKey:UserID"`
	Posts    []Post    `gorm:"foreignKey:UserID"`
	Bookings []Booking `gorm:"foreignKey:UserID"`
}
