package db_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type BookingType string

const (
	BookingTypeFlight BookingType = "flight"
	BookingTypeHotel  BookingType = "hotel"
	BookingTypeTrain  BookingType = "train"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a mock reservation: no inventory is checked and no payment is
// taken, the row just records what the user asked for.
type Booking struct {
	BaseModel
	TripID           uuid.UUID `gorm:"index"`
	UserID           uuid.UUID `gorm:"index"`
	Type             BookingType
	Details          json.RawMessage `gorm:"type:jsonb"`
	ConfirmationCode string
	Status           BookingStatus `gorm:"default:pending"`
}
