package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripbuddy/internal/models/db_models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *dbm.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*dbm.Booking, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status dbm.BookingStatus) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *dbm.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*dbm.Booking, error) {
	var booking dbm.Booking
	err := r.db.WithContext(ctx).Where("id = ?", bookingID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]dbm.Booking, error) {
	var bookings []dbm.Booking
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status dbm.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}
