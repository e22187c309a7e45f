package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "tripbuddy/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int, status string) ([]dbm.Trip, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, trip *dbm.Trip) error
	Delete(ctx context.Context, tripID uuid.UUID) error
	ListDays(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error)
	ReplaceItineraryDays(ctx context.Context, tripID uuid.UUID, days []dbm.ItineraryDay) error
	CloneTrip(ctx context.Context, sourceID, newOwnerID uuid.UUID) (uuid.UUID, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int, status string) ([]dbm.Trip, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var trips []dbm.Trip
	if err := q.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *tripRepository) Update(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) Delete(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.ItineraryDay{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tripID).Delete(&dbm.Trip{}).Error
	})
}

func (r *tripRepository) ListDays(ctx context.Context, tripID uuid.UUID) ([]dbm.ItineraryDay, error) {
	var days []dbm.ItineraryDay
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day_number ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

// ReplaceItineraryDays is a full replace: every existing day for the trip is
// removed before the regenerated set is inserted, never an incremental patch.
func (r *tripRepository) ReplaceItineraryDays(ctx context.Context, tripID uuid.UUID, days []dbm.ItineraryDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.ItineraryDay{}).Error; err != nil {
			return err
		}

		for i := range days {
			days[i].TripID = tripID
		}
		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CloneTrip copies a trip and its itinerary days to a new owner. The copy gets
// fresh IDs, starts private and upcoming, and records where it came from.
func (r *tripRepository) CloneTrip(ctx context.Context, sourceID, newOwnerID uuid.UUID) (uuid.UUID, error) {
	var outID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var src dbm.Trip
		if err := tx.Where("id = ?", sourceID).
			Preload("Days").
			First(&src).Error; err != nil {
			return err
		}

		clone := dbm.Trip{
			UserID:      newOwnerID,
			Title:       "Copy of " + src.Title,
			Source:      src.Source,
			Destination: src.Destination,
			StartDate:   src.StartDate,
			EndDate:     src.EndDate,
			Budget:      src.Budget,
			IsPublic:    false,
			Status:      dbm.TripStatusUpcoming,
			ClonedFrom:  &src.ID,
			Tags:        src.Tags,
		}
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}
		outID = clone.ID

		days := make([]dbm.ItineraryDay, 0, len(src.Days))
		for _, d := range src.Days {
			days = append(days, dbm.ItineraryDay{
				TripID:     clone.ID,
				DayNumber:  d.DayNumber,
				Date:       d.Date,
				Activities: d.Activities,
			})
		}
		if len(days) > 0 {
			if err := tx.Create(&days).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return outID, err
}
