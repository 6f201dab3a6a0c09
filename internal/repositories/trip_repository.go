package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotham/internal/models/db_models"
)

// TripListRow is one saved trip annotated with its attraction count from the
// aggregate join.
type TripListRow struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	CreatedAt       int64     `json:"created_at"`
	AttractionCount int       `json:"attraction_count"`
}

type TripRepository interface {
	// CreateWithAttractions inserts the schedule row and its item rows in one
	// transaction, so a failed item insert leaves no orphaned schedule behind.
	CreateWithAttractions(ctx context.Context, trip *db_models.TripSchedule, items []db_models.ScheduledAttraction) (uuid.UUID, error)

	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]TripListRow, error)
	GetActiveByID(ctx context.Context, tripID string) (*db_models.TripSchedule, error)
	ListAttractionsBySchedule(ctx context.Context, tripID string) ([]db_models.ScheduledAttraction, error)

	Deactivate(ctx context.Context, tripID string) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateWithAttractions(
	ctx context.Context,
	trip *db_models.TripSchedule,
	items []db_models.ScheduledAttraction,
) (uuid.UUID, error) {

	var outID uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}
		outID = trip.ID

		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ScheduleID = trip.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	return outID, nil
}

func (r *tripRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]TripListRow, error) {
	var rows []TripListRow

	err := r.db.WithContext(ctx).
		Model(&db_models.TripSchedule{}).
		Select("trip_schedules.id, trip_schedules.name, trip_schedules.start_date, trip_schedules.end_date, trip_schedules.created_at, COUNT(scheduled_attractions.id) AS attraction_count").
		Joins("LEFT JOIN scheduled_attractions ON scheduled_attractions.schedule_id = trip_schedules.id AND scheduled_attractions.deleted_at IS NULL").
		Where("trip_schedules.user_id = ? AND trip_schedules.is_active = ?", userID, true).
		Group("trip_schedules.id").
		Order("trip_schedules.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tripRepository) GetActiveByID(ctx context.Context, tripID string) (*db_models.TripSchedule, error) {
	var trip db_models.TripSchedule
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", tripID, true).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListAttractionsBySchedule(ctx context.Context, tripID string) ([]db_models.ScheduledAttraction, error) {
	var items []db_models.ScheduledAttraction
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", tripID).
		Order("day_date ASC, created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Deactivate soft-deletes a trip by flipping is_active; the rows stay around.
func (r *tripRepository) Deactivate(ctx context.Context, tripID string) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.TripSchedule{}).
		Where("id = ?", tripID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAllByUser hard-deletes every schedule the user owns together with the
// scheduled rows hanging off them. Used only for account erasure.
func (r *tripRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&db_models.TripSchedule{}).
			Select("id").
			Where("user_id = ?", userID)

		if err := tx.Unscoped().
			Where("schedule_id IN (?)", sub).
			Delete(&db_models.ScheduledAttraction{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("user_id = ?", userID).
			Delete(&db_models.TripSchedule{}).Error
	})
}
