package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gotham/internal/models/db_models"
)

type AttractionRepository interface {
	Create(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error)
	Update(ctx context.Context, attraction *db_models.Attraction) error
	Delete(ctx context.Context, id uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.Attraction, error)
	GetByIDs(ctx context.Context, ids []string) ([]db_models.Attraction, error)
	ListApproved(ctx context.Context, filter AttractionFilter, page, pageSize int) ([]db_models.Attraction, error)
	ListPending(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]db_models.Attraction, error)
}

// AttractionFilter narrows the public catalog listing.
type AttractionFilter struct {
	Category string
	Tag      string
	Query    string // matched against the name, case-insensitive
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) Create(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(attraction).Error; err != nil {
		return uuid.Nil, err
	}
	return attraction.ID, nil
}

func (r *attractionRepository) Update(ctx context.Context, attraction *db_models.Attraction) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(attraction)
		if result.Error != nil {
			return fmt.Errorf("failed to update attraction: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *attractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Attraction{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Approve flips pending to approved. The transition is one-way; an already
// approved row is left untouched and RowsAffected reports 0.
func (r *attractionRepository) Approve(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Attraction{}).
		Where("id = ? AND status = ?", id, db_models.AttractionStatusPending).
		Update("status", db_models.AttractionStatusApproved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ---------- Reads ----------
// Read helpers share one convention: not found is a default value plus
// nil error, never gorm.ErrRecordNotFound leaking upward.

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).First(&attraction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) GetByIDs(ctx context.Context, ids []string) ([]db_models.Attraction, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListApproved(ctx context.Context, filter AttractionFilter, page, pageSize int) ([]db_models.Attraction, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", db_models.AttractionStatusApproved)

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		q = q.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.Query != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Query+"%")
	}

	var attractions []db_models.Attraction
	offset := (page - 1) * pageSize
	err := q.Order("name ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListPending(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.AttractionStatusPending).
		Order("created_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}
