package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gotham/internal/models/db_models"
)

type CategoryRepositoryInterface interface {
	CreateCategory(ctx context.Context, category db_models.Category) error
	EnsureByName(ctx context.Context, name string) error
	GetByName(ctx context.Context, name string) (*db_models.Category, error)
	GetAllCategories(ctx context.Context) ([]db_models.Category, error)
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

type CategoryRepository struct {
	db *gorm.DB
}

func (c CategoryRepository) CreateCategory(ctx context.Context, category db_models.Category) error {

	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(&category).Error; err != nil {
			return err
		}
		return nil
	})
}

// EnsureByName appends the category if it is not known yet. The set is
// append-only, so a pre-existing row is fine.
func (c CategoryRepository) EnsureByName(ctx context.Context, name string) error {
	return c.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&db_models.Category{Name: name}).Error
}

func (c CategoryRepository) GetByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (c CategoryRepository) GetAllCategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := c.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
