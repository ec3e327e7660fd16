package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TopUP/blog/internal/core/category"
)

// CategoryRepositoryDatabase implements the category repository port on gorm.
type CategoryRepositoryDatabase struct {
	db *gorm.DB
}

func NewCategoryRepositoryDatabase(db *gorm.DB) *CategoryRepositoryDatabase {
	return &CategoryRepositoryDatabase{db: db}
}

func (repo *CategoryRepositoryDatabase) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CategoryRepositoryDatabase) FindAll(ctx context.Context) ([]*category.Category, error) {
	var categories []*category.Category
	if err := repo.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *CategoryRepositoryDatabase) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	var c category.Category
	if err := repo.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepositoryDatabase) Save(ctx context.Context, c *category.Category) (*category.Category, error) {
	if err := repo.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CategoryRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&category.Category{}, id).Error
}
