package category

import (
	"context"

	"github.com/TopUP/blog/internal/core/category"
)

// CategoryRepository is the outbound port for category persistence.
// FindByID returns (nil, nil) when no row matches.
type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) (*category.Category, error)
	FindAll(ctx context.Context) ([]*category.Category, error)
	FindByID(ctx context.Context, id uint) (*category.Category, error)
	Save(ctx context.Context, c *category.Category) (*category.Category, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// UpdateCategoryInput carries a partial update; nil fields are left unchanged.
type UpdateCategoryInput struct {
	Title *string
}
