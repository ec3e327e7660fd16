package post

import (
	"context"

	"github.com/TopUP/blog/internal/core/post"
	categoryPort "github.com/TopUP/blog/internal/ports/category"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

// PostRepository is the outbound port for post persistence. Find methods
// load the owning user and category alongside the post and return (nil, nil)
// when no row matches.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	Save(ctx context.Context, p *post.Post) (*post.Post, error)
	Delete(ctx context.Context, id uint) error
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
}

type PostDTO struct {
	ID         uint                      `json:"id"`
	Title      string                    `json:"title"`
	Body       string                    `json:"body"`
	UserID     uint                      `json:"userId"`
	CategoryID uint                      `json:"categoryId"`
	User       *userPort.UserDTO         `json:"user,omitempty"`
	Category   *categoryPort.CategoryDTO `json:"category,omitempty"`
}

type CreatePostInput struct {
	Title      string
	Body       string
	CategoryID uint
	UserID     uint
}

// UpdatePostInput carries a partial update; nil fields are left unchanged.
type UpdatePostInput struct {
	Title      *string
	Body       *string
	CategoryID *uint
}
