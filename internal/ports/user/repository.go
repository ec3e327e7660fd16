package user

import (
	"context"

	"github.com/TopUP/blog/internal/core/user"
)

// UserRepository is the outbound port for user persistence.
// Find methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
	FindByID(ctx context.Context, id uint) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Save(ctx context.Context, u *user.User) (*user.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserDTO is the API representation of a user. The password digest is
// deliberately absent.
type UserDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	FullName *string
	Email    *string
	Password *string
}
