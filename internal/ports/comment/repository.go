package comment

import (
	"context"

	"github.com/TopUP/blog/internal/core/comment"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

// CommentRepository is the outbound port for comment persistence. Find
// methods load the authoring user alongside the comment and return (nil, nil)
// when no row matches.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	FindAll(ctx context.Context) ([]*comment.Comment, error)
	FindByID(ctx context.Context, id uint) (*comment.Comment, error)
	Save(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type CommentDTO struct {
	ID     uint              `json:"id"`
	Body   string            `json:"body"`
	UserID uint              `json:"userId"`
	PostID uint              `json:"postId"`
	User   *userPort.UserDTO `json:"user,omitempty"`
}

type CreateCommentInput struct {
	Body   string
	PostID uint
	UserID uint
}
