package commentapp

import (
	"context"

	"github.com/TopUP/blog/internal/core/apperr"
	commentEntity "github.com/TopUP/blog/internal/core/comment"
	commentPort "github.com/TopUP/blog/internal/ports/comment"
	postPort "github.com/TopUP/blog/internal/ports/post"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

// CommentService implements comment CRUD with ownership enforcement and
// related-post validation.
type CommentService struct {
	comments commentPort.CommentRepository
	posts    postPort.PostRepository
	users    userPort.UserRepository
}

func NewCommentService(comments commentPort.CommentRepository, posts postPort.PostRepository, users userPort.UserRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

// Create attaches the caller as author after verifying the referenced post
// exists.
func (s *CommentService) Create(ctx context.Context, in commentPort.CreateCommentInput) (*commentPort.CommentDTO, error) {
	u, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFound
	}

	p, err := s.posts.FindByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrPostNotFound
	}

	c := &commentEntity.Comment{
		Body:   in.Body,
		UserID: u.ID,
		PostID: p.ID,
	}

	created, err := s.comments.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

func (s *CommentService) FindAll(ctx context.Context) ([]*commentPort.CommentDTO, error) {
	comments, err := s.comments.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, nil
}

func (s *CommentService) FindOne(ctx context.Context, id uint) (*commentPort.CommentDTO, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return toDTO(c), nil
}

// Update persists only the body field of the caller's own comment. The
// related post must still exist; that check runs before the ownership check,
// preserving the order of the original API, and its failure blocks the
// update.
func (s *CommentService) Update(ctx context.Context, id, callerID uint, body string) (*commentPort.CommentDTO, error) {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}

	p, err := s.posts.FindByID(ctx, c.PostID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrPostNotFound
	}

	if c.UserID != callerID {
		return nil, apperr.ErrForbidden
	}

	c.Body = body
	saved, err := s.comments.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	return toDTO(saved), nil
}

func (s *CommentService) Remove(ctx context.Context, id, callerID uint) error {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperr.ErrNotFound
	}
	if c.UserID != callerID {
		return apperr.ErrForbidden
	}
	return s.comments.Delete(ctx, id)
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	dto := &commentPort.CommentDTO{
		ID:     c.ID,
		Body:   c.Body,
		UserID: c.UserID,
		PostID: c.PostID,
	}
	if c.User.ID != 0 {
		dto.User = &userPort.UserDTO{ID: c.User.ID, FullName: c.User.FullName, Email: c.User.Email}
	}
	return dto
}
