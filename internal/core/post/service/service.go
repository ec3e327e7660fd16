package postapp

import (
	"context"

	"github.com/TopUP/blog/internal/core/apperr"
	categoryEntity "github.com/TopUP/blog/internal/core/category"
	postEntity "github.com/TopUP/blog/internal/core/post"
	categoryPort "github.com/TopUP/blog/internal/ports/category"
	postPort "github.com/TopUP/blog/internal/ports/post"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

// CategoryResolver is the slice of the category domain the post flow needs:
// resolve a category id or fail with the category-not-found condition.
type CategoryResolver interface {
	GetOrFail(ctx context.Context, id uint) (*categoryEntity.Category, error)
}

// PostService implements post CRUD with ownership enforcement and category
// resolution.
type PostService struct {
	posts      postPort.PostRepository
	categories CategoryResolver
}

func NewPostService(posts postPort.PostRepository, categories CategoryResolver) *PostService {
	return &PostService{posts: posts, categories: categories}
}

// Create attaches the caller as owner and resolves the category before
// persisting.
func (s *PostService) Create(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error) {
	if _, err := s.categories.GetOrFail(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		Title:      in.Title,
		Body:       in.Body,
		UserID:     in.UserID,
		CategoryID: in.CategoryID,
	}

	created, err := s.posts.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

func (s *PostService) FindAll(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

func (s *PostService) FindOne(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return toDTO(p), nil
}

// Update merges the supplied fields into the caller's own post. A new
// category id is re-resolved through the category domain.
func (s *PostService) Update(ctx context.Context, id, callerID uint, in postPort.UpdatePostInput) (*postPort.PostDTO, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	if p.UserID != callerID {
		return nil, apperr.ErrForbidden
	}

	if in.CategoryID != nil {
		if _, err := s.categories.GetOrFail(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = *in.CategoryID
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Body != nil {
		p.Body = *in.Body
	}

	saved, err := s.posts.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	return toDTO(saved), nil
}

func (s *PostService) Remove(ctx context.Context, id, callerID uint) error {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.ErrNotFound
	}
	if p.UserID != callerID {
		return apperr.ErrForbidden
	}
	return s.posts.Delete(ctx, id)
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		UserID:     p.UserID,
		CategoryID: p.CategoryID,
	}
	if p.User.ID != 0 {
		dto.User = &userPort.UserDTO{ID: p.User.ID, FullName: p.User.FullName, Email: p.User.Email}
	}
	if p.Category.ID != 0 {
		dto.Category = &categoryPort.CategoryDTO{ID: p.Category.ID, Title: p.Category.Title}
	}
	return dto
}
