package categoryapp

import (
	"context"

	"github.com/TopUP/blog/internal/core/apperr"
	categoryEntity "github.com/TopUP/blog/internal/core/category"
	categoryPort "github.com/TopUP/blog/internal/ports/category"
	postPort "github.com/TopUP/blog/internal/ports/post"
)

// CategoryService implements category CRUD and the referential guard that
// blocks deleting a category while posts still reference it.
type CategoryService struct {
	categories categoryPort.CategoryRepository
	posts      postPort.PostRepository
}

func NewCategoryService(categories categoryPort.CategoryRepository, posts postPort.PostRepository) *CategoryService {
	return &CategoryService{categories: categories, posts: posts}
}

func (s *CategoryService) Create(ctx context.Context, title string) (*categoryPort.CategoryDTO, error) {
	c, err := s.categories.Create(ctx, &categoryEntity.Category{Title: title})
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (s *CategoryService) FindAll(ctx context.Context) ([]*categoryPort.CategoryDTO, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*categoryPort.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, nil
}

func (s *CategoryService) FindOne(ctx context.Context, id uint) (*categoryPort.CategoryDTO, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return toDTO(c), nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in categoryPort.UpdateCategoryInput) (*categoryPort.CategoryDTO, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}

	if in.Title != nil {
		c.Title = *in.Title
	}

	saved, err := s.categories.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	return toDTO(saved), nil
}

// Remove hard-deletes a category unless posts still reference it.
func (s *CategoryService) Remove(ctx context.Context, id uint) error {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperr.ErrNotFound
	}

	count, err := s.posts.CountByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.ErrCategoryHasPosts
	}

	return s.categories.Delete(ctx, id)
}

// GetOrFail resolves a category for a dependent domain. Absence is a
// bad-request condition here, not a 404: the id came from request input,
// not from the URL.
func (s *CategoryService) GetOrFail(ctx context.Context, id uint) (*categoryEntity.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrCategoryNotFound
	}
	return c, nil
}

func toDTO(c *categoryEntity.Category) *categoryPort.CategoryDTO {
	return &categoryPort.CategoryDTO{ID: c.ID, Title: c.Title}
}
