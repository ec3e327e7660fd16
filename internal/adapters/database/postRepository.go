package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TopUP/blog/internal/core/post"
)

// PostRepositoryDatabase implements the post repository port on gorm.
// Reads preload the owning user and category, the explicit counterpart of
// the eager relations the API exposes.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

func (repo *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).Preload("User").Preload("Category").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	err := repo.db.WithContext(ctx).Preload("User").Preload("Category").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Save(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&post.Post{}, id).Error
}

func (repo *PostRepositoryDatabase) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&post.Post{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
