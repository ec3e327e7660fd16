package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TopUP/blog/internal/core/comment"
)

// CommentRepositoryDatabase implements the comment repository port on gorm.
type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, c.ID)
}

func (repo *CommentRepositoryDatabase) FindAll(ctx context.Context) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if err := repo.db.WithContext(ctx).Preload("User").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepositoryDatabase) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var c comment.Comment
	if err := repo.db.WithContext(ctx).Preload("User").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepositoryDatabase) Save(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := repo.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, c.ID)
}

func (repo *CommentRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&comment.Comment{}, id).Error
}
