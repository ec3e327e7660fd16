package post

import (
	"time"

	"github.com/TopUP/blog/internal/core/category"
	"github.com/TopUP/blog/internal/core/user"
)

type Post struct {
	ID         uint              `gorm:"primaryKey"`
	Title      string            `gorm:"not null"`
	Body       string            `gorm:"type:text;not null"`
	UserID     uint              `gorm:"not null"`
	User       user.User         `gorm:"foreignKey:UserID"`
	CategoryID uint              `gorm:"not null"`
	Category   category.Category `gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime"`
}
