package comment

import (
	"time"

	"github.com/TopUP/blog/internal/core/post"
	"github.com/TopUP/blog/internal/core/user"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	Body      string    `gorm:"type:text;not null"`
	UserID    uint      `gorm:"not null"`
	User      user.User `gorm:"foreignKey:UserID"`
	PostID    uint      `gorm:"not null"`
	Post      post.Post `gorm:"foreignKey:PostID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
