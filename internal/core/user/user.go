package user

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	FullName  string    `gorm:"not null"`
	Email     string    `gorm:"unique;not null"`
	Password  string    `gorm:"not null"` // bcrypt digest, never serialized
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
