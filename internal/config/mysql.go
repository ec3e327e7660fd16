package config

import (
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB opens the MySQL connection. TranslateError lets unique-constraint
// violations surface as gorm.ErrDuplicatedKey, which the user domain maps to
// the duplicate-email condition.
func InitDB(dsn string, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Error connecting to the database", zap.Error(err))
	}
	logger.Info("Database connected")
	return db
}
