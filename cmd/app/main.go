package main

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbadapter "github.com/TopUP/blog/internal/adapters/database"
	"github.com/TopUP/blog/internal/adapters/httpapi"
	"github.com/TopUP/blog/internal/config"
	authapp "github.com/TopUP/blog/internal/core/auth/service"
	"github.com/TopUP/blog/internal/core/category"
	categoryapp "github.com/TopUP/blog/internal/core/category/service"
	"github.com/TopUP/blog/internal/core/comment"
	commentapp "github.com/TopUP/blog/internal/core/comment/service"
	"github.com/TopUP/blog/internal/core/post"
	postapp "github.com/TopUP/blog/internal/core/post/service"
	"github.com/TopUP/blog/internal/core/user"
	userapp "github.com/TopUP/blog/internal/core/user/service"
)

func main() {
	logger := config.InitLogger()
	defer logger.Sync()

	cfg := config.Load(logger)
	db := config.InitDB(cfg.DBDSN, logger)
	defer closeResources(db, logger)

	if err := db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		logger.Fatal("Error during migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	categoryRepo := dbadapter.NewCategoryRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)

	userSvc := userapp.NewUserService(userRepo, logger)
	authSvc := authapp.NewAuthService(userRepo, userSvc, []byte(cfg.JWTSecret), cfg.TokenTTL, logger)
	categorySvc := categoryapp.NewCategoryService(categoryRepo, postRepo)
	postSvc := postapp.NewPostService(postRepo, categorySvc)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, userRepo)

	r := httpapi.SetupRoutes(authSvc, userSvc, categorySvc, postSvc, commentSvc, []byte(cfg.JWTSecret), logger)

	logger.Info("App is running", zap.String("port", cfg.AppPort))
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}

func closeResources(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
