package httpapi

import (
	"context"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/TopUP/blog/internal/adapters/httpapi/middleware"
	authapp "github.com/TopUP/blog/internal/core/auth/service"
	categoryPort "github.com/TopUP/blog/internal/ports/category"
	commentPort "github.com/TopUP/blog/internal/ports/comment"
	postPort "github.com/TopUP/blog/internal/ports/post"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

// Inbound ports: the use-case surface each controller needs.

type AuthUseCase interface {
	Register(ctx context.Context, fullName, email, password, passwordConfirmation string) (*authapp.TokenDTO, error)
	Login(u *userPort.UserDTO) (*authapp.TokenDTO, error)
	ValidateCredentials(ctx context.Context, email, password string) (*userPort.UserDTO, error)
}

type UserUseCase interface {
	Create(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error)
	FindAll(ctx context.Context) ([]*userPort.UserDTO, error)
	FindOne(ctx context.Context, id uint) (*userPort.UserDTO, error)
	Update(ctx context.Context, id, callerID uint, in userPort.UpdateUserInput) (*userPort.UserDTO, error)
	Remove(ctx context.Context, id, callerID uint) error
}

type CategoryUseCase interface {
	Create(ctx context.Context, title string) (*categoryPort.CategoryDTO, error)
	FindAll(ctx context.Context) ([]*categoryPort.CategoryDTO, error)
	FindOne(ctx context.Context, id uint) (*categoryPort.CategoryDTO, error)
	Update(ctx context.Context, id uint, in categoryPort.UpdateCategoryInput) (*categoryPort.CategoryDTO, error)
	Remove(ctx context.Context, id uint) error
}

type PostUseCase interface {
	Create(ctx context.Context, in postPort.CreatePostInput) (*postPort.PostDTO, error)
	FindAll(ctx context.Context) ([]*postPort.PostDTO, error)
	FindOne(ctx context.Context, id uint) (*postPort.PostDTO, error)
	Update(ctx context.Context, id, callerID uint, in postPort.UpdatePostInput) (*postPort.PostDTO, error)
	Remove(ctx context.Context, id, callerID uint) error
}

type CommentUseCase interface {
	Create(ctx context.Context, in commentPort.CreateCommentInput) (*commentPort.CommentDTO, error)
	FindAll(ctx context.Context) ([]*commentPort.CommentDTO, error)
	FindOne(ctx context.Context, id uint) (*commentPort.CommentDTO, error)
	Update(ctx context.Context, id, callerID uint, body string) (*commentPort.CommentDTO, error)
	Remove(ctx context.Context, id, callerID uint) error
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(
	authUC AuthUseCase,
	userUC UserUseCase,
	categoryUC CategoryUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	jwtSecret []byte,
	logger *zap.Logger,
) *gin.Engine {
	registerTagNameFunc()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	authRequired := middleware.JWTAuth(jwtSecret)

	ac := NewAuthController(authUC)
	uc := NewUserController(userUC)
	cc := NewCategoryController(categoryUC)
	pc := NewPostController(postUC)
	mc := NewCommentController(commentUC)

	r.POST("/auth/register", ac.Register)
	r.POST("/auth/login", ac.Login)

	r.POST("/user", authRequired, uc.Create)
	r.GET("/user", uc.FindAll)
	r.GET("/user/:id", uc.FindOne)
	r.PATCH("/user/:id", authRequired, uc.Update)
	r.DELETE("/user/:id", authRequired, uc.Remove)

	r.POST("/category", authRequired, cc.Create)
	r.GET("/category", cc.FindAll)
	r.GET("/category/:id", cc.FindOne)
	r.PATCH("/category/:id", authRequired, cc.Update)
	r.DELETE("/category/:id", authRequired, cc.Remove)

	r.POST("/post", authRequired, pc.Create)
	r.GET("/post", pc.FindAll)
	r.GET("/post/:id", pc.FindOne)
	r.PATCH("/post/:id", authRequired, pc.Update)
	r.DELETE("/post/:id", authRequired, pc.Remove)

	r.POST("/comment", authRequired, mc.Create)
	r.GET("/comment", mc.FindAll)
	r.GET("/comment/:id", mc.FindOne)
	r.PATCH("/comment/:id", authRequired, mc.Update)
	r.DELETE("/comment/:id", authRequired, mc.Remove)

	return r
}

// registerTagNameFunc makes validator messages use JSON field names.
func registerTagNameFunc() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
