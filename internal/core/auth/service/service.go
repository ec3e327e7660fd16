package authapp

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/TopUP/blog/internal/core/apperr"
	authEntity "github.com/TopUP/blog/internal/core/auth"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

// Registrar is the slice of the user domain the auth flow delegates
// registration to.
type Registrar interface {
	Create(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TokenDTO is the session payload returned by register and login.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
}

// AuthService orchestrates registration and login and issues bearer tokens.
type AuthService struct {
	users    userPort.UserRepository
	registry Registrar
	jwtKey   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewAuthService(users userPort.UserRepository, registry Registrar, jwtKey []byte, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		registry: registry,
		jwtKey:   jwtKey,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// Register creates a user and returns a signed session, equivalent to an
// immediate login. The email pre-check keeps repeated attempts from ever
// creating a second row.
func (s *AuthService) Register(ctx context.Context, fullName, email, password, passwordConfirmation string) (*TokenDTO, error) {
	if password != passwordConfirmation {
		return nil, apperr.ErrPasswordMismatch
	}

	exists, err := s.registry.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrEmailTaken
	}

	u, err := s.registry.Create(ctx, fullName, email, password)
	if err != nil {
		return nil, err
	}

	return s.Login(u)
}

// Login signs a token embedding the user's identity.
func (s *AuthService) Login(u *userPort.UserDTO) (*TokenDTO, error) {
	claims := &authEntity.Claims{
		FullName: u.FullName,
		Email:    u.Email,
		ID:       u.ID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return nil, err
	}

	return &TokenDTO{AccessToken: signed}, nil
}

// ValidateCredentials looks the user up by email and compares the password
// against the stored digest. Returns (nil, nil) when either fails so the
// caller cannot tell a bad email from a bad password.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*userPort.UserDTO, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, nil
	}

	return &userPort.UserDTO{ID: u.ID, FullName: u.FullName, Email: u.Email}, nil
}
