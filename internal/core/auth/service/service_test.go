package authapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/TopUP/blog/internal/core/apperr"
	authEntity "github.com/TopUP/blog/internal/core/auth"
	userEntity "github.com/TopUP/blog/internal/core/user"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

type mockUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*userEntity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *userEntity.User) (*userEntity.User, error) {
	return u, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*userEntity.User, error) { return nil, nil }

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*userEntity.User, error) {
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*userEntity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Save(ctx context.Context, u *userEntity.User) (*userEntity.User, error) {
	return u, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error { return nil }

type mockRegistrar struct {
	createFn      func(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error)
	emailExistsFn func(ctx context.Context, email string) (bool, error)
}

func (m *mockRegistrar) Create(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fullName, email, password)
	}
	return &userPort.UserDTO{ID: 1, FullName: fullName, Email: email}, nil
}

func (m *mockRegistrar) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

var testKey = []byte("test-secret")

func newService(users *mockUserRepo, registry *mockRegistrar) *AuthService {
	return NewAuthService(users, registry, testKey, 6660*time.Second, zap.NewNop())
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	registry := &mockRegistrar{
		createFn: func(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error) {
			t.Error("no user must be created on password mismatch")
			return nil, nil
		},
	}

	_, err := newService(&mockUserRepo{}, registry).Register(context.Background(), "Full Name", "a@b.c", "one", "two")
	if !errors.Is(err, apperr.ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	registry := &mockRegistrar{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) { return true, nil },
		createFn: func(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error) {
			t.Error("no user must be created for a taken email")
			return nil, nil
		},
	}

	_, err := newService(&mockUserRepo{}, registry).Register(context.Background(), "Full Name", "taken@b.c", "pw", "pw")
	if !errors.Is(err, apperr.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_IssuesToken(t *testing.T) {
	token, err := newService(&mockUserRepo{}, &mockRegistrar{}).Register(context.Background(), "Full Name", "a@b.c", "pw", "pw")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token.AccessToken == "" {
		t.Fatal("expected a signed access token")
	}

	claims := &authEntity.Claims{}
	parsed, err := jwt.ParseWithClaims(token.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return testKey, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.ID != 1 || claims.Email != "a@b.c" || claims.FullName != "Full Name" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl < 6600*time.Second || ttl > 6660*time.Second {
		t.Errorf("expected expiry about 6660s out, got %v", ttl)
	}
}

func TestAuthService_ValidateCredentials_UnknownEmail(t *testing.T) {
	u, err := newService(&mockUserRepo{}, &mockRegistrar{}).ValidateCredentials(context.Background(), "nobody@b.c", "pw")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u != nil {
		t.Errorf("expected nil user, got %+v", u)
	}
}

func TestAuthService_ValidateCredentials_WrongPassword(t *testing.T) {
	digest, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*userEntity.User, error) {
			return &userEntity.User{ID: 1, Email: email, Password: string(digest)}, nil
		},
	}

	u, err := newService(users, &mockRegistrar{}).ValidateCredentials(context.Background(), "a@b.c", "wrong")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u != nil {
		t.Errorf("expected nil user, got %+v", u)
	}
}

func TestAuthService_ValidateCredentials_Success(t *testing.T) {
	digest, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*userEntity.User, error) {
			return &userEntity.User{ID: 3, FullName: "Full Name", Email: email, Password: string(digest)}, nil
		},
	}

	u, err := newService(users, &mockRegistrar{}).ValidateCredentials(context.Background(), "a@b.c", "correct")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u == nil || u.ID != 3 || u.Email != "a@b.c" {
		t.Errorf("unexpected user: %+v", u)
	}
}
