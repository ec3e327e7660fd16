package userapp

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TopUP/blog/internal/core/apperr"
	userEntity "github.com/TopUP/blog/internal/core/user"
	userPort "github.com/TopUP/blog/internal/ports/user"
)

// UserService implements user CRUD on top of the repository port.
type UserService struct {
	users  userPort.UserRepository
	logger *zap.Logger
}

func NewUserService(users userPort.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create hashes the password and persists a new user. A unique-constraint
// violation on email surfaces as the duplicate-email error.
func (s *UserService) Create(ctx context.Context, fullName, email, password string) (*userPort.UserDTO, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrEmailTaken
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return toDTO(created), nil
}

func (s *UserService) FindAll(ctx context.Context) ([]*userPort.UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	return dtos, nil
}

func (s *UserService) FindOne(ctx context.Context, id uint) (*userPort.UserDTO, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFound
	}
	return toDTO(u), nil
}

// Update applies a partial update to the caller's own record. The password is
// re-hashed only when a new one is supplied; unset fields keep their values.
func (s *UserService) Update(ctx context.Context, id, callerID uint, in userPort.UpdateUserInput) (*userPort.UserDTO, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrNotFound
	}
	if u.ID != callerID {
		return nil, apperr.ErrForbidden
	}

	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hashed)
	}

	saved, err := s.users.Save(ctx, u)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, err
	}
	return toDTO(saved), nil
}

func (s *UserService) Remove(ctx context.Context, id, callerID uint) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.ErrNotFound
	}
	if u.ID != callerID {
		return apperr.ErrForbidden
	}
	return s.users.Delete(ctx, id)
}

func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func toDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}
}
