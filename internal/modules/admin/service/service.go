package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/modules/admin/dto"
	"github.com/shelterworks/petadopt/internal/modules/user/repository"
	"github.com/shelterworks/petadopt/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService covers staff/admin user management. The password hash never
// leaves the entity's json-hidden field.
type AdminService interface {
	CreateUser(ctx context.Context, input dto.CreateUserInput) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	GetUsersByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type adminService struct {
	users repository.UserRepository
}

func NewAdminService(users repository.UserRepository) AdminService {
	return &adminService{users: users}
}

func (s *adminService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*entity.User, error) {
	role := entity.RoleUser
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.New(http.StatusBadRequest, "invalid role", apperror.ErrInvalidInput)
		}
		role = *input.Role
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.New(http.StatusBadRequest, "email already registered", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*entity.User{}
	}
	return users, nil
}

func (s *adminService) GetUsersByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	if !role.Valid() {
		return nil, apperror.New(http.StatusBadRequest, "invalid role", apperror.ErrInvalidInput)
	}

	users, err := s.users.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*entity.User{}
	}
	return users, nil
}

func (s *adminService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
