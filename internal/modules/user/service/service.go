package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/modules/user/dto"
	"github.com/shelterworks/petadopt/internal/modules/user/repository"
	"github.com/shelterworks/petadopt/pkg/apperror"
	"github.com/shelterworks/petadopt/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*entity.User, error)
	// Login verifies credentials and opens a session. The returned token is
	// what the handler puts in the session cookie.
	Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	sessions session.Store
}

func NewAuthService(repo repository.UserRepository, sessions session.Store) AuthService {
	return &authService{
		repo:     repo,
		sessions: sessions,
	}
}

// errInvalidCredentials is returned for both an unknown email and a wrong
// password so the response never reveals whether the email exists.
var errInvalidCredentials = apperror.New(
	http.StatusUnauthorized, "invalid email or password", apperror.ErrUnauthorized)

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*entity.User, error) {
	role := entity.RoleUser
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.New(http.StatusBadRequest, "invalid role", apperror.ErrInvalidInput)
		}
		role = *input.Role
	}

	// The unique index on email backs this up, but the pre-check lets us
	// report the duplicate as a structured response instead of a driver error.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
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
		Approved:     false,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, string, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", errInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	redirect := "/"
	if user.Role.AtLeast(entity.RoleStaff) {
		redirect = "/dashboard"
	}

	return &dto.LoginResponse{
		Message:     "Login successful",
		UserID:      user.ID,
		FullName:    user.FullName,
		Role:        user.Role,
		Approved:    user.Approved,
		RedirectURL: redirect,
	}, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	return &dto.MeResponse{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		Role:     user.Role,
		Approved: user.Approved,
	}, nil
}
