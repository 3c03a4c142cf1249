package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/modules/application/dto"
	"github.com/shelterworks/petadopt/internal/modules/application/repository"
	petRepo "github.com/shelterworks/petadopt/internal/modules/pet/repository"
	"github.com/shelterworks/petadopt/pkg/apperror"
	"gorm.io/gorm"
)

type ApplicationService interface {
	CreateApplication(ctx context.Context, userID, petID uuid.UUID) (*entity.Application, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	ListApplications(ctx context.Context, filter dto.ListFilter) ([]*entity.Application, error)
	ListApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Application, error)
	// UpdateStatus stamps the reviewer and the review time together with the
	// new status. Reviewer authority is enforced at the route boundary.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, reviewerID uuid.UUID) (*entity.Application, error)
	CountApplications(ctx context.Context, status string) (int64, error)
}

type applicationService struct {
	repo repository.ApplicationRepository
	pets petRepo.PetRepository
}

func NewApplicationService(repo repository.ApplicationRepository, pets petRepo.PetRepository) ApplicationService {
	return &applicationService{
		repo: repo,
		pets: pets,
	}
}

func (s *applicationService) CreateApplication(ctx context.Context, userID, petID uuid.UUID) (*entity.Application, error) {
	if _, err := s.pets.FindByID(ctx, petID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "pet not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	app := &entity.Application{
		UserID: userID,
		PetID:  petID,
		Status: entity.ApplicationPending,
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *applicationService) GetApplication(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "application not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationService) ListApplications(ctx context.Context, filter dto.ListFilter) ([]*entity.Application, error) {
	apps, err := s.repo.Find(ctx, filter.Status, filter.PetID, filter.UserID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*entity.Application{}
	}
	return apps, nil
}

func (s *applicationService) ListApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Application, error) {
	apps, err := s.repo.Find(ctx, "", nil, &userID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*entity.Application{}
	}
	return apps, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string, reviewerID uuid.UUID) (*entity.Application, error) {
	if !entity.ValidApplicationStatus(status) {
		return nil, apperror.New(http.StatusBadRequest, "invalid application status", apperror.ErrInvalidInput)
	}

	app, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	app.Status = status
	app.ReviewedAt = &now
	app.ReviewerID = &reviewerID
	app.LastUpdated = &now

	if err := s.repo.Save(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *applicationService) CountApplications(ctx context.Context, status string) (int64, error) {
	return s.repo.Count(ctx, status)
}
