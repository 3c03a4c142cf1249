package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *entity.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	Find(ctx context.Context, status string, petID, userID *uuid.UUID) ([]*entity.Application, error)
	Save(ctx context.Context, app *entity.Application) error
	Count(ctx context.Context, status string) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *entity.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	var app entity.Application
	if err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Find(ctx context.Context, status string, petID, userID *uuid.UUID) ([]*entity.Application, error) {
	query := r.db.WithContext(ctx)

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if petID != nil {
		query = query.Where("pet_id = ?", *petID)
	}
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var apps []*entity.Application
	if err := query.Order("submitted_at").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) Save(ctx context.Context, app *entity.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) Count(ctx context.Context, status string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
