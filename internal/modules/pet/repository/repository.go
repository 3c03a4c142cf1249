package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	FindAll(ctx context.Context) ([]*entity.Pet, error)
	Search(ctx context.Context, species, breed, status string) ([]*entity.Pet, error)
	Save(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	DistinctSpecies(ctx context.Context) ([]string, error)
	DistinctBreeds(ctx context.Context) ([]string, error)
}

type petRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	if err := r.db.WithContext(ctx).First(&pet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindAll(ctx context.Context) ([]*entity.Pet, error) {
	var pets []*entity.Pet
	if err := r.db.WithContext(ctx).Order("created_at").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Search(ctx context.Context, species, breed, status string) ([]*entity.Pet, error) {
	query := r.db.WithContext(ctx).Where("status = ?", status)

	if species != "" {
		query = query.Where("species = ?", species)
	}
	if breed != "" {
		query = query.Where("breed = ?", breed)
	}

	var pets []*entity.Pet
	if err := query.Order("created_at").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) Save(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}

func (r *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Pet{}, "id = ?", id).Error
}

func (r *petRepository) DistinctSpecies(ctx context.Context) ([]string, error) {
	var species []string
	err := r.db.WithContext(ctx).Model(&entity.Pet{}).Distinct().Order("species").Pluck("species", &species).Error
	if err != nil {
		return nil, err
	}
	return species, nil
}

func (r *petRepository) DistinctBreeds(ctx context.Context) ([]string, error) {
	var breeds []string
	err := r.db.WithContext(ctx).Model(&entity.Pet{}).Distinct().Order("breed").Pluck("breed", &breeds).Error
	if err != nil {
		return nil, err
	}
	return breeds, nil
}
