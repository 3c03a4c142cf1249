package service

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/modules/pet/dto"
	"github.com/shelterworks/petadopt/internal/modules/pet/repository"
	"github.com/shelterworks/petadopt/pkg/apperror"
	"github.com/shelterworks/petadopt/pkg/storage"
	"gorm.io/gorm"
)

const photoFolder = "pets"

type PetService interface {
	CreatePet(ctx context.Context, input dto.CreatePetInput) (*entity.Pet, error)
	GetPet(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	GetAllPets(ctx context.Context) ([]*entity.Pet, error)
	SearchPets(ctx context.Context, filter dto.SearchFilter) ([]*entity.Pet, error)
	UpdatePet(ctx context.Context, id uuid.UUID, input dto.UpdatePetInput) (*entity.Pet, error)
	UpdatePetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Pet, error)
	DeletePet(ctx context.Context, id uuid.UUID) error
	ListSpecies(ctx context.Context) ([]string, error)
	ListBreeds(ctx context.Context) ([]string, error)
	UploadPhoto(ctx context.Context, id uuid.UUID, r io.Reader, fileName string) (*entity.Pet, error)
}

type petService struct {
	repo         repository.PetRepository
	imageStorage storage.ImageStorage
}

func NewPetService(repo repository.PetRepository, imageStorage storage.ImageStorage) PetService {
	return &petService{
		repo:         repo,
		imageStorage: imageStorage,
	}
}

func (s *petService) CreatePet(ctx context.Context, input dto.CreatePetInput) (*entity.Pet, error) {
	status := input.Status
	if status == "" {
		status = entity.PetAvailable
	}

	pet := &entity.Pet{
		Name:        input.Name,
		Species:     input.Species,
		Breed:       input.Breed,
		Age:         *input.Age,
		Description: input.Description,
		Status:      status,
		ImageURL:    input.ImageURL,
	}

	if err := s.repo.Create(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

func (s *petService) GetPet(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "pet not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return pet, nil
}

// GetAllPets returns every pet regardless of status. An empty catalog is an
// empty list, not an error.
func (s *petService) GetAllPets(ctx context.Context) ([]*entity.Pet, error) {
	pets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []*entity.Pet{}
	}
	return pets, nil
}

func (s *petService) SearchPets(ctx context.Context, filter dto.SearchFilter) ([]*entity.Pet, error) {
	status := filter.Status
	if status == "" {
		status = entity.PetAvailable
	}
	if !entity.ValidPetStatus(status) {
		return nil, apperror.New(http.StatusBadRequest, "invalid pet status", apperror.ErrInvalidInput)
	}

	pets, err := s.repo.Search(ctx, filter.Species, filter.Breed, status)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []*entity.Pet{}
	}
	return pets, nil
}

func (s *petService) UpdatePet(ctx context.Context, id uuid.UUID, input dto.UpdatePetInput) (*entity.Pet, error) {
	pet, err := s.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}

	pet.Name = input.Name
	pet.Species = input.Species
	pet.Breed = input.Breed
	pet.Age = *input.Age
	pet.Description = input.Description
	pet.Status = input.Status
	pet.ImageURL = input.ImageURL

	if err := s.repo.Save(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

func (s *petService) UpdatePetStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Pet, error) {
	if !entity.ValidPetStatus(status) {
		return nil, apperror.New(http.StatusBadRequest, "invalid pet status", apperror.ErrInvalidInput)
	}

	pet, err := s.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}

	pet.Status = status
	if err := s.repo.Save(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

func (s *petService) DeletePet(ctx context.Context, id uuid.UUID) error {
	pet, err := s.GetPet(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort: the record is already gone, a stale photo is acceptable.
	if pet.ImageURL != nil && s.imageStorage != nil {
		if err := s.imageStorage.DeleteImage(ctx, *pet.ImageURL); err != nil {
			log.Printf("failed to delete photo for pet %s: %v", id, err)
		}
	}

	return nil
}

func (s *petService) ListSpecies(ctx context.Context) ([]string, error) {
	species, err := s.repo.DistinctSpecies(ctx)
	if err != nil {
		return nil, err
	}
	if species == nil {
		species = []string{}
	}
	return species, nil
}

func (s *petService) ListBreeds(ctx context.Context) ([]string, error) {
	breeds, err := s.repo.DistinctBreeds(ctx)
	if err != nil {
		return nil, err
	}
	if breeds == nil {
		breeds = []string{}
	}
	return breeds, nil
}

func (s *petService) UploadPhoto(ctx context.Context, id uuid.UUID, r io.Reader, fileName string) (*entity.Pet, error) {
	if s.imageStorage == nil {
		return nil, apperror.New(http.StatusBadRequest, "image storage is not configured", apperror.ErrBadRequest)
	}

	pet, err := s.GetPet(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.imageStorage.UploadImage(ctx, r, photoFolder, fileName)
	if err != nil {
		return nil, err
	}

	old := pet.ImageURL
	pet.ImageURL = &url
	if err := s.repo.Save(ctx, pet); err != nil {
		return nil, err
	}

	if old != nil {
		if err := s.imageStorage.DeleteImage(ctx, *old); err != nil {
			log.Printf("failed to delete replaced photo for pet %s: %v", id, err)
		}
	}

	return pet, nil
}
