package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/modules/application/dto"
	"github.com/shelterworks/petadopt/internal/modules/application/repository"
	petRepo "github.com/shelterworks/petadopt/internal/modules/pet/repository"
	"github.com/shelterworks/petadopt/pkg/apperror"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApplicationService(t *testing.T) (ApplicationService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Pet{}, &entity.Application{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := NewApplicationService(
		repository.NewApplicationRepository(db),
		petRepo.NewPetRepository(db),
	)
	return svc, db
}

func seedPet(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	pet := entity.Pet{
		Name:        name,
		Species:     "Dog",
		Breed:       "Beagle",
		Age:         2,
		Description: "Test pet.",
		Status:      entity.PetAvailable,
	}
	if err := db.Create(&pet).Error; err != nil {
		t.Fatalf("failed to seed pet: %v", err)
	}
	return pet.ID
}

func TestCreateApplication(t *testing.T) {
	svc, db := setupApplicationService(t)
	ctx := context.Background()

	petID := seedPet(t, db, "Rex")
	userID := uuid.New()

	app, err := svc.CreateApplication(ctx, userID, petID)
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}

	if app.Status != entity.ApplicationPending {
		t.Errorf("status = %q, want pending", app.Status)
	}
	if app.ReviewerID != nil || app.ReviewedAt != nil {
		t.Error("a fresh application must not carry review fields")
	}
	if app.SubmittedAt.IsZero() {
		t.Error("submitted_at was not stamped")
	}
}

func TestCreateApplicationMissingPet(t *testing.T) {
	svc, _ := setupApplicationService(t)

	_, err := svc.CreateApplication(context.Background(), uuid.New(), uuid.New())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Fatalf("got %v, want 404 AppError", err)
	}
}

func TestUpdateStatusStampsReview(t *testing.T) {
	svc, db := setupApplicationService(t)
	ctx := context.Background()

	petID := seedPet(t, db, "Rex")
	app, err := svc.CreateApplication(ctx, uuid.New(), petID)
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}

	reviewerID := uuid.New()
	updated, err := svc.UpdateStatus(ctx, app.ID, entity.ApplicationApproved, reviewerID)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	if updated.Status != entity.ApplicationApproved {
		t.Errorf("status = %q, want approved", updated.Status)
	}
	if updated.ReviewerID == nil || *updated.ReviewerID != reviewerID {
		t.Error("reviewer was not stamped")
	}
	if updated.ReviewedAt == nil || updated.LastUpdated == nil {
		t.Error("review timestamps were not stamped")
	}
}

// A decision may be revisited: approved can move back to rejected or pending.
func TestUpdateStatusAllowsOverwrite(t *testing.T) {
	svc, db := setupApplicationService(t)
	ctx := context.Background()

	petID := seedPet(t, db, "Rex")
	app, err := svc.CreateApplication(ctx, uuid.New(), petID)
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, app.ID, entity.ApplicationApproved, uuid.New()); err != nil {
		t.Fatalf("first UpdateStatus: %v", err)
	}
	updated, err := svc.UpdateStatus(ctx, app.ID, entity.ApplicationRejected, uuid.New())
	if err != nil {
		t.Fatalf("second UpdateStatus: %v", err)
	}
	if updated.Status != entity.ApplicationRejected {
		t.Errorf("status = %q, want rejected", updated.Status)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, db := setupApplicationService(t)
	ctx := context.Background()

	petID := seedPet(t, db, "Rex")
	app, err := svc.CreateApplication(ctx, uuid.New(), petID)
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}

	_, err = svc.UpdateStatus(ctx, app.ID, "withdrawn", uuid.New())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusBadRequest {
		t.Fatalf("got %v, want 400 AppError", err)
	}
}

func TestListApplicationsFilters(t *testing.T) {
	svc, db := setupApplicationService(t)
	ctx := context.Background()

	rexID := seedPet(t, db, "Rex")
	lunaID := seedPet(t, db, "Luna")

	alice := uuid.New()
	bob := uuid.New()

	if _, err := svc.CreateApplication(ctx, alice, rexID); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	app2, err := svc.CreateApplication(ctx, bob, rexID)
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if _, err := svc.CreateApplication(ctx, bob, lunaID); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, app2.ID, entity.ApplicationApproved, uuid.New()); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	byPet, err := svc.ListApplications(ctx, dto.ListFilter{PetID: &rexID})
	if err != nil {
		t.Fatalf("ListApplications by pet: %v", err)
	}
	if len(byPet) != 2 {
		t.Errorf("by pet: got %d, want 2", len(byPet))
	}

	byStatus, err := svc.ListApplications(ctx, dto.ListFilter{Status: entity.ApplicationApproved})
	if err != nil {
		t.Fatalf("ListApplications by status: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != app2.ID {
		t.Errorf("by status: got %+v", byStatus)
	}

	byUser, err := svc.ListApplicationsByUser(ctx, bob)
	if err != nil {
		t.Fatalf("ListApplicationsByUser: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("by user: got %d, want 2", len(byUser))
	}
}

func TestCountApplications(t *testing.T) {
	svc, db := setupApplicationService(t)
	ctx := context.Background()

	petID := seedPet(t, db, "Rex")
	app, err := svc.CreateApplication(ctx, uuid.New(), petID)
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if _, err := svc.CreateApplication(ctx, uuid.New(), petID); err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, app.ID, entity.ApplicationRejected, uuid.New()); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	total, err := svc.CountApplications(ctx, "")
	if err != nil {
		t.Fatalf("CountApplications: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}

	pending, err := svc.CountApplications(ctx, entity.ApplicationPending)
	if err != nil {
		t.Fatalf("CountApplications pending: %v", err)
	}
	if pending != 1 {
		t.Errorf("pending = %d, want 1", pending)
	}
}

func TestGetApplicationNotFound(t *testing.T) {
	svc, _ := setupApplicationService(t)

	_, err := svc.GetApplication(context.Background(), uuid.New())
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != http.StatusNotFound {
		t.Fatalf("got %v, want 404 AppError", err)
	}
}
