package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/modules/application/repository"
	applicationService "github.com/shelterworks/petadopt/internal/modules/application/service"
	petRepo "github.com/shelterworks/petadopt/internal/modules/pet/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupHandlerTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Pet{}, &entity.Application{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := applicationService.NewApplicationService(
		repository.NewApplicationRepository(db),
		petRepo.NewPetRepository(db),
	)
	h := NewApplicationHandler(svc)

	router := gin.New()
	router.GET("/api/applications", h.GetApplications)

	return db, router
}

func seedApplication(t *testing.T, db *gorm.DB, userID uuid.UUID) uuid.UUID {
	t.Helper()

	pet := entity.Pet{
		Name:        "Rex",
		Species:     "Dog",
		Breed:       "Beagle",
		Age:         2,
		Description: "Test pet.",
		Status:      entity.PetAvailable,
	}
	if err := db.Create(&pet).Error; err != nil {
		t.Fatalf("failed to seed pet: %v", err)
	}

	app := entity.Application{
		UserID: userID,
		PetID:  pet.ID,
		Status: entity.ApplicationPending,
	}
	if err := db.Create(&app).Error; err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	return pet.ID
}

func listApplications(t *testing.T, router *gin.Engine, query string) (*httptest.ResponseRecorder, []entity.Application) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/applications"+query, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var apps []entity.Application
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &apps); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return rec, apps
}

// The pet_id and user_id query filters arrive as strings and must survive the
// trip through query binding.
func TestGetApplicationsFilterByPetID(t *testing.T) {
	db, router := setupHandlerTest(t)

	petID := seedApplication(t, db, uuid.New())
	seedApplication(t, db, uuid.New()) // a second application for another pet

	rec, apps := listApplications(t, router, "?pet_id="+petID.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(apps) != 1 || apps[0].PetID != petID {
		t.Fatalf("filtered listing = %+v, want one application for pet %s", apps, petID)
	}
}

func TestGetApplicationsFilterByUserID(t *testing.T) {
	db, router := setupHandlerTest(t)

	userID := uuid.New()
	seedApplication(t, db, userID)
	seedApplication(t, db, uuid.New())

	rec, apps := listApplications(t, router, "?user_id="+userID.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(apps) != 1 || apps[0].UserID != userID {
		t.Fatalf("filtered listing = %+v, want one application for user %s", apps, userID)
	}
}

func TestGetApplicationsCombinedFilters(t *testing.T) {
	db, router := setupHandlerTest(t)

	userID := uuid.New()
	petID := seedApplication(t, db, userID)
	seedApplication(t, db, userID)

	rec, apps := listApplications(t, router, "?user_id="+userID.String()+"&pet_id="+petID.String()+"&status=pending")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if len(apps) != 1 {
		t.Fatalf("combined filters returned %d applications, want 1", len(apps))
	}
}

func TestGetApplicationsMalformedID(t *testing.T) {
	_, router := setupHandlerTest(t)

	rec, _ := listApplications(t, router, "?pet_id=not-a-uuid")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed pet_id: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec, _ = listApplications(t, router, "?user_id=not-a-uuid")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed user_id: status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
