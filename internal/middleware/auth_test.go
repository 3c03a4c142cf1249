package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shelterworks/petadopt/internal/entity"
	userRepo "github.com/shelterworks/petadopt/internal/modules/user/repository"
	"github.com/shelterworks/petadopt/pkg/session"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gorm.DB, session.Store, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	sessions := session.NewMemoryStore(time.Hour)
	mw := NewAuthMiddleware(userRepo.NewUserRepository(db), sessions)

	router := gin.New()
	router.GET("/staff-only", mw.RequireRole(entity.RoleStaff), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	return db, sessions, router
}

func createSessionFor(t *testing.T, db *gorm.DB, sessions session.Store, role entity.Role) (uuid.UUID, string) {
	t.Helper()

	user := entity.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		FullName:     "Test User",
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := sessions.Create(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return user.ID, token
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/staff-only", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireRoleNoCookie(t *testing.T) {
	_, _, router := setupAuthTest(t)

	rec := doRequest(router, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleInvalidToken(t *testing.T) {
	_, _, router := setupAuthTest(t)

	rec := doRequest(router, "bogus-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleInsufficientRole(t *testing.T) {
	db, sessions, router := setupAuthTest(t)
	_, token := createSessionFor(t, db, sessions, entity.RoleUser)

	rec := doRequest(router, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRequireRoleSufficientRole(t *testing.T) {
	db, sessions, router := setupAuthTest(t)
	_, token := createSessionFor(t, db, sessions, entity.RoleStaff)

	rec := doRequest(router, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRequireRoleAdmitsHigherRole(t *testing.T) {
	db, sessions, router := setupAuthTest(t)
	_, token := createSessionFor(t, db, sessions, entity.RoleAdmin)

	rec := doRequest(router, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireRoleDeletedUserDegradesToGuest(t *testing.T) {
	db, sessions, router := setupAuthTest(t)
	userID, token := createSessionFor(t, db, sessions, entity.RoleAdmin)

	if err := db.Delete(&entity.User{}, "id = ?", userID).Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	rec := doRequest(router, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
