package server

import (
	"log"
	"strings"
	"time"

	"github.com/shelterworks/petadopt/internal/config"
	"github.com/shelterworks/petadopt/internal/entity"
	"github.com/shelterworks/petadopt/internal/middleware"
	"github.com/shelterworks/petadopt/pkg/session"
	"github.com/shelterworks/petadopt/pkg/storage"

	adminHttp "github.com/shelterworks/petadopt/internal/modules/admin/delivery/http"
	adminService "github.com/shelterworks/petadopt/internal/modules/admin/service"

	applicationHttp "github.com/shelterworks/petadopt/internal/modules/application/delivery/http"
	applicationRepo "github.com/shelterworks/petadopt/internal/modules/application/repository"
	applicationService "github.com/shelterworks/petadopt/internal/modules/application/service"

	petHttp "github.com/shelterworks/petadopt/internal/modules/pet/delivery/http"
	petRepo "github.com/shelterworks/petadopt/internal/modules/pet/repository"
	petService "github.com/shelterworks/petadopt/internal/modules/pet/service"

	questionnaireHttp "github.com/shelterworks/petadopt/internal/modules/questionnaire/delivery/http"
	questionnaireRepo "github.com/shelterworks/petadopt/internal/modules/questionnaire/repository"
	questionnaireService "github.com/shelterworks/petadopt/internal/modules/questionnaire/service"

	userHttp "github.com/shelterworks/petadopt/internal/modules/user/delivery/http"
	userRepo "github.com/shelterworks/petadopt/internal/modules/user/repository"
	userService "github.com/shelterworks/petadopt/internal/modules/user/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	var sessions session.Store
	if redisClient != nil {
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		log.Println("no redis configured, sessions are held in process memory")
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Printf("image storage unavailable, pet photo uploads disabled: %v", err)
		imageStorage = nil
	}

	usersRepository := userRepo.NewUserRepository(db)

	authSvc := userService.NewAuthService(usersRepository, sessions)
	authHandler := userHttp.NewAuthHandler(authSvc, cfg.SessionTTL, !cfg.IsDevelopment())

	adminSvc := adminService.NewAdminService(usersRepository)
	adminHandler := adminHttp.NewAdminHandler(adminSvc)

	petsRepository := petRepo.NewPetRepository(db)
	petSvc := petService.NewPetService(petsRepository, imageStorage)
	petHandler := petHttp.NewPetHandler(petSvc)

	applicationsRepository := applicationRepo.NewApplicationRepository(db)
	applicationSvc := applicationService.NewApplicationService(applicationsRepository, petsRepository)
	applicationHandler := applicationHttp.NewApplicationHandler(applicationSvc)

	questionnairesRepository := questionnaireRepo.NewQuestionnaireRepository(db)
	questionnaireSvc := questionnaireService.NewQuestionnaireService(questionnairesRepository, usersRepository)
	questionnaireHandler := questionnaireHttp.NewQuestionnaireHandler(questionnaireSvc)

	router := gin.New()

	setupCORS(router, cfg)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(usersRepository, sessions)

	// Public auth surface
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	api := router.Group("/api")

	// Public catalog routes
	api.GET("/pets", petHandler.GetPets)
	api.GET("/pets/species", petHandler.GetSpecies)
	api.GET("/pets/breeds", petHandler.GetBreeds)
	api.GET("/pets/:id", petHandler.GetPet)

	// Staff pet management
	staffPets := api.Group("/pets")
	staffPets.Use(authMiddleware.RequireRole(entity.RoleStaff))
	{
		staffPets.POST("", petHandler.CreatePet)
		staffPets.POST("/:id", petHandler.UpdatePet)
		staffPets.DELETE("/:id", petHandler.DeletePet)
		staffPets.POST("/:id/status", petHandler.UpdatePetStatus)
		staffPets.POST("/:id/photo", petHandler.UploadPhoto)
	}

	// Logged-in users
	user := api.Group("")
	user.Use(authMiddleware.RequireRole(entity.RoleUser))
	{
		user.GET("/me", authHandler.Me)
		user.GET("/users/:user_id", adminHandler.GetUserByID)

		user.POST("/applications", applicationHandler.CreateApplication)
		user.GET("/applications/me", applicationHandler.GetMyApplications)
		user.GET("/applications/:id", applicationHandler.GetApplication)

		user.GET("/questionnaires", questionnaireHandler.GetQuestionnaire)
		user.GET("/questionnaires/hasOpen", questionnaireHandler.HasOpen)
		user.POST("/questionnaires/submit", questionnaireHandler.SubmitAnswers)
	}

	// Staff review surface
	staff := api.Group("")
	staff.Use(authMiddleware.RequireRole(entity.RoleStaff))
	{
		staff.GET("/applications", applicationHandler.GetApplications)
		staff.GET("/applications/count", applicationHandler.CountApplications)
		staff.POST("/applications/:id", applicationHandler.UpdateApplicationStatus)

		staff.GET("/questionnaires/review", questionnaireHandler.ListOpen)
		staff.GET("/questionnaires/open", questionnaireHandler.CountOpen)
		staff.GET("/questionnaires/:user_id", questionnaireHandler.GetAnswered)
		staff.POST("/users/:user_id/approve", questionnaireHandler.ApproveUser)
	}

	// Admin surface: user management and questionnaire curation
	admin := api.Group("")
	admin.Use(authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/users", adminHandler.GetAllUsers)
		admin.POST("/users", adminHandler.CreateUser)
		admin.POST("/questionnaires", questionnaireHandler.SetQuestionnaire)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	origins := strings.Split(cfg.AllowedOrigins, ",")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
