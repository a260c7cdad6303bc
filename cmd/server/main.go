package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quangdng/folio-hub/adapters/event"
	httpAdapter "github.com/quangdng/folio-hub/adapters/http"
	"github.com/quangdng/folio-hub/adapters/media_storage"
	"github.com/quangdng/folio-hub/adapters/persistence"
	activityUC "github.com/quangdng/folio-hub/internal/application/usecase/activity"
	assetUC "github.com/quangdng/folio-hub/internal/application/usecase/asset"
	authUC "github.com/quangdng/folio-hub/internal/application/usecase/auth"
	dashboardUC "github.com/quangdng/folio-hub/internal/application/usecase/dashboard"
	educationUC "github.com/quangdng/folio-hub/internal/application/usecase/education"
	experienceUC "github.com/quangdng/folio-hub/internal/application/usecase/experience"
	portfolioUC "github.com/quangdng/folio-hub/internal/application/usecase/portfolio"
	profileUC "github.com/quangdng/folio-hub/internal/application/usecase/profile"
	projectUC "github.com/quangdng/folio-hub/internal/application/usecase/project"
	skillUC "github.com/quangdng/folio-hub/internal/application/usecase/skill"
	themeUC "github.com/quangdng/folio-hub/internal/application/usecase/theme"
	"github.com/quangdng/folio-hub/internal/config"
	"github.com/quangdng/folio-hub/pkg/auth"
	"github.com/quangdng/folio-hub/pkg/logger"
	"github.com/quangdng/folio-hub/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Folio Hub API Server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "folio-hub-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer provider", err)
	}
	defer tp.Shutdown(context.Background())

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	themeRepo := persistence.NewPostgresThemeRepo(dbPool, appLogger)
	assetRepo := persistence.NewPostgresAssetRepo(dbPool, appLogger)
	tokenStore := persistence.NewRedisTokenStore(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	imageStore, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize image store", err)
	}
	documentStore, err := media_storage.NewRemoteUploadAdapter(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize document store", err)
	}
	blobStore := media_storage.NewDispatcher(imageStore, documentStore)

	// Use Cases
	authUseCase := authUC.NewAuthUseCase(userRepo, jwtSvc, tokenStore, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, appLogger)
	projectUseCase := projectUC.NewProjectUseCase(projectRepo, appLogger)
	themeUseCase := themeUC.NewThemeUseCase(themeRepo, appLogger)
	computeStatsUseCase := dashboardUC.NewComputeStatsUseCase(profileRepo, experienceRepo, educationRepo, skillRepo, projectRepo, appLogger)
	computeRecentUseCase := activityUC.NewComputeRecentUseCase(experienceRepo, projectRepo, skillRepo, appLogger)
	publicViewUseCase := portfolioUC.NewPublicViewUseCase(profileRepo, experienceRepo, educationRepo, skillRepo, projectRepo, themeRepo, appLogger)
	uploadAssetUseCase := assetUC.NewUploadAssetUseCase(assetRepo, blobStore, kafkaClient, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(authUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase)
	themeHandler := httpAdapter.NewThemeHandler(themeUseCase)
	dashboardHandler := httpAdapter.NewDashboardHandler(computeStatsUseCase, computeRecentUseCase)
	assetHandler := httpAdapter.NewAssetHandler(uploadAssetUseCase)
	portfolioHandler := httpAdapter.NewPortfolioHandler(publicViewUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, tokenStore, appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authMiddleware, authHandler.Logout)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/dashboard", dashboardHandler.GetDashboard)
			private.GET("/dashboard/activities", dashboardHandler.GetRecentActivities)

			private.GET("/profile", profileHandler.GetProfile)
			private.PUT("/profile", profileHandler.UpsertProfile)
			private.GET("/profile/username-check", profileHandler.CheckUsername)

			experiences := private.Group("/experiences")
			{
				experiences.GET("", experienceHandler.ListExperiences)
				experiences.POST("", experienceHandler.CreateExperience)
				experiences.PUT("/:id", experienceHandler.UpdateExperience)
				experiences.DELETE("/:id", experienceHandler.DeleteExperience)
			}

			educations := private.Group("/educations")
			{
				educations.GET("", educationHandler.ListEducations)
				educations.POST("", educationHandler.CreateEducation)
				educations.PUT("/:id", educationHandler.UpdateEducation)
				educations.DELETE("/:id", educationHandler.DeleteEducation)
			}

			skills := private.Group("/skills")
			{
				skills.GET("", skillHandler.ListSkills)
				skills.POST("", skillHandler.CreateSkill)
				skills.PUT("/:id", skillHandler.UpdateSkill)
				skills.DELETE("/:id", skillHandler.DeleteSkill)
			}

			projects := private.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.POST("", projectHandler.CreateProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			private.GET("/theme", themeHandler.GetTheme)
			private.PUT("/theme", themeHandler.UpdateTheme)

			private.POST("/assets", assetHandler.UploadAsset)
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/portfolio/:username", portfolioHandler.GetPublicPortfolio)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
