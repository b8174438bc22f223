package server

import (
	"log"
	"strings"
	"time"

	"anoa.com/greencampus/internal/config"
	"anoa.com/greencampus/internal/handler"
	"anoa.com/greencampus/internal/middleware"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/internal/service"
	"anoa.com/greencampus/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	usageRepo := repository.NewUsageRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	contributionRepo := repository.NewContributionRepository(db)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService, int(cfg.TokenTTL.Seconds()))

	usageService := service.NewUsageService(usageRepo)
	usageHandler := handler.NewUsageHandler(usageService)

	quizService := service.NewQuizService(quizRepo, redisClient)
	quizHandler := handler.NewQuizHandler(quizService)

	analyticsService := service.NewAnalyticsService(usageRepo)
	chartService := service.NewChartService(analyticsService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, chartService)

	contributionService := service.NewContributionService(contributionRepo, imageStorage, cfg.CloudinaryUploadFolder)
	statService := service.NewStatService(userRepo, usageRepo, quizRepo, contributionRepo)

	adminHandler := handler.NewAdminHandler(statService, userRepo)
	studentHandler := handler.NewStudentHandler(statService, contributionService)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.JWTSecret)

	// Public routes
	router.GET("/", authHandler.LoginPage)
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/register", authHandler.RegisterPage)
	router.POST("/register", authHandler.Register)

	// Protected routes
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/logout", authHandler.Logout)

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/manage-users", adminHandler.ManageUsers)
			admin.GET("/results", quizHandler.AllResults)
			admin.GET("/top-students", quizHandler.TopStudents)
			admin.GET("/create-quiz", quizHandler.ListQuizzes)
			admin.POST("/create-quiz", quizHandler.CreateQuiz)
			admin.GET("/resource-usage", usageHandler.ListUsage)
			admin.POST("/resource-usage", usageHandler.SubmitUsage)
			admin.GET("/analytics", analyticsHandler.Analytics)
		}

		charts := protected.Group("/charts")
		charts.Use(authMiddleware.RequireAdmin())
		{
			charts.GET("/:name", analyticsHandler.Chart)
		}

		// Student routes (any authenticated role)
		student := protected.Group("/student")
		{
			student.GET("/dashboard", studentHandler.Dashboard)
			student.GET("/attempt-quiz", quizHandler.ActiveQuiz)
			student.POST("/attempt-quiz", quizHandler.AttemptQuiz)
			student.GET("/view-score", quizHandler.MyResults)
			student.GET("/upload-contribution", studentHandler.ListContributions)
			student.POST("/upload-contribution", studentHandler.UploadContribution)
			student.GET("/certificate", studentHandler.Certificate)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
