package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devflow/bugtracker/internal/api/handler"
	"github.com/devflow/bugtracker/internal/api/middleware"
	"github.com/devflow/bugtracker/internal/core/service"
	mongodb "github.com/devflow/bugtracker/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("bugtracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	issueRepo := mongodb.NewIssueRepository(db)

	authService := service.NewAuthService(userRepo, jwtSecret, log)
	projectService := service.NewProjectService(projectRepo, userRepo, log)
	issueService := service.NewIssueService(issueRepo, projectRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	issueHandler := handler.NewIssueHandler(issueService)

	authGuard := middleware.Auth(jwtSecret, log)

	// --- User routes (register/login are the only unguarded API routes) ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.GET("/me", authHandler.Me, authGuard)

	// --- Project routes ---
	projects := e.Group("/api/projects", authGuard)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)

	// --- Issue routes ---
	issues := e.Group("/api/issues", authGuard)
	issues.POST("", issueHandler.Create)
	issues.GET("/project/:projectId", issueHandler.ListByProject)
	issues.PUT("/:id", issueHandler.Update)
	issues.DELETE("/:id", issueHandler.Delete)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
