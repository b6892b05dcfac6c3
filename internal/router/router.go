package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"content-platform-api/internal/handler"
	"content-platform-api/internal/metrics"
	"content-platform-api/internal/middleware"
	"content-platform-api/internal/repository"
	"content-platform-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Storage        service.StorageClient
	AuthEnabled    bool
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "content-platform-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "content-platform-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "content-platform-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "content-platform-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "content-platform-api"})
	})

	// Initialize repositories
	departmentRepo := repository.NewDepartmentRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)
	mediaRepo := repository.NewMediaRepository(cfg.DB)

	// Initialize services
	departmentService := service.NewDepartmentService(departmentRepo, cfg.Metrics, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, cfg.Metrics, cfg.Logger)
	mediaService := service.NewMediaService(mediaRepo, cfg.Storage, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	departmentHandler := handler.NewDepartmentHandler(departmentService, cfg.Logger)
	projectHandler := handler.NewProjectHandler(projectService, cfg.Logger)
	mediaHandler := handler.NewMediaHandler(mediaService, cfg.Logger)

	// Auth middleware: real JWT validation, or pass-through when enforcement
	// is delegated to an upstream gateway
	var authMiddleware gin.HandlerFunc
	if cfg.AuthEnabled {
		authMiddleware = middleware.RequireAuth(cfg.JWTSecret)
	} else {
		authMiddleware = middleware.AllowAll()
	}

	// API routes group
	api := r.Group(cfg.BasePath)

	departments := api.Group("/departments")
	{
		departments.GET("", departmentHandler.ListDepartments)
		departments.GET("/:slug", departmentHandler.GetDepartment)
		departments.POST("", authMiddleware, departmentHandler.CreateDepartment)
		departments.PUT("/:slug", authMiddleware, departmentHandler.UpdateDepartment)
		departments.PATCH("/:slug", authMiddleware, departmentHandler.UpdateDepartment)
		departments.DELETE("/:slug", authMiddleware, departmentHandler.DeleteDepartment)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:slug", projectHandler.GetProject)
		projects.POST("", authMiddleware, projectHandler.CreateProject)
		projects.PUT("/:slug", authMiddleware, projectHandler.UpdateProject)
		projects.PATCH("/:slug", authMiddleware, projectHandler.UpdateProject)
		projects.DELETE("/:slug", authMiddleware, projectHandler.DeleteProject)
	}

	media := api.Group("/media")
	{
		media.GET("", mediaHandler.ListMedia)
		media.POST("", authMiddleware, mediaHandler.UploadMedia)
		media.DELETE("/:id", authMiddleware, mediaHandler.DeleteMedia)
	}

	return r
}
