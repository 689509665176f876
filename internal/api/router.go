package api

import (
	"printlist-backend/config"
	_ "printlist-backend/docs"
	adminUser "printlist-backend/internal/api/v1/admin/user"
	"printlist-backend/internal/api/v1/auth"
	"printlist-backend/internal/api/v1/catalog"
	"printlist-backend/internal/api/v1/common/upload"
	"printlist-backend/internal/api/v1/platform"
	"printlist-backend/internal/api/v1/prompt"
	"printlist-backend/internal/api/v1/submission"
	userRoutes "printlist-backend/internal/api/v1/user"
	"printlist-backend/internal/database"
	"printlist-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			userRoutes.RegisterRoutes(authorized)
			platform.RegisterReadRoutes(authorized)
			catalog.RegisterReadRoutes(authorized)
			submission.RegisterRoutes(authorized)
			upload.RegisterRoutes(authorized)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
			platform.RegisterAdminRoutes(admin)
			catalog.RegisterAdminRoutes(admin)
			prompt.RegisterRoutes(admin)
			submission.RegisterAdminRoutes(admin)
		}
	}

	return router, nil
}
