package platform

import "github.com/gin-gonic/gin"

// RegisterReadRoutes exposes the read-only listing to any
// authenticated user (submission forms need it).
func RegisterReadRoutes(router *gin.RouterGroup) {
	router.GET("/platforms", List)
}

// RegisterAdminRoutes mounts the mutating surface; the parent group
// carries the admin gate.
func RegisterAdminRoutes(router *gin.RouterGroup) {
	platforms := router.Group("/platforms")
	{
		platforms.POST("", Create)
		platforms.PUT("/:id", Update)
		platforms.DELETE("/:id", Delete)
	}
}
