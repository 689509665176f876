package catalog

import "github.com/gin-gonic/gin"

func RegisterReadRoutes(router *gin.RouterGroup) {
	router.GET("/categories", ListCategories)
	router.GET("/models", ListModels)
}

func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/models", CreateModel)
}
