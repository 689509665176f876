package submission

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	submissions := router.Group("/submissions")
	{
		submissions.POST("", Create)
		submissions.GET("", List)
		submissions.GET("/:id", Get)
	}
}

func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.PUT("/submissions/:id/result", RecordResult)
}
