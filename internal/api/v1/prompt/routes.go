package prompt

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the prompt management surface. The parent
// group is expected to carry the admin gate.
func RegisterRoutes(router *gin.RouterGroup) {
	prompts := router.Group("/prompts")
	{
		prompts.GET("/:platformId/:categoryId/active", GetActive)
		prompts.GET("/:platformId/:categoryId/versions", ListVersions)
		prompts.POST("/:platformId/:categoryId", Save)
		prompts.POST("/:platformId/:categoryId/test", Test)
	}
}
