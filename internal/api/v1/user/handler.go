package user

import (
	"net/http"

	"printlist-backend/internal/models"
	"printlist-backend/internal/services"
	"printlist-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser godoc
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags user
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=user.UserResponse}
// @Failure 401 {object} utils.Response
// @Router /auth/user [get]
func CurrentUser(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}

	u := userVal.(models.User)

	// Reload so role changes made after the token was issued show up.
	if latest, err := services.FindUserByIDFresh(u.ID); err == nil {
		u = latest
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}))
}
