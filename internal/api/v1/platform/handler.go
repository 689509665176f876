package platform

import (
	"errors"
	"net/http"
	"strconv"

	"printlist-backend/internal/services"
	"printlist-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// List godoc
// @Summary List platforms
// @Description Retrieve all marketplace platforms ordered by id
// @Tags platforms
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Platform}
// @Failure 500 {object} utils.Response
// @Router /platforms [get]
func List(c *gin.Context) {
	platforms, err := services.ListPlatforms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch platforms"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", platforms))
}

// Create godoc
// @Summary Create a platform
// @Description Create a new marketplace platform. Admin only.
// @Tags platforms
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body PlatformRequest true "Platform name"
// @Success 201 {object} utils.Response{data=models.Platform}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/platforms [post]
func Create(c *gin.Context) {
	var req PlatformRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	platform, err := services.CreatePlatform(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrPlatformExists) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create platform"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Platform created successfully", platform))
}

// Update godoc
// @Summary Rename a platform
// @Description Rename an existing platform. Admin only.
// @Tags platforms
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Platform ID"
// @Param request body PlatformRequest true "New name"
// @Success 200 {object} utils.Response{data=models.Platform}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/platforms/{id} [put]
func Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid platform ID"))
		return
	}

	var req PlatformRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	platform, err := services.RenamePlatform(uint(id), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrPlatformNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update platform"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Platform updated successfully", platform))
}

// Delete godoc
// @Summary Delete a platform
// @Description Delete a platform. Admin only.
// @Tags platforms
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Platform ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/platforms/{id} [delete]
func Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid platform ID"))
		return
	}

	if err := services.DeletePlatform(uint(id)); err != nil {
		if errors.Is(err, services.ErrPlatformNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete platform"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Platform deleted successfully", nil))
}
