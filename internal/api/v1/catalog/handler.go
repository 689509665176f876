package catalog

import (
	"net/http"

	"printlist-backend/internal/models"
	"printlist-backend/internal/services"
	"printlist-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListCategories godoc
// @Summary List categories
// @Description Retrieve the artifact categories the generation workflow supports
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.Category}
// @Failure 500 {object} utils.Response
// @Router /categories [get]
func ListCategories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch categories"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", categories))
}

// ListModels godoc
// @Summary List generation models
// @Description Retrieve the registered downstream generation models
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=[]models.AIModel}
// @Failure 500 {object} utils.Response
// @Router /models [get]
func ListModels(c *gin.Context) {
	aiModels, err := services.ListAIModels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch models"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", aiModels))
}

type CreateModelRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Status      models.AIModelStatus `json:"status" binding:"required,oneof=open closed draft"`
}

// CreateModel godoc
// @Summary Register a generation model
// @Description Register a new downstream generation model. Admin only.
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateModelRequest true "Model details"
// @Success 201 {object} utils.Response{data=models.AIModel}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/models [post]
func CreateModel(c *gin.Context) {
	var req CreateModelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	aiModel, err := services.CreateAIModel(req.Name, req.Description, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create model"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Model created successfully", aiModel))
}
