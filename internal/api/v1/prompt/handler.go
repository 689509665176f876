package prompt

import (
	"errors"
	"net/http"
	"strconv"

	"printlist-backend/internal/services"
	"printlist-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func promptKey(c *gin.Context) (platformID, categoryID uint, ok bool) {
	pid, err := strconv.Atoi(c.Param("platformId"))
	if err != nil || pid < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid platform ID"))
		return 0, 0, false
	}
	cid, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil || cid < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid category ID"))
		return 0, 0, false
	}
	return uint(pid), uint(cid), true
}

// GetActive godoc
// @Summary Get the active prompt version
// @Description Retrieve the single active prompt configuration for a platform and category
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param platformId path int true "Platform ID"
// @Param categoryId path int true "Category ID"
// @Success 200 {object} utils.Response{data=models.PromptVersion}
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/prompts/{platformId}/{categoryId}/active [get]
func GetActive(c *gin.Context) {
	platformID, categoryID, ok := promptKey(c)
	if !ok {
		return
	}

	pv, err := services.GetActivePrompt(platformID, categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNoActivePrompt) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch active prompt"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", pv))
}

// ListVersions godoc
// @Summary List prompt version history
// @Description Retrieve all saved prompt versions for a platform and category, newest first
// @Tags prompts
// @Produce json
// @Security ApiKeyAuth
// @Param platformId path int true "Platform ID"
// @Param categoryId path int true "Category ID"
// @Success 200 {object} utils.Response{data=VersionListResponse}
// @Failure 500 {object} utils.Response
// @Router /admin/prompts/{platformId}/{categoryId}/versions [get]
func ListVersions(c *gin.Context) {
	platformID, categoryID, ok := promptKey(c)
	if !ok {
		return
	}

	versions, err := services.ListPromptVersions(platformID, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch versions"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", VersionListResponse{
		Versions: versions,
		Total:    len(versions),
	}))
}

// Save godoc
// @Summary Save a new prompt version
// @Description Append a new prompt version for a platform and category and make it the active one. Re-saving the field values of a historical version is how an old version is reactivated.
// @Tags prompts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param platformId path int true "Platform ID"
// @Param categoryId path int true "Category ID"
// @Param request body SavePromptRequest true "Prompt draft"
// @Success 201 {object} utils.Response{data=models.PromptVersion}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/prompts/{platformId}/{categoryId} [post]
func Save(c *gin.Context) {
	platformID, categoryID, ok := promptKey(c)
	if !ok {
		return
	}

	var req SavePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	pv, err := services.SavePromptVersion(platformID, categoryID, services.PromptDraft{
		PromptText:  req.PromptText,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ModelID:     req.ModelID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingPlaceholder),
			errors.Is(err, services.ErrTemperatureRange),
			errors.Is(err, services.ErrInvalidMaxTokens):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrSaveConflict):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save prompt"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Prompt saved successfully", pv))
}

// Test godoc
// @Summary Test the active prompt
// @Description Run the active prompt for a platform and category through the generation webhook with a sample product description
// @Tags prompts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param platformId path int true "Platform ID"
// @Param categoryId path int true "Category ID"
// @Param request body TestPromptRequest true "Sample description"
// @Success 200 {object} utils.Response{data=TestPromptResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /admin/prompts/{platformId}/{categoryId}/test [post]
func Test(c *gin.Context) {
	platformID, categoryID, ok := promptKey(c)
	if !ok {
		return
	}

	var req TestPromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	pv, err := services.GetActivePrompt(platformID, categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNoActivePrompt) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch active prompt"))
		return
	}

	output, err := services.DispatchGeneration(pv, req.ProductDescription)
	if err != nil {
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", TestPromptResponse{
		PromptID: pv.ID,
		Version:  pv.Version,
		Rendered: services.RenderPrompt(pv, req.ProductDescription),
		Output:   output,
	}))
}
