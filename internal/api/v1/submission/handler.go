package submission

import (
	"errors"
	"net/http"
	"strconv"

	"printlist-backend/internal/models"
	"printlist-backend/internal/services"
	"printlist-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func requestUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return models.User{}, false
	}
	return userVal.(models.User), true
}

// Create godoc
// @Summary Submit a product listing request
// @Description Create a product submission with a description and/or uploaded STL URL for a target platform
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateSubmissionRequest true "Submission"
// @Success 201 {object} utils.Response{data=models.ProductSubmission}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /submissions [post]
func Create(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var req CreateSubmissionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	submission, err := services.CreateSubmission(user.ID, req.PlatformID, req.Description, req.STLURL)
	if err != nil {
		if errors.Is(err, services.ErrEmptySubmission) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create submission"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Submission created successfully", submission))
}

// List godoc
// @Summary List own submissions
// @Description Retrieve the authenticated user's submissions, newest first
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.Response{data=SubmissionListResponse}
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /submissions [get]
func List(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	submissions, total, err := services.ListSubmissionsByUser(user.ID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch submissions"))
		return
	}

	if submissions == nil {
		submissions = []models.ProductSubmission{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", SubmissionListResponse{
		Submissions: submissions,
		Total:       total,
		Page:        page,
		Limit:       limit,
	}))
}

// Get godoc
// @Summary Get one submission
// @Description Retrieve a single submission. Users only see their own; admins see all.
// @Tags submissions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} utils.Response{data=models.ProductSubmission}
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /submissions/{id} [get]
func Get(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid submission ID"))
		return
	}

	submission, err := services.GetSubmission(uint(id), user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrSubmissionNotOwned):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch submission"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", submission))
}

// RecordResult godoc
// @Summary Record a generation result
// @Description Store the generation workflow's output and final status for a submission. Admin only.
// @Tags submissions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Submission ID"
// @Param request body RecordResultRequest true "Result payload"
// @Success 200 {object} utils.Response{data=models.ProductSubmission}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/submissions/{id}/result [put]
func RecordResult(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid submission ID"))
		return
	}

	var req RecordResultRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	submission, err := services.RecordSubmissionResult(uint(id), req.Status, req.Response)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to record result"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Result recorded successfully", submission))
}
