package upload

import (
	"net/http"
	"os"
	"path/filepath"

	"printlist-backend/internal/services"
	"printlist-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOSSToken godoc
// @Summary Get OSS STS Token
// @Description Get short-lived STS credentials so the browser can upload STL files to the bucket directly
// @Tags common
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.STSCredentials}
// @Failure 500 {object} utils.Response
// @Router /common/upload/token [get]
func GetOSSToken(c *gin.Context) {
	token, err := services.GetOSSTSToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to get OSS token: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OSS token retrieved successfully", token))
}

// UploadSTL godoc
// @Summary Upload an STL file
// @Description Upload a 3D model file (.stl, .obj, .3mf) and receive its public URL for use as a submission stl_url
// @Tags common
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Model file"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /common/upload/stl [post]
func UploadSTL(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Missing file"))
		return
	}

	// Validate the extension before touching disk.
	if _, err := services.STLObjectKey(file.Filename); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store uploaded file"))
		return
	}
	defer os.Remove(tmpPath)

	url, err := services.UploadSTL(tmpPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Upload failed: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("File uploaded successfully", gin.H{"url": url}))
}
