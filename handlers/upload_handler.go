package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pelayanandata/portal-go/response"
	"github.com/pelayanandata/portal-go/utils"
)

// document prefixes accepted by the upload endpoint
var uploadPrefixes = map[string]bool{
	"letters":  true,
	"payments": true,
	"data":     true,
	"media":    true,
}

// Upload godoc
// @Summary Upload a supporting document
// @Description Stores the file in object storage and returns its URL for use in lifecycle payloads.
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param prefix formData string true "letters, payments, data or media"
// @Success 201 {object} response.UploadResponse
// @Failure 400 {object} response.ErrorResponse "Invalid upload"
// @Router /uploads [post]
func Upload(c *gin.Context) {
	prefix := c.PostForm("prefix")
	if !uploadPrefixes[prefix] {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid prefix"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	objectName := utils.ObjectName(prefix, fileHeader.Filename)
	url, err := utils.UploadObject(c.Request.Context(), objectName,
		fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{URL: url})
}
