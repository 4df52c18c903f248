package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealscope/backend/internal/service"
	"github.com/mealscope/backend/internal/types"
)

// presignExpiry is how long presigned download URLs stay valid
const presignExpiry = 15 * time.Minute

// UploadHandler handles file upload requests
type UploadHandler struct {
	uploadService service.IUploadService
}

// NewUploadHandler creates a new UploadHandler instance
func NewUploadHandler(uploadService service.IUploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RegisterRoutes registers the upload routes
func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/uploads")
	{
		uploads.POST("", h.Upload)
		uploads.GET("/presign", h.Presign)
	}
}

// Upload stores the multipart "file" entry and returns its URL. Faults
// are reported through the envelope's success flag, not an HTTP error.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.UploadResult{
			Success: false,
			Error:   "No file uploaded.",
		})
		return
	}

	result := h.uploadService.Upload(c.Request.Context(), fileHeader)
	c.JSON(http.StatusOK, result)
}

// Presign returns a presigned download URL for a stored object key
func (h *UploadHandler) Presign(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	url, err := h.uploadService.PresignedURL(c.Request.Context(), key, presignExpiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to presign URL: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
