package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pipelinekit/asset-tracking-api/internal/dto"
	apierrors "github.com/pipelinekit/asset-tracking-api/internal/errors"
	"github.com/pipelinekit/asset-tracking-api/internal/services"
)

// FileHandler coordinates file-record HTTP handlers.
type FileHandler struct {
	fileService *services.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService *services.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// Upload records an uploaded file against a project.
func (h *FileHandler) Upload(c *gin.Context) {
	type UploadRequest struct {
		ProjectID   string `json:"projectId"`
		DownloadURL string `json:"downloadURL"`
		Filename    string `json:"filename"`
		StoragePath string `json:"storagePath"`
		Type        string `json:"type"`
		Description string `json:"description"`
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Invalid request body")
		return
	}

	if req.ProjectID == "" || req.DownloadURL == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Please provide projectId and downloadURL")
		return
	}

	file, err := h.fileService.CreateRecord(services.UploadInput{
		ProjectID:   req.ProjectID,
		DownloadURL: req.DownloadURL,
		Filename:    req.Filename,
		StoragePath: req.StoragePath,
		Type:        req.Type,
		Description: req.Description,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to upload file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    dto.ToFileDTO(*file),
	})
}

// GetProjectImages maps each requested project ID to its latest image URL.
func (h *FileHandler) GetProjectImages(c *gin.Context) {
	type ImagesRequest struct {
		ProjectIDs []string `json:"projectIds"`
	}

	var req ImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectIDs == nil {
		apierrors.BadRequest(c, apierrors.ErrCodeInvalidProjectIDs, "Please provide projectIds as array")
		return
	}

	images, err := h.fileService.LatestProjectImages(req.ProjectIDs)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch images")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"images": images,
	})
}
