package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pipelinekit/asset-tracking-api/internal/dto"
	apierrors "github.com/pipelinekit/asset-tracking-api/internal/errors"
	"github.com/pipelinekit/asset-tracking-api/internal/services"
)

// ProjectHandler coordinates project lifecycle HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project with its detail record and default folders.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		ProjectName string            `json:"projectName"`
		Description string            `json:"description"`
		Template    string            `json:"template"`
		CreatedBy   *services.Creator `json:"createdBy"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingProjectName, "Invalid request body")
		return
	}

	if req.ProjectName == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingProjectName, "Please provide project name")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.ProjectName,
		Description: req.Description,
		Template:    req.Template,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Project created successfully",
		"projectId": project.ID,
		"project": gin.H{
			"projectId":   project.ID,
			"projectName": project.Name,
		},
		"user": services.Creator{
			UID:  project.CreatedByUID,
			Name: project.CreatedByName,
		},
	})
}

// GetProjectDetails returns a project along with its detail record, which
// may be null.
func (h *ProjectHandler) GetProjectDetails(c *gin.Context) {
	projectID, ok := bindProjectID(c)
	if !ok {
		return
	}

	project, detail, err := h.projectService.GetProjectWithDetails(projectID)
	if err != nil {
		respondProjectError(c, err, "Failed to fetch project details")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":        dto.ToProjectDTO(*project),
		"projectDetails": dto.ToProjectDetailDTO(detail),
	})
}

// GetProjectInfo returns a single project.
func (h *ProjectHandler) GetProjectInfo(c *gin.Context) {
	projectID, ok := bindProjectID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(projectID)
	if err != nil {
		respondProjectError(c, err, "Failed to fetch project info")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": dto.ToProjectDTO(*project),
	})
}

// ListProjects lists projects the user created or is a member of.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	type ListRequest struct {
		UID string `json:"uid"`
	}

	var req ListRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingUID, "Please provide user id")
		return
	}

	projects, err := h.projectService.ListProjectsForUser(req.UID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
	})
}

// AddProjectImage appends an image URL to the project's image sequence.
func (h *ProjectHandler) AddProjectImage(c *gin.Context) {
	type AddImageRequest struct {
		ProjectID string `json:"projectId"`
		ImageURL  string `json:"imageUrl"`
	}

	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Invalid request body")
		return
	}

	if req.ProjectID == "" || req.ImageURL == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Please provide project id and image url")
		return
	}

	if err := h.projectService.AddProjectImage(req.ProjectID, req.ImageURL); err != nil {
		respondProjectError(c, err, "Failed to add image to project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Image added to project",
		"projectId": req.ProjectID,
	})
}

// DeleteProject removes a project, its child records, and its stored files.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	type DeleteRequest struct {
		ProjectID string `json:"projectId"`
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingProjectID, "Project ID is required")
		return
	}

	if err := h.projectService.DeleteProject(req.ProjectID); err != nil {
		respondProjectError(c, err, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Project and storage deleted successfully",
		"projectId": req.ProjectID,
	})
}

func bindProjectID(c *gin.Context) (string, bool) {
	type ProjectIDRequest struct {
		ProjectID string `json:"projectId"`
	}

	var req ProjectIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingProjectID, "Please provide project id")
		return "", false
	}
	return req.ProjectID, true
}

func respondProjectError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrProjectNotFound) {
		apierrors.NotFound(c, apierrors.ErrCodeProjectNotFound, "Project not found")
		return
	}
	apierrors.InternalError(c, fallback)
}
