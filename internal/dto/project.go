package dto

import (
	"time"

	"github.com/pipelinekit/asset-tracking-api/internal/models"
)

// CreatorDTO identifies who created a project
type CreatorDTO struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// ProjectDTO represents a project in API responses. Both "id" and
// "projectId" are populated for compatibility with existing clients.
type ProjectDTO struct {
	ProjectID   string     `json:"projectId"`
	ID          string     `json:"id"`
	ProjectName string     `json:"projectName"`
	Description string     `json:"description"`
	Template    string     `json:"template"`
	Status      string     `json:"status"`
	CreatedBy   CreatorDTO `json:"createdBy"`
	Members     []string   `json:"members"`
	Images      []string   `json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProjectDetailDTO represents the companion detail record, or null when the
// project has none.
type ProjectDetailDTO struct {
	ProjectID   string    `json:"projectId"`
	Sequences   []string  `json:"sequences"`
	ShotStatus  []string  `json:"shotStatus"`
	AssetStatus []string  `json:"assetStatus"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToProjectDTO converts a project to its API representation
func ToProjectDTO(project models.Project) ProjectDTO {
	members := make([]string, len(project.Members))
	for i, m := range project.Members {
		members[i] = m.UserID
	}

	return ProjectDTO{
		ProjectID:   project.ID,
		ID:          project.ID,
		ProjectName: project.Name,
		Description: project.Description,
		Template:    project.Template,
		Status:      "Active",
		CreatedBy: CreatorDTO{
			UID:  project.CreatedByUID,
			Name: project.CreatedByName,
		},
		Members:   members,
		Images:    project.Images,
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToProjectDetailDTO converts a detail record, returning nil for nil input
func ToProjectDetailDTO(detail *models.ProjectDetail) *ProjectDetailDTO {
	if detail == nil {
		return nil
	}
	return &ProjectDetailDTO{
		ProjectID:   detail.ProjectID,
		Sequences:   detail.Sequences,
		ShotStatus:  detail.ShotStatus,
		AssetStatus: detail.AssetStatus,
		CreatedAt:   detail.CreatedAt,
	}
}
