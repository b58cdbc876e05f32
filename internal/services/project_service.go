package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"github.com/pipelinekit/asset-tracking-api/internal/repository"
	"github.com/pipelinekit/asset-tracking-api/internal/storage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

// DefaultCreator is used when a project is created without creator info.
var DefaultCreator = Creator{UID: "admin", Name: "admin"}

// Creator identifies who is creating a project.
type Creator struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// ProjectService provides business logic for project lifecycle operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	store       storage.Store
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, store storage.Store) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		store:       store,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	Template    string
	CreatedBy   *Creator
}

// CreateProject creates a project together with its detail record and the
// four default folders in one transaction.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	creator := DefaultCreator
	if input.CreatedBy != nil {
		creator = *input.CreatedBy
	}

	project := &models.Project{
		Name:          input.Name,
		Description:   input.Description,
		Template:      input.Template,
		CreatedByUID:  creator.UID,
		CreatedByName: creator.Name,
	}

	detail := &models.ProjectDetail{
		Sequences:   datatypes.JSONSlice[string]{},
		ShotStatus:  datatypes.JSONSlice[string]{},
		AssetStatus: datatypes.JSONSlice[string]{},
	}

	folders := models.DefaultFolders("")

	if err := s.projectRepo.CreateWithDefaults(project, detail, folders); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(projectID string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "Members")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetProjectWithDetails retrieves a project and its detail record. A project
// without a detail record yields a nil detail, not an error.
func (s *ProjectService) GetProjectWithDetails(projectID string) (*models.Project, *models.ProjectDetail, error) {
	project, err := s.GetProject(projectID)
	if err != nil {
		return nil, nil, err
	}

	detail, err := s.projectRepo.FindDetail(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to find project details: %w", err)
	}

	return project, detail, nil
}

// ListProjectsForUser lists projects the user created or is a member of.
func (s *ProjectService) ListProjectsForUser(uid string) ([]models.Project, error) {
	projects, err := s.projectRepo.ListForUser(uid)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// AddProjectImage appends imageURL to the project's image sequence. A URL
// that is already present leaves the list unchanged, but the project is
// still touched so updated_at advances on every call.
func (s *ProjectService) AddProjectImage(projectID, imageURL string) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	present := false
	for _, url := range project.Images {
		if url == imageURL {
			present = true
			break
		}
	}
	if !present {
		project.Images = append(project.Images, imageURL)
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(project); err != nil {
		return fmt.Errorf("failed to update project images: %w", err)
	}
	return nil
}

// DeleteProject removes the project's stored files best-effort, then deletes
// the project record and its children. Storage failures are logged and do
// not abort the delete.
func (s *ProjectService) DeleteProject(projectID string) error {
	// IDs are UUIDs; anything carrying path separators or dot segments
	// cannot name a project and must never reach the blob store.
	if strings.ContainsAny(projectID, `/\`) || strings.Contains(projectID, "..") {
		return ErrProjectNotFound
	}

	prefix := "projects/" + projectID

	paths, err := s.store.ListPrefix(prefix)
	if err != nil {
		log.Printf("warning: failed to list storage under %s: %v", prefix, err)
	}
	if len(paths) > 0 {
		if err := s.store.Remove(paths); err != nil {
			log.Printf("warning: failed to remove storage under %s: %v", prefix, err)
		}
	}

	deleted, err := s.projectRepo.Delete(projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if deleted == 0 {
		return ErrProjectNotFound
	}
	return nil
}
