package repository

import (
	"errors"
	"fmt"

	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateProject is returned when creating the project row fails inside the setup transaction.
	ErrCreateProject = errors.New("project repository: create project failed")
	// ErrCreateProjectDetail is returned when creating the detail record fails inside the setup transaction.
	ErrCreateProjectDetail = errors.New("project repository: create project detail failed")
	// ErrCreateProjectFolders is returned when creating the default folders fails inside the setup transaction.
	ErrCreateProjectFolders = errors.New("project repository: create project folders failed")
)

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithDefaults creates the project, its detail record, and its default
// folders atomically. Either the whole set commits or none of it does.
func (r *GormProjectRepository) CreateWithDefaults(project *models.Project, detail *models.ProjectDetail, folders []models.ProjectFolder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProject, err)
		}

		detail.ProjectID = project.ID
		if err := tx.Create(detail).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProjectDetail, err)
		}

		for i := range folders {
			folders[i].ProjectID = project.ID
		}
		if err := tx.Create(&folders).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProjectFolders, err)
		}

		return nil
	})
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id string, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// FindDetail finds the detail record for a project
func (r *GormProjectRepository) FindDetail(projectID string) (*models.ProjectDetail, error) {
	var detail models.ProjectDetail
	if err := r.db.Where("project_id = ?", projectID).First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListForUser lists projects the user created or is a member of. The join
// plus DISTINCT dedupes projects the user both created and joined.
func (r *GormProjectRepository) ListForUser(uid string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.
		Distinct("projects.*").
		Joins("LEFT JOIN project_members ON project_members.project_id = projects.id").
		Where("projects.created_by_uid = ? OR project_members.user_id = ?", uid, uid).
		Preload("Members").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// AddMember adds a member to a project
func (r *GormProjectRepository) AddMember(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project and all of its child records in a transaction
func (r *GormProjectRepository) Delete(id string) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.FileRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectFolder{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Project{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
