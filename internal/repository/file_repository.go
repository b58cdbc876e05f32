package repository

import (
	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"gorm.io/gorm"
)

// GormFileRepository is a GORM implementation of FileRepository
type GormFileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &GormFileRepository{db: db}
}

// Create inserts a new file record
func (r *GormFileRepository) Create(file *models.FileRecord) error {
	return r.db.Create(file).Error
}

// ListByProjectsAndType lists file records for the given projects and type,
// newest first
func (r *GormFileRepository) ListByProjectsAndType(projectIDs []string, fileType string) ([]models.FileRecord, error) {
	var files []models.FileRecord
	if len(projectIDs) == 0 {
		return files, nil
	}
	if err := r.db.
		Where("project_id IN ? AND type = ?", projectIDs, fileType).
		Order("created_at DESC").
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
