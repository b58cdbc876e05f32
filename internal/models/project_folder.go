package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectFolder struct {
	ID          string                      `gorm:"type:uuid;primarykey" json:"id"`
	ProjectID   string                      `gorm:"type:uuid;not null;index" json:"project_id"`
	FolderName  string                      `gorm:"type:varchar(100);not null" json:"folder_name"`
	Description string                      `gorm:"type:text" json:"description"`
	Permissions datatypes.JSONSlice[string] `json:"permissions"`
	CreatedAt   time.Time                   `json:"created_at"`
}

func (f *ProjectFolder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// DefaultFolders returns the four folders created with every project.
func DefaultFolders(projectID string) []ProjectFolder {
	specs := []struct {
		name        string
		description string
	}{
		{"Assets", "Asset management folder"},
		{"Shots", "Shot management folder"},
		{"Tasks", "Task management folder"},
		{"Media", "Media files folder"},
	}

	folders := make([]ProjectFolder, len(specs))
	for i, s := range specs {
		folders[i] = ProjectFolder{
			ProjectID:   projectID,
			FolderName:  s.name,
			Description: s.description,
			Permissions: datatypes.JSONSlice[string]{},
		}
	}
	return folders
}
