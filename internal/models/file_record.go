package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRecord ties an uploaded file's metadata to a project. The bytes
// themselves live in blob storage under StoragePath.
type FileRecord struct {
	ID          string    `gorm:"type:uuid;primarykey" json:"id"`
	ProjectID   string    `gorm:"type:uuid;not null;index" json:"project_id"`
	DownloadURL string    `gorm:"type:text;not null" json:"download_url"`
	Filename    string    `gorm:"type:varchar(255)" json:"filename"`
	StoragePath string    `gorm:"type:text" json:"storage_path"`
	Type        string    `gorm:"type:varchar(50);index" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *FileRecord) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
