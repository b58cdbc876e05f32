package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectDetail is the 1:1 companion record created alongside every project.
type ProjectDetail struct {
	ID          string                      `gorm:"type:uuid;primarykey" json:"id"`
	ProjectID   string                      `gorm:"type:uuid;uniqueIndex;not null" json:"project_id"`
	Sequences   datatypes.JSONSlice[string] `json:"sequences"`
	ShotStatus  datatypes.JSONSlice[string] `json:"shot_status"`
	AssetStatus datatypes.JSONSlice[string] `json:"asset_status"`
	CreatedAt   time.Time                   `json:"created_at"`
}

func (d *ProjectDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
