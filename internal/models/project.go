package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID            string                      `gorm:"type:uuid;primarykey" json:"id"`
	Name          string                      `gorm:"type:varchar(255);not null" json:"name"`
	Description   string                      `gorm:"type:text" json:"description"`
	Template      string                      `gorm:"type:varchar(100)" json:"template"`
	CreatedByUID  string                      `gorm:"type:varchar(64);not null;index" json:"created_by_uid"`
	CreatedByName string                      `gorm:"type:varchar(255)" json:"created_by_name"`
	Images        datatypes.JSONSlice[string] `json:"images"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`

	// Relations
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Detail  *ProjectDetail  `gorm:"foreignKey:ProjectID" json:"detail,omitempty"`
	Folders []ProjectFolder `gorm:"foreignKey:ProjectID" json:"folders,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
