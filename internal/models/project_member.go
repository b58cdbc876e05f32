package models

import "time"

type ProjectMember struct {
	ProjectID string    `gorm:"type:uuid;primarykey" json:"project_id"`
	UserID    string    `gorm:"type:uuid;primarykey" json:"user_id"`
	JoinedAt  time.Time `json:"joined_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
