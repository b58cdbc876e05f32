package models

import (
	"time"

	"gorm.io/datatypes"
)

// FriendList holds the one-directional friend set for a user. One row per
// owner, upserted as a whole.
type FriendList struct {
	UID       string                      `gorm:"type:uuid;primarykey" json:"uid"`
	Friends   datatypes.JSONSlice[string] `gorm:"not null" json:"friends"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}
