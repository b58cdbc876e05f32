package repository

import (
	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFriendRepository is a GORM implementation of FriendRepository
type GormFriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new FriendRepository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &GormFriendRepository{db: db}
}

// FindByUID finds the friend list owned by uid
func (r *GormFriendRepository) FindByUID(uid string) (*models.FriendList, error) {
	var list models.FriendList
	if err := r.db.Where("uid = ?", uid).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// Upsert creates or replaces the friend list keyed by uid
func (r *GormFriendRepository) Upsert(list *models.FriendList) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"friends", "updated_at"}),
		}).
		Create(list).Error
}
