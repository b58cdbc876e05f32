package services

import (
	"errors"
	"fmt"

	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"github.com/pipelinekit/asset-tracking-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSelfAdd        = errors.New("cannot add yourself as a friend")
	ErrFriendNotFound = errors.New("friend user not found")
	ErrAlreadyFriends = errors.New("friend already added")
)

// FriendService maintains the one-directional friend graph.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// NewFriendService creates a new FriendService.
func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// AddFriend appends friendUID to uid's friend set and returns the updated
// set. Adding A to B does not add B to A.
func (s *FriendService) AddFriend(uid, friendUID string) ([]string, error) {
	if uid == friendUID {
		return nil, ErrSelfAdd
	}

	if _, err := s.userRepo.FindByID(friendUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, fmt.Errorf("failed to check friend user: %w", err)
	}

	friends := []string{}
	list, err := s.friendRepo.FindByUID(uid)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch friend list: %w", err)
	}
	if list != nil {
		friends = list.Friends
	}

	for _, id := range friends {
		if id == friendUID {
			return nil, ErrAlreadyFriends
		}
	}

	friends = append(friends, friendUID)

	if err := s.friendRepo.Upsert(&models.FriendList{
		UID:     uid,
		Friends: datatypes.JSONSlice[string](friends),
	}); err != nil {
		return nil, fmt.Errorf("failed to save friend list: %w", err)
	}

	return friends, nil
}

// ListFriends resolves uid's friend set to users. IDs that no longer resolve
// are dropped silently; a user with no friend list gets an empty result.
func (s *FriendService) ListFriends(uid string) ([]models.User, error) {
	list, err := s.friendRepo.FindByUID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("failed to fetch friend list: %w", err)
	}

	if len(list.Friends) == 0 {
		return []models.User{}, nil
	}

	users, err := s.userRepo.FindByIDs(list.Friends)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve friends: %w", err)
	}
	return users, nil
}
