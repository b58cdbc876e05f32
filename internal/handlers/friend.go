package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pipelinekit/asset-tracking-api/internal/dto"
	apierrors "github.com/pipelinekit/asset-tracking-api/internal/errors"
	"github.com/pipelinekit/asset-tracking-api/internal/services"
)

// FriendHandler coordinates friend-graph HTTP handlers.
type FriendHandler struct {
	friendService *services.FriendService
}

// NewFriendHandler creates a new FriendHandler.
func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// AddFriend appends a friend to the caller's friend set.
func (h *FriendHandler) AddFriend(c *gin.Context) {
	type AddFriendRequest struct {
		UID       string `json:"uid"`
		FriendUID string `json:"friendUid"`
	}

	var req AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Invalid request body")
		return
	}

	if req.UID == "" || req.FriendUID == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Please provide uid and friendUid")
		return
	}

	friends, err := h.friendService.AddFriend(req.UID, req.FriendUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfAdd):
			apierrors.BadRequest(c, apierrors.ErrCodeSelfAdd, "Cannot add yourself as a friend")
		case errors.Is(err, services.ErrFriendNotFound):
			apierrors.NotFound(c, apierrors.ErrCodeFriendNotFound, "Friend user not found")
		case errors.Is(err, services.ErrAlreadyFriends):
			apierrors.BadRequest(c, apierrors.ErrCodeAlreadyFriends, "Friend already added")
		default:
			apierrors.InternalError(c, "Failed to add friend")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Friend added successfully",
		"friendsList": friends,
	})
}

// GetFriends resolves the caller's friend set to public user fields.
func (h *FriendHandler) GetFriends(c *gin.Context) {
	type GetFriendsRequest struct {
		UID string `json:"uid"`
	}

	var req GetFriendsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingUID, "Please provide uid")
		return
	}

	friends, err := h.friendService.ListFriends(req.UID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch friends")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"friends": dto.ToUserDTOs(friends),
	})
}
