package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pipelinekit/asset-tracking-api/internal/constants"
	"github.com/pipelinekit/asset-tracking-api/internal/dto"
	apierrors "github.com/pipelinekit/asset-tracking-api/internal/errors"
	"github.com/pipelinekit/asset-tracking-api/internal/middleware"
	"github.com/pipelinekit/asset-tracking-api/internal/services"
)

// AuthHandler coordinates account-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		AvatarURL string `json:"avatarURL"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" || req.AvatarURL == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Username, email, password and avatar are required")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			apierrors.BadRequest(c, apierrors.ErrCodeWeakPassword, "Password must be at least 6 characters")
		case errors.Is(err, services.ErrDuplicateUser):
			apierrors.Conflict(c, apierrors.ErrCodeDuplicateUser, "Email or username already exists")
		default:
			apierrors.InternalError(c, "Registration failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    dto.ToUserDTO(*user),
	})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingCredentials, "Invalid request body")
		return
	}

	if req.Identifier == "" || req.Password == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingCredentials, "Email/Username and password required")
		return
	}

	user, err := h.authService.Login(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, apierrors.ErrCodeInvalidLogin, "Invalid email/username or password")
			return
		}
		apierrors.InternalError(c, "Login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    dto.ToUserDTO(*user),
	})
}

// GetUser returns the public fields of a user by ID.
func (h *AuthHandler) GetUser(c *gin.Context) {
	type GetUserRequest struct {
		ID string `json:"id"`
	}

	var req GetUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingID, "Please provide user id")
		return
	}

	user, err := h.authService.GetUser(req.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, apierrors.ErrCodeUserNotFound, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": dto.ToUserDetailDTO(*user),
	})
}

// SearchUsers finds users by username substring.
func (h *AuthHandler) SearchUsers(c *gin.Context) {
	type SearchRequest struct {
		Query string `json:"query"`
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingQuery, "Please provide search query")
		return
	}

	users, err := h.authService.SearchUsers(req.Query)
	if err != nil {
		apierrors.InternalError(c, "Search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": dto.ToUserDTOs(users),
	})
}

// UpdateProfile applies a partial profile update.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	type ProfileRequest struct {
		UID      string `json:"uid"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UID == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingUID, "Please provide user id")
		return
	}

	if err := h.authService.UpdateProfile(req.UID, req.Username, req.Email); err != nil {
		apierrors.InternalError(c, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
	})
}

// ChangePassword verifies the old password and stores a new one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	type ChangePasswordRequest struct {
		UID         string `json:"uid"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Invalid request body")
		return
	}

	if req.UID == "" || req.OldPassword == "" || req.NewPassword == "" {
		apierrors.BadRequest(c, apierrors.ErrCodeMissingFields, "Please fill in all fields")
		return
	}

	if err := h.authService.ChangePassword(req.UID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			apierrors.BadRequest(c, apierrors.ErrCodePasswordTooShort, "New password must be at least 6 characters")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, apierrors.ErrCodeUserNotFound, "User not found")
		case errors.Is(err, services.ErrInvalidOldPassword):
			apierrors.Unauthorized(c, apierrors.ErrCodeInvalidOldPassword, "Old password is incorrect")
		default:
			apierrors.InternalError(c, "Failed to change password")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}

// GetCurrentUser returns the session-authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, apierrors.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, apierrors.ErrCodeUserNotFound, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": dto.ToUserDTO(*user),
	})
}
