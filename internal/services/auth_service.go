package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pipelinekit/asset-tracking-api/internal/constants"
	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"github.com/pipelinekit/asset-tracking-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUser        = errors.New("email or username already exists")
	ErrWeakPassword         = errors.New("password too short")
	ErrInvalidCredentials   = errors.New("invalid email/username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidOldPassword   = errors.New("old password is incorrect")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles account related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      string
	AvatarURL string
}

// Register creates a new user with a normalized email and a hashed password.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrWeakPassword
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)

	taken, err := s.userRepo.ExistsByEmailOrUsername(email, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if taken {
		return nil, ErrDuplicateUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	role := input.Role
	if role == "" {
		role = constants.DefaultUserRole
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		AvatarURL:    input.AvatarURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique indexes catch inserts that raced past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user. The error
// never distinguishes an unknown identifier from a wrong password.
func (s *AuthService) Login(identifier, password string) (*models.User, error) {
	user, err := s.userRepo.FindByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// SearchUsers finds users by case-insensitive username substring. No match
// yields an empty result, not an error.
func (s *AuthService) SearchUsers(query string) ([]models.User, error) {
	users, err := s.userRepo.SearchByUsername(strings.TrimSpace(query), constants.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// UpdateProfile applies a partial profile update. Only supplied fields are
// written; updated_at is always stamped.
func (s *AuthService) UpdateProfile(uid, username, email string) error {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if username != "" {
		fields["username"] = username
	}
	if email != "" {
		fields["email"] = strings.ToLower(email)
	}

	if err := s.userRepo.UpdateFields(uid, fields); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// ChangePassword re-hashes and stores a new password after verifying the old
// one.
func (s *AuthService) ChangePassword(uid, oldPassword, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return ErrWeakPassword
	}

	user, err := s.userRepo.FindByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), constants.BcryptCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	fields := map[string]interface{}{
		"password_hash": string(hashed),
		"updated_at":    time.Now(),
	}
	if err := s.userRepo.UpdateFields(uid, fields); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
