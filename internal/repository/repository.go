package repository

import (
	"github.com/pipelinekit/asset-tracking-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByIdentifier finds a user whose email (case-insensitive) or
	// username (exact) matches the identifier
	FindByIdentifier(identifier string) (*models.User, error)

	// ExistsByEmailOrUsername reports whether any user holds the email or
	// the username
	ExistsByEmailOrUsername(email, username string) (bool, error)

	// SearchByUsername finds users by case-insensitive username substring
	SearchByUsername(query string, limit int) ([]models.User, error)

	// FindByIDs resolves a set of user IDs, silently skipping unknown ones
	FindByIDs(ids []string) ([]models.User, error)

	// UpdateFields applies a partial update to a user record
	UpdateFields(id string, fields map[string]interface{}) error
}

// FriendRepository defines the interface for friend list data access
type FriendRepository interface {
	// FindByUID finds the friend list owned by uid
	FindByUID(uid string) (*models.FriendList, error)

	// Upsert creates or replaces the friend list keyed by uid
	Upsert(list *models.FriendList) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithDefaults creates a project, its detail record, and its
	// default folders within a single transaction.
	CreateWithDefaults(project *models.Project, detail *models.ProjectDetail, folders []models.ProjectFolder) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id string, preload ...string) (*models.Project, error)

	// FindDetail finds the detail record for a project
	FindDetail(projectID string) (*models.ProjectDetail, error)

	// ListForUser lists projects the user created or is a member of,
	// deduplicated by project ID
	ListForUser(uid string) ([]models.Project, error)

	// AddMember adds a member to a project
	AddMember(member *models.ProjectMember) error

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project and its child records, returning the number
	// of project rows removed
	Delete(id string) (int64, error)
}

// FileRepository defines the interface for file record data access
type FileRepository interface {
	// Create inserts a new file record
	Create(file *models.FileRecord) error

	// ListByProjectsAndType lists file records for the given projects and
	// type, newest first
	ListByProjectsAndType(projectIDs []string, fileType string) ([]models.FileRecord, error)
}
