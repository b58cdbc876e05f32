package services

import (
	"fmt"

	"github.com/pipelinekit/asset-tracking-api/internal/constants"
	"github.com/pipelinekit/asset-tracking-api/internal/models"
	"github.com/pipelinekit/asset-tracking-api/internal/repository"
)

// FileService manages file records attached to projects.
type FileService struct {
	fileRepo repository.FileRepository
}

// NewFileService creates a new FileService.
func NewFileService(fileRepo repository.FileRepository) *FileService {
	return &FileService{
		fileRepo: fileRepo,
	}
}

// UploadInput represents parameters to record an uploaded file.
type UploadInput struct {
	ProjectID   string
	DownloadURL string
	Filename    string
	StoragePath string
	Type        string
	Description string
}

// CreateRecord inserts a file record for a project, filling in defaults for
// omitted fields. The project is not checked for existence.
func (s *FileService) CreateRecord(input UploadInput) (*models.FileRecord, error) {
	filename := input.Filename
	if filename == "" {
		filename = constants.DefaultFilename
	}

	storagePath := input.StoragePath
	if storagePath == "" {
		storagePath = filename
	}

	fileType := input.Type
	if fileType == "" {
		fileType = constants.DefaultFileType
	}

	file := &models.FileRecord{
		ProjectID:   input.ProjectID,
		DownloadURL: input.DownloadURL,
		Filename:    filename,
		StoragePath: storagePath,
		Type:        fileType,
		Description: input.Description,
	}

	if err := s.fileRepo.Create(file); err != nil {
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}
	return file, nil
}

// LatestProjectImages maps each project ID to the download URL of its most
// recently created image record. Projects with no images are omitted.
func (s *FileService) LatestProjectImages(projectIDs []string) (map[string]string, error) {
	files, err := s.fileRepo.ListByProjectsAndType(projectIDs, constants.DefaultFileType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project images: %w", err)
	}

	images := make(map[string]string)
	for _, file := range files {
		// Files arrive newest first, so the first hit per project wins.
		if _, ok := images[file.ProjectID]; !ok {
			images[file.ProjectID] = file.DownloadURL
		}
	}
	return images, nil
}
