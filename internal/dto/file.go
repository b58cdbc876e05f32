package dto

import "github.com/pipelinekit/asset-tracking-api/internal/models"

// FileDTO represents a stored file record in API responses
type FileDTO struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	FileURL   string `json:"fileUrl"`
	Filename  string `json:"filename"`
	FileType  string `json:"fileType"`
}

// ToFileDTO converts a file record to its API representation
func ToFileDTO(file models.FileRecord) FileDTO {
	return FileDTO{
		ID:        file.ID,
		ProjectID: file.ProjectID,
		FileURL:   file.DownloadURL,
		Filename:  file.Filename,
		FileType:  file.Type,
	}
}
