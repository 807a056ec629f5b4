package dto

import "github.com/kevinjohn-15/IWP-CIA-3/internal/app/models"

// FacultyResponse represents basic faculty information
type FacultyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// NewFacultyResponse converts a faculty model into its response form
func NewFacultyResponse(faculty *models.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:   faculty.ID,
		Name: faculty.Name,
	}
}

// NewFacultyListResponse converts a slice of faculty models into response form.
// Always returns a non-nil slice so an empty listing encodes as [].
func NewFacultyListResponse(faculties []*models.Faculty) []FacultyResponse {
	responses := make([]FacultyResponse, 0, len(faculties))
	for _, faculty := range faculties {
		responses = append(responses, NewFacultyResponse(faculty))
	}
	return responses
}
