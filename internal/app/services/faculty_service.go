package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/models"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/repositories"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/apperrors"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	ListFaculties(ctx context.Context, nameFilter string) ([]*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// validateFaculty validates faculty data before database operations.
// The name is normalized in place so the stored row carries no surrounding
// whitespace.
func (s *facultyServiceImpl) validateFaculty(faculty *models.Faculty) error {
	if faculty == nil {
		return fmt.Errorf("%w: faculty is nil", apperrors.ErrValidationFailed)
	}

	faculty.Name = strings.TrimSpace(faculty.Name)
	if faculty.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateFaculty creates a new faculty
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	if err := s.validateFaculty(faculty); err != nil {
		return 0, err
	}

	id, err := s.facultyRepo.CreateFaculty(ctx, faculty)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			return 0, apperrors.ErrFacultyAlreadyExists
		}
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}
	return id, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	faculty, err := s.facultyRepo.GetFacultyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// ListFaculties retrieves faculties, optionally filtered by a
// case-insensitive substring of the name
func (s *facultyServiceImpl) ListFaculties(ctx context.Context, nameFilter string) ([]*models.Faculty, error) {
	faculties, err := s.facultyRepo.ListFaculties(ctx, nameFilter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// DeleteFaculty deletes a faculty by ID
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}

	err := s.facultyRepo.DeleteFaculty(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return apperrors.ErrFacultyNotFound
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
