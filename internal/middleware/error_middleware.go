package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/models/dto"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/apperrors"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	// Check for specific error types
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()),
		))
		return
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Faculty member not found"),
		))
		return
	case errors.Is(err, apperrors.ErrFacultyAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Faculty member with this name already exists"),
		))
		return
	default:
		// Unknown errors are logged here, clients only see a generic message
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
		return
	}
}
