package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/models"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/models/dto"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/services"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// ListFaculties retrieves all faculty members
// @Summary List faculty members
// @Description Retrieves all faculty members ordered by name, optionally filtered by a case-insensitive name substring
// @Tags faculty
// @Accept json
// @Produce json
// @Param q query string false "Filter by name substring (case-insensitive)"
// @Success 200 {array} dto.FacultyResponse "Faculty members retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) ListFaculties(ctx *gin.Context) {
	nameFilter := ctx.Query("q")

	faculties, err := c.facultyService.ListFaculties(ctx, nameFilter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFacultyListResponse(faculties))
}

// GetFacultyByID retrieves a faculty member by ID
// @Summary Get faculty member by ID
// @Description Retrieves a specific faculty member by their ID
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.FacultyResponse "Faculty member retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID")
		errorDetail = errorDetail.WithDetails("Faculty ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFacultyResponse(faculty))
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty member
// @Description Creates a new faculty member with the provided name
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.FacultyResponse "Faculty member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Faculty member already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	faculty := models.Faculty{Name: req.Name}
	id, err := c.facultyService.CreateFaculty(ctx, &faculty)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	faculty.ID = id

	ctx.JSON(http.StatusCreated, dto.NewFacultyResponse(&faculty))
}

// DeleteFaculty deletes a faculty member
// @Summary Delete a faculty member
// @Description Deletes an existing faculty member by their ID
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 204 "Faculty member deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID")
		errorDetail = errorDetail.WithDetails("Faculty ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
