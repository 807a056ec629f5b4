package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/controllers"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	facultyController *controllers.FacultyController,
) {
	// API group
	api := router.Group("/api")

	// Faculty routes
	faculty := api.Group("/faculty")
	{
		faculty.GET("", facultyController.ListFaculties)
		faculty.GET("/:id", facultyController.GetFacultyByID)
		faculty.POST("", facultyController.CreateFaculty)
		faculty.DELETE("/:id", facultyController.DeleteFaculty)
	}

	// Health check endpoint
	api.GET("/health", HealthCheck)
}

// HealthCheck reports service liveness
// @Summary Health check
// @Description Returns ok when the service is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, dto.HealthResponse{Status: "ok"})
}
