package dto

// HealthResponse is the body served by the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
