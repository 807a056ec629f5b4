package models

// Faculty represents a row in the faculty directory
type Faculty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
