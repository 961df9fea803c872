// Package dto provides data transfer objects for the task HTTP layer.
package dto

// CreateTaskRequest represents the API request for task creation.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateTaskRequest represents the API request for task updates. Absent
// fields keep their current values, so everything is a pointer.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
