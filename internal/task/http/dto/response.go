// Package dto provides data transfer objects for the task HTTP layer.
package dto

import "time"

// TaskResponse represents the API response for a single task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskListResponse represents the API response for a page of tasks.
type TaskListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}
