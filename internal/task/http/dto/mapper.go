// Package dto provides data transfer objects for the task HTTP layer.
package dto

import (
	"taskhub/internal/task/domain"
	"taskhub/internal/task/usecase"
)

// ToCreateTaskInput converts a CreateTaskRequest DTO to a CreateTaskInput use case input.
func ToCreateTaskInput(req CreateTaskRequest) usecase.CreateTaskInput {
	return usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
}

// ToUpdateTaskInput converts an UpdateTaskRequest DTO to an UpdateTaskInput use case input.
func ToUpdateTaskInput(req UpdateTaskRequest) usecase.UpdateTaskInput {
	return usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
}

// ToTaskResponse converts a domain Task to a TaskResponse DTO.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
	}
}

// ToTaskListResponse converts a page of domain Tasks to a TaskListResponse DTO.
func ToTaskListResponse(tasks []*domain.Task, offset, limit int) TaskListResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, ToTaskResponse(task))
	}
	return TaskListResponse{
		Tasks:  responses,
		Offset: offset,
		Limit:  limit,
	}
}
