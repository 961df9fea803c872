// Package usecase implements the task business logic. Every operation is
// scoped to the calling user's id: tasks belonging to other users behave
// exactly like tasks that do not exist.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	taskDomain "taskhub/internal/task/domain"
	appValidation "taskhub/internal/validation"
)

// CreateTaskInput contains the input data for task creation.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateTaskInput contains the input data for task updates. Nil fields mean
// "keep the current value".
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// UseCase defines the interface for task business logic operations.
type UseCase interface {
	// Create stores a new task owned by userID. An empty status defaults
	// to pending.
	Create(ctx context.Context, userID int64, input CreateTaskInput) (*taskDomain.Task, error)

	// List returns the user's tasks ordered by id, newest first.
	List(ctx context.Context, userID int64, offset, limit int) ([]*taskDomain.Task, error)

	// Get returns the task only when it exists and belongs to userID.
	Get(ctx context.Context, userID, taskID int64) (*taskDomain.Task, error)

	// Update replaces the provided fields of the user's task.
	Update(ctx context.Context, userID, taskID int64, input UpdateTaskInput) (*taskDomain.Task, error)

	// Delete removes the user's task.
	Delete(ctx context.Context, userID, taskID int64) error
}

// TaskRepository defines task persistence operations. Every read and write
// beyond Create filters by both task id and owner id.
type TaskRepository interface {
	Create(ctx context.Context, task *taskDomain.Task) error
	GetByIDAndUser(ctx context.Context, taskID, userID int64) (*taskDomain.Task, error)
	ListByUser(ctx context.Context, userID int64, offset, limit int) ([]*taskDomain.Task, error)
	Update(ctx context.Context, task *taskDomain.Task) error
	DeleteByIDAndUser(ctx context.Context, taskID, userID int64) error
}

// TaskUseCase handles task-related business logic.
type TaskUseCase struct {
	taskRepo TaskRepository
}

// NewTaskUseCase creates a new TaskUseCase.
func NewTaskUseCase(taskRepo TaskRepository) UseCase {
	return &TaskUseCase{
		taskRepo: taskRepo,
	}
}

func (uc *TaskUseCase) validateCreateInput(input CreateTaskInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Description,
			validation.Length(0, 4000).Error("description must be at most 4000 characters"),
		),
		validation.Field(&input.Status,
			appValidation.TaskStatusRule(taskDomain.StatusValues()...),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *TaskUseCase) validateUpdateInput(input UpdateTaskInput) error {
	// Provided fields are validated through their dereferenced values. String
	// rules skip empty strings, so each non-nil pointer also carries Required:
	// sending "" must fail, not blank out the title or escape the status enum.
	errs := validation.Errors{}
	if input.Title != nil {
		errs["title"] = validation.Validate(*input.Title,
			validation.Required.Error("title must not be empty"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		)
	}
	if input.Description != nil {
		errs["description"] = validation.Validate(*input.Description,
			validation.Length(0, 4000).Error("description must be at most 4000 characters"),
		)
	}
	if input.Status != nil {
		errs["status"] = validation.Validate(*input.Status,
			validation.Required.Error("status must not be empty"),
			appValidation.TaskStatusRule(taskDomain.StatusValues()...),
		)
	}
	return appValidation.WrapValidationError(errs.Filter())
}

// Create implements UseCase.
func (uc *TaskUseCase) Create(
	ctx context.Context,
	userID int64,
	input CreateTaskInput,
) (*taskDomain.Task, error) {
	if input.Status == "" {
		input.Status = string(taskDomain.StatusPending)
	}
	if err := uc.validateCreateInput(input); err != nil {
		return nil, err
	}

	task := &taskDomain.Task{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      taskDomain.Status(input.Status),
	}

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// List implements UseCase.
func (uc *TaskUseCase) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*taskDomain.Task, error) {
	return uc.taskRepo.ListByUser(ctx, userID, offset, limit)
}

// Get implements UseCase.
func (uc *TaskUseCase) Get(ctx context.Context, userID, taskID int64) (*taskDomain.Task, error) {
	return uc.taskRepo.GetByIDAndUser(ctx, taskID, userID)
}

// Update implements UseCase.
func (uc *TaskUseCase) Update(
	ctx context.Context,
	userID, taskID int64,
	input UpdateTaskInput,
) (*taskDomain.Task, error) {
	if err := uc.validateUpdateInput(input); err != nil {
		return nil, err
	}

	// Read-modify-write keeps absent fields at their current values. The
	// read is already owner-scoped, so a foreign task 404s here.
	task, err := uc.taskRepo.GetByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = taskDomain.Status(*input.Status)
	}

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete implements UseCase.
func (uc *TaskUseCase) Delete(ctx context.Context, userID, taskID int64) error {
	return uc.taskRepo.DeleteByIDAndUser(ctx, taskID, userID)
}
