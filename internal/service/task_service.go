// Package service contains the orchestration layer between the HTTP
// handlers and the persistence layer. Services validate input shape,
// delegate to stores, and wrap unexpected failures in service error types.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tasktrack/tasktrack/internal/domain"
	"github.com/tasktrack/tasktrack/internal/platform/logger"
	"github.com/tasktrack/tasktrack/internal/store"
)

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// TaskService provides task-related operations. Authentication alone gates
// access to every operation; there is no per-principal filtering, so any
// authenticated caller may act on any task.
type TaskService interface {
	// CreateTask validates and stores a new task, returning its assigned ID.
	// Returns domain.ErrEmptyTitle if the title is empty.
	CreateTask(ctx context.Context, title string, description *string) (int64, error)

	// ListTasks returns every stored task in insertion order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// GetTask retrieves a task by ID.
	// Returns store.ErrTaskNotFound if no task has that ID.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTaskStatus sets the status of an existing task.
	// Returns domain.ErrInvalidTaskStatus if the status is not in the enum,
	// checked before any store access, and store.ErrTaskNotFound if no task
	// has that ID.
	UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) error

	// DeleteTask removes a task by ID.
	// Returns store.ErrTaskNotFound if no task has that ID.
	DeleteTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, errors.New("taskStore cannot be nil")
	}

	// Use provided logger or create default
	if log == nil {
		log = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	title string,
	description *string,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(title, description)
	if err != nil {
		return 0, err
	}

	id, err := s.taskStore.Create(ctx, task)
	if err != nil {
		log.Error("failed to create task", "title", title, "error", err)
		return 0, NewTaskServiceError("create", "failed to store task", err)
	}

	log.Debug("task created", "task_id", id)
	return id, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		log.Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list", "failed to list tasks", err)
	}

	return tasks, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to get task", "task_id", id, "error", err)
		return nil, NewTaskServiceError("get", "failed to get task", err)
	}

	return task, nil
}

// UpdateTaskStatus implements TaskService.UpdateTaskStatus
// The status check runs first so an out-of-enum value is rejected without
// touching the store, for existing and missing IDs alike.
func (s *taskServiceImpl) UpdateTaskStatus(
	ctx context.Context,
	id int64,
	status domain.TaskStatus,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsValidTaskStatus(status) {
		return domain.ErrInvalidTaskStatus
	}

	if err := s.taskStore.UpdateStatus(ctx, id, status); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to update task status",
			"task_id", id,
			"status", status,
			"error", err)
		return NewTaskServiceError("update", "failed to update task status", err)
	}

	log.Debug("task status updated", "task_id", id, "status", status)
	return nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete task", "task_id", id, "error", err)
		return NewTaskServiceError("delete", "failed to delete task", err)
	}

	log.Debug("task deleted", "task_id", id)
	return nil
}
