package store

import (
	"context"

	"github.com/tasktrack/tasktrack/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and returns the assigned ID.
	// IDs are strictly increasing and never reused, even after deletes.
	// The task must be valid according to domain validation rules; the
	// store assumes the caller has already validated it.
	Create(ctx context.Context, task *domain.Task) (int64, error)

	// List retrieves every task in the store ordered by ID, which is
	// insertion order. An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateStatus sets the status of an existing task. The caller must
	// supply a status already validated against the domain enum.
	// Returns ErrTaskNotFound if the task does not exist; exactly one row
	// is affected otherwise.
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
