package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tasktrack/tasktrack/internal/domain"
	"github.com/tasktrack/tasktrack/internal/platform/logger"
	"github.com/tasktrack/tasktrack/internal/store"
)

// SQLiteTaskStore implements the store.TaskStore interface using SQLite
// as the storage backend.
type SQLiteTaskStore struct {
	db store.DBTX
}

// NewSQLiteTaskStore creates a new SQLite implementation of the TaskStore
// interface. It accepts a database connection that should be initialized
// and managed by the caller.
func NewSQLiteTaskStore(db store.DBTX) *SQLiteTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &SQLiteTaskStore{
		db: db,
	}
}

// Ensure SQLiteTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*SQLiteTaskStore)(nil)

// Create implements store.TaskStore.Create
// It inserts the task and returns the ID assigned by the database.
func (s *SQLiteTaskStore) Create(ctx context.Context, task *domain.Task) (int64, error) {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (title, description, status)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
	)
	if err != nil {
		log.Error("failed to insert task",
			"title", task.Title,
			"error", err)
		return 0, store.NewStoreError("task", "create", "failed to insert task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Error("failed to get inserted task id", "error", err)
		return 0, store.NewStoreError("task", "create", "failed to get inserted id", err)
	}

	task.ID = id
	return id, nil
}

// List implements store.TaskStore.List
// It returns every task ordered by ID. The ORDER BY is written explicitly
// so insertion order is a contract rather than an accident of the engine.
func (s *SQLiteTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, status
		FROM tasks
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, store.NewStoreError("task", "list", "failed to query tasks", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, store.NewStoreError("task", "list", "failed to scan task row", err)
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, store.NewStoreError("task", "list", "error iterating task rows", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *SQLiteTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, description, status
		FROM tasks
		WHERE id = ?
	`

	row := s.db.QueryRowContext(ctx, query, id)
	task, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task", "task_id", id, "error", err)
		return nil, store.NewStoreError("task", "get", "failed to get task", err)
	}

	return task, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus
// The status must already be validated against the domain enum; the store
// never writes an out-of-enum value because no caller path reaches it with
// one. Returns store.ErrTaskNotFound if no row matched the ID.
func (s *SQLiteTaskStore) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	log := logger.FromContext(ctx)

	query := `
		UPDATE tasks
		SET status = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		log.Error("failed to update task status",
			"task_id", id,
			"status", status,
			"error", err)
		return store.NewStoreError("task", "update", "failed to update task status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected", "task_id", id, "error", err)
		return store.NewStoreError("task", "update", "failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if no row matched the ID.
func (s *SQLiteTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query := `
		DELETE FROM tasks
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task", "task_id", id, "error", err)
		return store.NewStoreError("task", "delete", "failed to delete task", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected", "task_id", id, "error", err)
		return store.NewStoreError("task", "delete", "failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// scanTask maps one task row into a domain.Task. The description column is
// nullable, so it goes through sql.NullString before becoming a *string.
func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var task domain.Task
	var description sql.NullString

	if err := scan(&task.ID, &task.Title, &description, &task.Status); err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}

	return &task, nil
}
