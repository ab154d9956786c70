package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/tasktrack/internal/domain"
	"github.com/tasktrack/tasktrack/internal/store"
)

// fakeTaskStore is an in-memory store.TaskStore test double with
// overridable failure injection.
type fakeTaskStore struct {
	tasks  map[int64]domain.Task
	nextID int64
	err    error // returned by every method when set
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[int64]domain.Task), nextID: 1}
}

func (f *fakeTaskStore) Create(ctx context.Context, task *domain.Task) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	id := f.nextID
	f.nextID++
	task.ID = id
	f.tasks[id] = *task
	return id, nil
}

func (f *fakeTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	tasks := []domain.Task{}
	for i := int64(1); i < f.nextID; i++ {
		if task, ok := f.tasks[i]; ok {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	task, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

func (f *fakeTaskStore) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	if f.err != nil {
		return f.err
	}
	task, ok := f.tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	task.Status = status
	f.tasks[id] = task
	return nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func newTestService(t *testing.T) (TaskService, *fakeTaskStore) {
	t.Helper()
	fake := newFakeTaskStore()
	svc, err := NewTaskService(fake, nil)
	require.NoError(t, err)
	return svc, fake
}

func TestNewTaskService(t *testing.T) {
	t.Parallel()

	_, err := NewTaskService(nil, nil)
	assert.Error(t, err, "nil store must be rejected")
}

func TestCreateTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates task and returns id", func(t *testing.T) {
		t.Parallel()
		svc, fake := newTestService(t)

		id, err := svc.CreateTask(ctx, "T1", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		stored := fake.tasks[id]
		assert.Equal(t, "T1", stored.Title)
		assert.Equal(t, domain.TaskStatusPending, stored.Status)
		assert.Nil(t, stored.Description)
	})

	t.Run("rejects empty title before store access", func(t *testing.T) {
		t.Parallel()
		svc, fake := newTestService(t)
		fake.err = errors.New("store must not be called")

		_, err := svc.CreateTask(ctx, "", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	})

	t.Run("wraps store failure", func(t *testing.T) {
		t.Parallel()
		svc, fake := newTestService(t)
		fake.err = errors.New("disk on fire")

		_, err := svc.CreateTask(ctx, "T1", nil)
		require.Error(t, err)

		var svcErr *TaskServiceError
		assert.ErrorAs(t, err, &svcErr)
	})
}

func TestListTasks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = svc.CreateTask(ctx, "first", nil)
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "second", nil)
	require.NoError(t, err)

	tasks, err = svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)

	// Idempotent read: no mutation in between, identical result.
	again, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, again)
}

func TestGetTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.CreateTask(ctx, "T1", nil)
	require.NoError(t, err)

	task, err := svc.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "T1", task.Title)

	_, err = svc.GetTask(ctx, 42)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestUpdateTaskStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("invalid status rejected for any id", func(t *testing.T) {
		t.Parallel()
		svc, fake := newTestService(t)
		id, err := svc.CreateTask(ctx, "T1", nil)
		require.NoError(t, err)

		// Existing id
		err = svc.UpdateTaskStatus(ctx, id, domain.TaskStatus("archived"))
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)

		// Missing id: the status check still wins, no store access happens
		fake.err = errors.New("store must not be called")
		err = svc.UpdateTaskStatus(ctx, 42, domain.TaskStatus("archived"))
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	})

	t.Run("valid status updates task", func(t *testing.T) {
		t.Parallel()
		svc, fake := newTestService(t)
		id, err := svc.CreateTask(ctx, "T1", nil)
		require.NoError(t, err)

		require.NoError(t, svc.UpdateTaskStatus(ctx, id, domain.TaskStatusCompleted))
		assert.Equal(t, domain.TaskStatusCompleted, fake.tasks[id].Status)
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		err := svc.UpdateTaskStatus(ctx, 42, domain.TaskStatusCompleted)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	id, err := svc.CreateTask(ctx, "T1", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, id))

	// Delete followed by get reports not found
	_, err = svc.GetTask(ctx, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, svc.DeleteTask(ctx, id), store.ErrTaskNotFound)
}
