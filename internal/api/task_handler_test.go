package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrack/tasktrack/internal/domain"
	"github.com/tasktrack/tasktrack/internal/service"
	"github.com/tasktrack/tasktrack/internal/store"
)

// stubTaskService is a service.TaskService double with per-method results.
type stubTaskService struct {
	createID  int64
	createErr error
	listTasks []domain.Task
	listErr   error
	getTask   *domain.Task
	getErr    error
	updateErr error
	deleteErr error

	gotStatus domain.TaskStatus
	gotID     int64
}

var _ service.TaskService = (*stubTaskService)(nil)

func (s *stubTaskService) CreateTask(ctx context.Context, title string, description *string) (int64, error) {
	return s.createID, s.createErr
}

func (s *stubTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.listTasks, s.listErr
}

func (s *stubTaskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	s.gotID = id
	return s.getTask, s.getErr
}

func (s *stubTaskService) UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	s.gotID = id
	s.gotStatus = status
	if !domain.IsValidTaskStatus(status) {
		return domain.ErrInvalidTaskStatus
	}
	return s.updateErr
}

func (s *stubTaskService) DeleteTask(ctx context.Context, id int64) error {
	s.gotID = id
	return s.deleteErr
}

// newTaskRouter mounts the handler on a chi router so URL params resolve.
func newTaskRouter(svc service.TaskService) http.Handler {
	h := NewTaskHandler(svc, nil)
	r := chi.NewRouter()
	r.Post("/tasks", h.CreateTask)
	r.Get("/tasks", h.ListTasks)
	r.Get("/tasks/{id}", h.GetTask)
	r.Put("/tasks/{id}", h.UpdateTaskStatus)
	r.Delete("/tasks/{id}", h.DeleteTask)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateTaskHandler(t *testing.T) {
	t.Parallel()

	t.Run("creates task", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{createID: 7}
		rec := doJSON(t, newTaskRouter(svc), http.MethodPost, "/tasks", `{"title":"Ship it"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreateTaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(7), resp.ID)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		rec := doJSON(t, newTaskRouter(svc), http.MethodPost, "/tasks", `{"description":"no title"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Title is required")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		rec := doJSON(t, newTaskRouter(svc), http.MethodPost, "/tasks", `{"title"`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure is a server error", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{createErr: store.NewStoreError("task", "create", "boom", errors.New("io"))}
		rec := doJSON(t, newTaskRouter(svc), http.MethodPost, "/tasks", `{"title":"Ship it"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom", "internal detail must not leak")
	})
}

func TestListTasksHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns tasks as JSON array", func(t *testing.T) {
		t.Parallel()
		desc := "details"
		svc := &stubTaskService{listTasks: []domain.Task{
			{ID: 1, Title: "first", Status: domain.TaskStatusPending},
			{ID: 2, Title: "second", Description: &desc, Status: domain.TaskStatusCompleted},
		}}
		rec := doJSON(t, newTaskRouter(svc), http.MethodGet, "/tasks", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var tasks []domain.Task
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&tasks))
		require.Len(t, tasks, 2)
		assert.Nil(t, tasks[0].Description)
		require.NotNil(t, tasks[1].Description)
		assert.Equal(t, "details", *tasks[1].Description)
	})

	t.Run("empty store returns empty array", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{listTasks: []domain.Task{}}
		rec := doJSON(t, newTaskRouter(svc), http.MethodGet, "/tasks", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})
}

func TestGetTaskHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns the task", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{getTask: &domain.Task{ID: 3, Title: "found", Status: domain.TaskStatusPending}}
		rec := doJSON(t, newTaskRouter(svc), http.MethodGet, "/tasks/3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(3), svc.gotID)

		var task domain.Task
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&task))
		assert.Equal(t, "found", task.Title)
		assert.Nil(t, task.Description, "absent description serializes as null")
	})

	t.Run("missing task is 404", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{getErr: store.ErrTaskNotFound}
		rec := doJSON(t, newTaskRouter(svc), http.MethodGet, "/tasks/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Task not found")
	})

	t.Run("non-numeric id is 404", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		rec := doJSON(t, newTaskRouter(svc), http.MethodGet, "/tasks/abc", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateTaskStatusHandler(t *testing.T) {
	t.Parallel()

	t.Run("updates status", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		rec := doJSON(t, newTaskRouter(svc), http.MethodPut, "/tasks/5", `{"status":"in-progress"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), svc.gotID)
		assert.Equal(t, domain.TaskStatusInProgress, svc.gotStatus)
		assert.Contains(t, rec.Body.String(), "Task updated successfully")
	})

	t.Run("out-of-enum status is 400 regardless of id", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		for _, path := range []string{"/tasks/5", "/tasks/99999", "/tasks/abc"} {
			rec := doJSON(t, newTaskRouter(svc), http.MethodPut, path, `{"status":"archived"}`)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
			assert.Contains(t, rec.Body.String(), "Invalid status")
		}
	})

	t.Run("missing status is 400", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		rec := doJSON(t, newTaskRouter(svc), http.MethodPut, "/tasks/5", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing task is 404", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{updateErr: store.ErrTaskNotFound}
		rec := doJSON(t, newTaskRouter(svc), http.MethodPut, "/tasks/42", `{"status":"completed"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTaskHandler(t *testing.T) {
	t.Parallel()

	t.Run("deletes task", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		rec := doJSON(t, newTaskRouter(svc), http.MethodDelete, "/tasks/5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), svc.gotID)
		assert.Contains(t, rec.Body.String(), "Task deleted successfully")
	})

	t.Run("missing task is 404", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{deleteErr: store.ErrTaskNotFound}
		rec := doJSON(t, newTaskRouter(svc), http.MethodDelete, "/tasks/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is 404", func(t *testing.T) {
		t.Parallel()
		svc := &stubTaskService{}
		rec := doJSON(t, newTaskRouter(svc), http.MethodDelete, "/tasks/abc", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
