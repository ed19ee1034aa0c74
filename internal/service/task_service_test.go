package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohanvs/tasklink/internal/apperr"
	"github.com/rohanvs/tasklink/internal/auth"
	"github.com/rohanvs/tasklink/internal/storage"
)

func newTaskService(t *testing.T) (*TaskService, *storage.MemoryStorage, string) {
	t.Helper()

	store := storage.NewMemoryStorage()
	userSvc := NewUserService(store, auth.NewJWTManager("test-secret", 5*time.Hour))
	registered, err := userSvc.Register(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("failed to register fixture user: %v", err)
	}

	return NewTaskService(store, store), store, registered.ID
}

func TestCreateTask(t *testing.T) {
	svc, _, userID := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "Buy milk", userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Creator != userID {
		t.Errorf("expected creator %s, got %s", userID, task.Creator)
	}
	if task.Name != "Buy milk" {
		t.Errorf("expected name 'Buy milk', got '%s'", task.Name)
	}

	tasks, err := svc.ListTasksByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	found := false
	for _, tk := range tasks {
		if tk.Name == "Buy milk" {
			found = true
		}
	}
	if !found {
		t.Error("expected created task in list-tasks result")
	}
}

func TestCreateTask_EmptyName(t *testing.T) {
	svc, store, userID := newTaskService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "", userID)
	if !apperr.IsKind(err, apperr.Validation) {
		t.Errorf("expected Validation error, got %v", err)
	}
	if apperr.From(err).Status != 422 {
		t.Errorf("expected status 422, got %d", apperr.From(err).Status)
	}

	// Validation runs before any storage access: nothing was written.
	if store.TaskCount() != 0 {
		t.Errorf("expected no tasks persisted, got %d", store.TaskCount())
	}
	user, _ := store.GetUserByID(ctx, userID)
	if len(user.Tasks) != 0 {
		t.Errorf("expected no back-references, got %v", user.Tasks)
	}
}

func TestCreateTask_CreatorNotFound(t *testing.T) {
	svc, store, _ := newTaskService(t)

	_, err := svc.CreateTask(context.Background(), "X", "nonexistent")
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
	if apperr.From(err).Status != 404 {
		t.Errorf("expected status 404, got %d", apperr.From(err).Status)
	}
	if store.TaskCount() != 0 {
		t.Errorf("expected no tasks persisted, got %d", store.TaskCount())
	}
}

func TestCreateTask_LookupFailureIsNotNotFound(t *testing.T) {
	svc, store, userID := newTaskService(t)
	store.UserLookupErr = errors.New("connection reset")

	_, err := svc.CreateTask(context.Background(), "X", userID)
	appErr := apperr.From(err)
	if appErr.Kind != apperr.Persistence {
		t.Errorf("expected Persistence for lookup failure, got kind %d", appErr.Kind)
	}
	if appErr.Status != 500 {
		t.Errorf("expected status 500, got %d", appErr.Status)
	}
}

func TestCreateTask_DualWriteFailureRollsBack(t *testing.T) {
	svc, store, userID := newTaskService(t)
	ctx := context.Background()

	store.BackRefErr = errors.New("simulated write failure")

	_, err := svc.CreateTask(ctx, "Buy milk", userID)
	if !apperr.IsKind(err, apperr.Persistence) {
		t.Errorf("expected Persistence error, got %v", err)
	}

	if store.TaskCount() != 0 {
		t.Errorf("expected no task persisted after aborted dual-write, got %d", store.TaskCount())
	}

	store.BackRefErr = nil
	user, _ := store.GetUserByID(ctx, userID)
	if len(user.Tasks) != 0 {
		t.Errorf("expected no back-references after aborted dual-write, got %v", user.Tasks)
	}
}

func TestListTasksByUser_UnknownUser(t *testing.T) {
	svc, _, _ := newTaskService(t)

	_, err := svc.ListTasksByUser(context.Background(), "nonexistent")
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestListTasksByUser_ZeroTasks(t *testing.T) {
	svc, _, userID := newTaskService(t)

	// Zero tasks reports the same 404 as an unknown user.
	_, err := svc.ListTasksByUser(context.Background(), userID)
	appErr := apperr.From(err)
	if appErr.Kind != apperr.NotFound {
		t.Errorf("expected NotFound, got kind %d", appErr.Kind)
	}
	if appErr.Status != 404 {
		t.Errorf("expected status 404, got %d", appErr.Status)
	}
}

func TestListTasksByUser_ReturnsIDAndName(t *testing.T) {
	svc, _, userID := newTaskService(t)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, "Buy milk", userID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tasks, err := svc.ListTasksByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != created.ID || tasks[0].Name != "Buy milk" {
		t.Errorf("unexpected summary: %+v", tasks[0])
	}
}
