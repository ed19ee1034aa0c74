package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rohanvs/tasklink/internal/auth"
	"github.com/rohanvs/tasklink/internal/middleware"
	"github.com/rohanvs/tasklink/internal/service"
	"github.com/rohanvs/tasklink/internal/storage"
)

func newTestRouter() *http.ServeMux {
	store := storage.NewMemoryStorage()
	jwtManager := auth.NewJWTManager("test-secret", 5*time.Hour)

	userService := service.NewUserService(store, jwtManager)
	taskService := service.NewTaskService(store, store)

	return NewRouter(
		NewUserHandler(userService),
		NewTaskHandler(taskService),
		middleware.NewAuthMiddleware(jwtManager),
	)
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, decoded
}

func registerAndLogin(t *testing.T, mux *http.ServeMux, email, password string) (userID, token string) {
	t.Helper()

	rec, body := doJSON(t, mux, http.MethodPost, "/api/users/register", "", map[string]string{
		"email": email, "password": password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed with status %d: %v", rec.Code, body)
	}
	userID = body["user"].(map[string]interface{})["id"].(string)

	rec, body = doJSON(t, mux, http.MethodPost, "/api/users/login", "", map[string]string{
		"email": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %v", rec.Code, body)
	}
	token = body["token"].(string)
	return userID, token
}

func TestRegister_Success(t *testing.T) {
	mux := newTestRouter()

	rec, body := doJSON(t, mux, http.MethodPost, "/api/users/register", "", map[string]string{
		"email": "a@x.com", "password": "secret1",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %v", rec.Code, body)
	}
	user := body["user"].(map[string]interface{})
	if user["id"] == "" {
		t.Error("expected user id in response")
	}
	if user["email"] != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got %v", user["email"])
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mux := newTestRouter()
	registerAndLogin(t, mux, "a@x.com", "secret1")

	rec, body := doJSON(t, mux, http.MethodPost, "/api/users/register", "", map[string]string{
		"email": "a@x.com", "password": "secret2",
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", rec.Code)
	}
	if body["message"] == nil {
		t.Error("expected error message in body")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	mux := newTestRouter()
	registerAndLogin(t, mux, "a@x.com", "secret1")

	rec, body := doJSON(t, mux, http.MethodPost, "/api/users/login", "", map[string]string{
		"email": "a@x.com", "password": "wrongpass",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	if _, hasToken := body["token"]; hasToken {
		t.Error("no token may be issued for bad credentials")
	}
}

func TestCreateTask_Flow(t *testing.T) {
	mux := newTestRouter()
	userID, token := registerAndLogin(t, mux, "a@x.com", "secret1")

	rec, body := doJSON(t, mux, http.MethodPost, "/api/tasks/create-task", token, map[string]string{
		"task_name": "Buy milk", "creator": userID,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %v", rec.Code, body)
	}
	task := body["task"].(map[string]interface{})
	if task["creator"] != userID {
		t.Errorf("expected creator %s, got %v", userID, task["creator"])
	}

	rec, body = doJSON(t, mux, http.MethodGet, "/api/tasks/list-tasks/"+userID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %v", rec.Code, body)
	}
	tasks := body["tasks"].([]interface{})
	found := false
	for _, item := range tasks {
		if item.(map[string]interface{})["name"] == "Buy milk" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'Buy milk' in list-tasks response")
	}
}

func TestCreateTask_EmptyName(t *testing.T) {
	mux := newTestRouter()
	userID, token := registerAndLogin(t, mux, "a@x.com", "secret1")

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/tasks/create-task", token, map[string]string{
		"task_name": "", "creator": userID,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", rec.Code)
	}

	// Nothing was created: the user still has zero tasks.
	rec, _ = doJSON(t, mux, http.MethodGet, "/api/tasks/list-tasks/"+userID, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for zero tasks, got %d", rec.Code)
	}
}

func TestCreateTask_UnknownCreator(t *testing.T) {
	mux := newTestRouter()
	_, token := registerAndLogin(t, mux, "a@x.com", "secret1")

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/tasks/create-task", token, map[string]string{
		"task_name": "X", "creator": "nonexistent-user",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestCreateTask_RequiresAuth(t *testing.T) {
	mux := newTestRouter()
	userID, _ := registerAndLogin(t, mux, "a@x.com", "secret1")

	rec, _ := doJSON(t, mux, http.MethodPost, "/api/tasks/create-task", "", map[string]string{
		"task_name": "Buy milk", "creator": userID,
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status 403 without token, got %d", rec.Code)
	}
}

func TestListUsers(t *testing.T) {
	mux := newTestRouter()
	_, token := registerAndLogin(t, mux, "a@x.com", "secret1")
	registerAndLogin(t, mux, "b@y.com", "secret2")

	rec, body := doJSON(t, mux, http.MethodGet, "/api/users", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	users := body["users"].([]interface{})
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
	if rec.Body.String() == "" {
		t.Fatal("empty body")
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Error("password field leaked in users listing")
	}
}

func TestGetUser(t *testing.T) {
	mux := newTestRouter()
	userID, token := registerAndLogin(t, mux, "a@x.com", "secret1")

	rec, body := doJSON(t, mux, http.MethodGet, "/api/users/"+userID, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	user := body["user"].(map[string]interface{})
	if user["email"] != "a@x.com" {
		t.Errorf("expected email 'a@x.com', got %v", user["email"])
	}

	rec, _ = doJSON(t, mux, http.MethodGet, "/api/users/unknown-id", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for unknown user, got %d", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	mux := newTestRouter()

	rec, body := doJSON(t, mux, http.MethodGet, "/api/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if body["message"] != "could not find this route" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
