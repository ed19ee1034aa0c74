package handlers

import (
	"net/http"

	"github.com/rohanvs/tasklink/internal/apperr"
	"github.com/rohanvs/tasklink/internal/middleware"
)

// NewRouter wires every boundary operation. Registration and login are the
// only calls outside the authentication guard.
func NewRouter(userHandler *UserHandler, taskHandler *TaskHandler, guard *middleware.AuthMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/register", userHandler.Register)
	mux.HandleFunc("POST /api/users/login", userHandler.Login)
	mux.HandleFunc("GET /api/users", guard.RequireAuth(userHandler.ListUsers))
	mux.HandleFunc("GET /api/users/{userId}", guard.RequireAuth(userHandler.GetUser))

	mux.HandleFunc("POST /api/tasks/create-task", guard.RequireAuth(taskHandler.CreateTask))
	mux.HandleFunc("GET /api/tasks/list-tasks/{userId}", guard.RequireAuth(taskHandler.ListTasks))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respondError(w, apperr.New(apperr.NotFound, "could not find this route"))
	})

	return mux
}
