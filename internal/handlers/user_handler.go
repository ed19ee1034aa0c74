package handlers

import (
	"net/http"

	"github.com/rohanvs/tasklink/internal/apperr"
	"github.com/rohanvs/tasklink/internal/logger"
	usermodel "github.com/rohanvs/tasklink/internal/models/user"
	"github.com/rohanvs/tasklink/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	log         *logger.Logger
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         logger.New("user-handler"),
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req usermodel.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}

	created, err := h.userService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Error("Register failed: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, usermodel.RegisterResponse{User: *created})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req usermodel.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}

	resp, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Error("Login failed for %s: %v", req.Email, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUsers(r.Context())
	if err != nil {
		h.log.Error("ListUsers failed: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, usermodel.ListUsersResponse{Users: users})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, usermodel.GetUserResponse{User: *user})
}
