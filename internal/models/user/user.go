package user

import "time"

// User is an identity record. Tasks holds back-references to tasks created
// by this user; the task ledger owns the task lifecycle, the references here
// exist for lookup only.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Tasks        []string  `json:"tasks"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PublicUser is the redacted shape exposed by list/get endpoints.
type PublicUser struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Tasks []string `json:"tasks,omitempty"`
}

type RegisterResponse struct {
	User PublicUser `json:"user"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

type ListUsersResponse struct {
	Users []PublicUser `json:"users"`
}

type GetUserResponse struct {
	User PublicUser `json:"user"`
}
