package storage

import (
	"context"
	"errors"

	"github.com/rohanvs/tasklink/internal/models"
	usermodel "github.com/rohanvs/tasklink/internal/models/user"
)

// ErrDuplicateEmail is returned by CreateUser when the unique constraint on
// email fires. The constraint, not the caller's pre-check, is the source of
// truth for uniqueness.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// ErrCreatorMissing is returned by CreateTask when the creator row vanished
// between the caller's existence check and the dual-write.
var ErrCreatorMissing = errors.New("creator not found")

type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*usermodel.User, error)
	GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetUserByID(ctx context.Context, id string) (*usermodel.User, error)
	ListUsers(ctx context.Context) ([]*usermodel.User, error)
}

// TaskStore owns the task lifecycle. CreateTask performs the dual-write
// (task insert + creator back-reference append) as one atomic unit: a
// concurrent reader never observes one half without the other.
type TaskStore interface {
	CreateTask(ctx context.Context, name, creatorID string) (*models.Task, error)
	GetTasksByIDs(ctx context.Context, ids []string) ([]*models.Task, error)
}
