package service

import (
	"context"
	"errors"

	"github.com/rohanvs/tasklink/internal/apperr"
	"github.com/rohanvs/tasklink/internal/models"
	"github.com/rohanvs/tasklink/internal/storage"
	"github.com/rohanvs/tasklink/internal/validation"
)

type TaskService struct {
	users storage.UserStore
	tasks storage.TaskStore
}

func NewTaskService(users storage.UserStore, tasks storage.TaskStore) *TaskService {
	return &TaskService{
		users: users,
		tasks: tasks,
	}
}

// CreateTask validates, confirms the creator exists, then hands the dual-write
// to the task store as one atomic unit. A failed creator lookup (500) and a
// missing creator (404) are distinct outcomes.
func (s *TaskService) CreateTask(ctx context.Context, name, creatorID string) (*models.Task, error) {
	if err := validation.ValidateTaskName(name); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	creator, err := s.users.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "creating task failed, please try again")
	}
	if creator == nil {
		return nil, apperr.New(apperr.NotFound, "user not found for provided id")
	}

	task, err := s.tasks.CreateTask(ctx, name, creatorID)
	if err != nil {
		if errors.Is(err, storage.ErrCreatorMissing) {
			return nil, apperr.New(apperr.NotFound, "user not found for provided id")
		}
		return nil, apperr.New(apperr.Persistence, "could not save task, please try again")
	}

	return task, nil
}

// ListTasksByUser expands the user's back-reference set into task records.
// An unknown user and a user with zero tasks both report 404, with distinct
// messages so the two cases stay tellable apart.
func (s *TaskService) ListTasksByUser(ctx context.Context, userID string) ([]models.TaskSummary, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "fetching tasks failed, please try again later")
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "could not find user for the provided id")
	}
	if len(user.Tasks) == 0 {
		return nil, apperr.New(apperr.NotFound, "no tasks found for the provided user id")
	}

	tasks, err := s.tasks.GetTasksByIDs(ctx, user.Tasks)
	if err != nil {
		return nil, apperr.New(apperr.Persistence, "fetching tasks failed, please try again later")
	}

	out := make([]models.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, models.TaskSummary{
			ID:   t.ID,
			Name: t.Name,
		})
	}
	return out, nil
}
