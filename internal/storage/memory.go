package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohanvs/tasklink/internal/models"
	usermodel "github.com/rohanvs/tasklink/internal/models/user"
)

// MemoryStorage implements UserStore and TaskStore in memory. It backs the
// service tests and mirrors the transactional contract of the postgres
// implementation: the task insert and the back-reference append happen under
// one lock, both or neither.
type MemoryStorage struct {
	mu    sync.RWMutex
	users map[string]*usermodel.User
	tasks map[string]*models.Task

	// BackRefErr simulates a failure of the back-reference half of the
	// dual-write. Test hook.
	BackRefErr error
	// UserLookupErr simulates a storage failure on user reads. Test hook.
	UserLookupErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users: make(map[string]*usermodel.User),
		tasks: make(map[string]*models.Task),
	}
}

func (s *MemoryStorage) CreateUser(ctx context.Context, email, passwordHash string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	now := time.Now()
	user := &usermodel.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Tasks:        []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user

	return copyUser(user), nil
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.UserLookupErr != nil {
		return nil, s.UserLookupErr
	}

	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserByID(ctx context.Context, id string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.UserLookupErr != nil {
		return nil, s.UserLookupErr
	}

	u, exists := s.users[id]
	if !exists {
		return nil, nil
	}
	return copyUser(u), nil
}

func (s *MemoryStorage) ListUsers(ctx context.Context) ([]*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.UserLookupErr != nil {
		return nil, s.UserLookupErr
	}

	users := make([]*usermodel.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, copyUser(u))
	}
	return users, nil
}

func (s *MemoryStorage) CreateTask(ctx context.Context, name, creatorID string) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creator, exists := s.users[creatorID]
	if !exists {
		return nil, ErrCreatorMissing
	}

	task := &models.Task{
		ID:        uuid.New().String(),
		Name:      name,
		Creator:   creatorID,
		CreatedAt: time.Now(),
	}

	if s.BackRefErr != nil {
		// Second half of the dual-write failed: nothing is persisted.
		return nil, s.BackRefErr
	}

	s.tasks[task.ID] = task
	creator.Tasks = append(creator.Tasks, task.ID)

	return task, nil
}

func (s *MemoryStorage) GetTasksByIDs(ctx context.Context, ids []string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*models.Task
	for _, id := range ids {
		if t, exists := s.tasks[id]; t != nil && exists {
			taskCopy := *t
			tasks = append(tasks, &taskCopy)
		}
	}
	return tasks, nil
}

// TaskCount reports the number of persisted tasks. Test helper.
func (s *MemoryStorage) TaskCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func copyUser(u *usermodel.User) *usermodel.User {
	userCopy := *u
	userCopy.Tasks = append([]string(nil), u.Tasks...)
	if userCopy.Tasks == nil {
		userCopy.Tasks = []string{}
	}
	return &userCopy
}
