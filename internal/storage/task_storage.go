package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rohanvs/tasklink/internal/database"
	"github.com/rohanvs/tasklink/internal/models"
)

type TaskStorage struct {
	db *database.DBManager
}

func NewTaskStorage(db *database.DBManager) *TaskStorage {
	return &TaskStorage{db: db}
}

// CreateTask inserts the task row and appends its id to the creator's
// task_ids inside one transaction. If either write fails the unit rolls
// back and neither effect is visible.
func (s *TaskStorage) CreateTask(ctx context.Context, name, creatorID string) (*models.Task, error) {
	task := &models.Task{
		ID:        uuid.New().String(),
		Name:      name,
		Creator:   creatorID,
		CreatedAt: time.Now(),
	}

	err := s.db.WithTx(ctx, func(tx pgx.Tx) error {
		insertTask := `
			INSERT INTO tasks (id, name, creator_id, created_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, insertTask, task.ID, task.Name, task.Creator, task.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert task: %w", err)
		}

		// array_append runs under the row lock the UPDATE takes, so two
		// concurrent creates for the same user both keep their appends.
		appendRef := `
			UPDATE users
			SET task_ids = array_append(task_ids, $1),
				updated_at = NOW()
			WHERE id = $2
		`
		cmdTag, err := tx.Exec(ctx, appendRef, task.ID, task.Creator)
		if err != nil {
			return fmt.Errorf("failed to append task reference: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return ErrCreatorMissing
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskStorage) GetTasksByIDs(ctx context.Context, ids []string) ([]*models.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, creator_id, created_at
		FROM tasks
		WHERE id = ANY($1)
		ORDER BY created_at
	`

	rows, err := s.db.Read().Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.Name,
			&task.Creator,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}
