package models

import "time"

// Task is a unit of work. Creator is fixed at creation and never reassigned.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Creator   string    `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTaskRequest struct {
	TaskName string `json:"task_name"`
	Creator  string `json:"creator"`
}

type CreateTaskResponse struct {
	Task Task `json:"task"`
}

// TaskSummary is the shape returned by list-tasks: id and name only.
type TaskSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListTasksResponse struct {
	Tasks []TaskSummary `json:"tasks"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
