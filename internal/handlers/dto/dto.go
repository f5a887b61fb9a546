package dto

import (
	"time"

	"taskDashboard/internal/models/task"
	"taskDashboard/internal/service"
)

type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"due_date"`
}

func (r CreateTaskRequest) ToInput() service.NewTask {
	return service.NewTask{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    task.Priority(r.Priority),
		DueDate:     r.DueDate,
	}
}

type BulkCreateTasksRequest struct {
	Tasks []CreateTaskRequest `json:"tasks"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Options переводит заполненные поля запроса в функциональные опции.
func (r UpdateTaskRequest) Options() []task.TaskOption {
	options := []task.TaskOption{}
	if r.Title != nil {
		options = append(options, task.WithTitle(*r.Title))
	}
	if r.Description != nil {
		options = append(options, task.WithDescription(*r.Description))
	}
	if r.Category != nil {
		options = append(options, task.WithCategory(*r.Category))
	}
	if r.Priority != nil {
		options = append(options, task.WithPriority(task.Priority(*r.Priority)))
	}
	if r.DueDate != nil {
		options = append(options, task.WithDueDate(*r.DueDate))
	}
	return options
}

type UpdatePriorityRequest struct {
	Priority string `json:"priority"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueDate     time.Time  `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func FromTask(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Category:    t.Category,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}

type BoardResponse struct {
	Todo       []TaskResponse `json:"todo"`
	InProgress []TaskResponse `json:"in_progress"`
	Done       []TaskResponse `json:"done"`
}

func FromBoard(board service.Board) BoardResponse {
	return BoardResponse{
		Todo:       FromTaskList(board.Todo),
		InProgress: FromTaskList(board.InProgress),
		Done:       FromTaskList(board.Done),
	}
}

type TrendResponse struct {
	WeeklyComparison int `json:"weekly_comparison"`
}

type DeletedResponse struct {
	Deleted int `json:"deleted"`
}
