package repository

import (
	"context"

	"taskDashboard/internal/models/task"
)

// TaskRepository — единственный владелец задач. Производные представления
// (календарь, история, статистика) пересчитываются из полного снимка GetAll.
type TaskRepository interface {
	HealthCheck(ctx context.Context) error
	Create(ctx context.Context, t *task.Task) error
	Update(ctx context.Context, t *task.Task) error
	GetByID(ctx context.Context, id string) (*task.Task, error)
	GetAll(ctx context.Context) ([]*task.Task, error)
	GetWithLimit(ctx context.Context, page, limit int) ([]*task.Task, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
}
