package handlers

import (
	"context"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/models/task"
	"taskDashboard/internal/service"
)

type Service interface {
	HealthCheck(ctx context.Context) error

	CreateTask(ctx context.Context, input service.NewTask) (*task.Task, error)
	CreateTasksBulk(ctx context.Context, inputs []service.NewTask) ([]*task.Task, error)
	GetTasks(ctx context.Context, page, limit int) ([]*task.Task, error)
	GetTaskByID(ctx context.Context, id string) (*task.Task, error)
	UpdateTask(ctx context.Context, id string, options ...task.TaskOption) (*task.Task, error)
	UpdateTaskPriority(ctx context.Context, id string, priority task.Priority) (*task.Task, error)
	ToggleTaskStatus(ctx context.Context, id string) (*task.Task, error)
	DeleteTask(ctx context.Context, id string) error
	DeleteAllTasks(ctx context.Context) (int, error)

	Statistics(ctx context.Context) (derive.TaskStatistics, error)
	PriorityDistribution(ctx context.Context) (derive.PriorityCounts, error)
	History(ctx context.Context, days int) ([]derive.DailyTaskMetrics, error)
	WeeklyComparison(ctx context.Context) (int, error)
	CalendarEvents(ctx context.Context) ([]derive.CalendarEvent, error)
	EventsForDate(ctx context.Context, date string) ([]derive.CalendarEvent, error)
	EventsForMonth(ctx context.Context, year, month int) ([]derive.CalendarEvent, error)
	UpcomingEvents(ctx context.Context) ([]derive.CalendarEvent, error)
	BoardTasks(ctx context.Context) (service.Board, error)
}
