package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/logger"
	"taskDashboard/internal/models/task"
	rep "taskDashboard/internal/repository"
)

// здесь проверяются ошибки бизнес-логики; производные представления
// пересчитываются из полного снимка хранилища при каждом чтении

const defaultCategory = "General"

// NewTask — входные данные создания задачи.
type NewTask struct {
	Title       string
	Description string
	Category    string
	Priority    task.Priority
	DueDate     time.Time
}

type TaskService struct {
	repo rep.TaskRepository
	now  func() time.Time

	// счётчик мутаций: проекция календаря пересобирается только если
	// после последней сборки была хоть одна мутация. Это явный сигнал
	// инвалидации вместо вызова refresh в каждой точке мутации.
	mu           sync.Mutex
	version      uint64
	builtVersion uint64
	built        bool
	events       []derive.CalendarEvent
}

func NewTaskService(repo rep.TaskRepository, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{
		repo: repo,
		now:  now,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	return s.repo.HealthCheck(ctx)
}

func (s *TaskService) invalidate() {
	s.mu.Lock()
	s.version++
	s.mu.Unlock()
}

func (s *TaskService) CreateTask(ctx context.Context, input NewTask) (*task.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, NewValidationError("title", "не может быть пустым")
	}
	if input.Priority == "" {
		input.Priority = task.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, NewValidationError("priority", "допустимы low, medium и high")
	}
	if input.Category == "" {
		input.Category = defaultCategory
	}

	t := &task.Task{
		ID:          task.NewID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      task.StatusPending,
		Priority:    input.Priority,
		Category:    input.Category,
		DueDate:     input.DueDate,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	s.invalidate()
	return t, nil
}

// CreateTasksBulk создаёт пачку задач, пропуская дубликаты по нормализованному
// названию — как при импорте извне, так и против уже существующих задач.
func (s *TaskService) CreateTasksBulk(ctx context.Context, inputs []NewTask) ([]*task.Task, error) {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}

	titles := make(map[string]bool, len(existing))
	for _, t := range existing {
		titles[normalizeTitle(t.Title)] = true
	}

	created := []*task.Task{}
	for _, input := range inputs {
		key := normalizeTitle(input.Title)
		if key == "" || titles[key] {
			continue
		}
		t, err := s.CreateTask(ctx, input)
		if err != nil {
			return created, err
		}
		titles[key] = true
		created = append(created, t)
	}

	logger.Info("Service: Массовое создание задач",
		zap.Int("received", len(inputs)),
		zap.Int("created", len(created)))
	return created, nil
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func (s *TaskService) GetTasks(ctx context.Context, page, limit int) ([]*task.Task, error) {
	tasks, err := s.repo.GetWithLimit(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]*task.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*task.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id))
			return nil, NewNotFound(id)
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return t, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, options ...task.TaskOption) (*task.Task, error) {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, rep.ErrVersionConflict) {
			return nil, NewBusinessError("VERSION_CONFLICT", "задача была изменена параллельно")
		}
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}

	s.invalidate()
	return t, nil
}

func (s *TaskService) UpdateTaskPriority(ctx context.Context, id string, priority task.Priority) (*task.Task, error) {
	if !priority.Valid() {
		return nil, NewValidationError("priority", "допустимы low, medium и high")
	}
	return s.UpdateTask(ctx, id, task.WithPriority(priority))
}

// ToggleTaskStatus переключает pending↔completed и поддерживает инвариант:
// completed_at заполняется ровно при переходе в completed и очищается обратно.
func (s *TaskService) ToggleTaskStatus(ctx context.Context, id string) (*task.Task, error) {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status == task.StatusCompleted {
		t.Status = task.StatusPending
		t.CompletedAt = nil
	} else {
		now := s.now()
		t.Status = task.StatusCompleted
		t.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, rep.ErrVersionConflict) {
			return nil, NewBusinessError("VERSION_CONFLICT", "задача была изменена параллельно")
		}
		return nil, fmt.Errorf("переключение статуса: %w", err)
	}

	logger.Info("Service: Статус переключён",
		zap.String("task_id", t.ID),
		zap.String("status", string(t.Status)))

	s.invalidate()
	return t, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return NewNotFound(id)
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}
	s.invalidate()
	return nil
}

func (s *TaskService) DeleteAllTasks(ctx context.Context) (int, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("удаление всех задач: %w", err)
	}
	s.invalidate()
	return count, nil
}
