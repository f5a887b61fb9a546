package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskDashboard/internal/logger"
	"taskDashboard/internal/models/task"
	"taskDashboard/internal/repository"
)

// ReminderWorker периодически просматривает хранилище и пишет напоминания о
// задачах с приближающимся дедлайном. Задачи он не мутирует: в двухстатусной
// модели нет состояния overdue, просрочка — производный признак.
type ReminderWorker struct {
	repo     repository.TaskRepository
	interval time.Duration
	horizon  time.Duration
	now      func() time.Time
}

func NewReminderWorker(repo repository.TaskRepository, interval, horizon time.Duration, now func() time.Time) *ReminderWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if horizon <= 0 {
		horizon = time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &ReminderWorker{
		repo:     repo,
		interval: interval,
		horizon:  horizon,
		now:      now,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info("Worker: Проверка приближающихся дедлайнов",
				zap.Time("started_at", w.now()))
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая проверка останавливается")
			return
		}
	}
}

func (w *ReminderWorker) Check(ctx context.Context) {
	start := time.Now()

	tasks, err := w.repo.GetAll(ctx)
	if err != nil {
		logger.Warn("Worker: ошибка получения задач", zap.Error(err))
		return
	}

	now := w.now()
	deadline := now.Add(w.horizon)
	dueSoon := 0

	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			continue
		}
		if t.DueDate.After(now) && !t.DueDate.After(deadline) {
			logger.Info("Worker: Приближается дедлайн",
				zap.String("task_id", t.ID),
				zap.String("title", t.Title),
				zap.Time("due_date", t.DueDate))
			dueSoon++
		}
	}

	logger.Info("Worker: Завершение проверки",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", len(tasks)),
		zap.Int("due_soon", dueSoon))
}
