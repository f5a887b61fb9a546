package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"taskDashboard/internal/config"
	"taskDashboard/internal/gcal"
	"taskDashboard/internal/handlers"
	"taskDashboard/internal/logger"
	"taskDashboard/internal/middleware"
	"taskDashboard/internal/repository"
	"taskDashboard/internal/repository/task/inmemory"
	"taskDashboard/internal/repository/task/postgres"
	"taskDashboard/internal/seed"
	"taskDashboard/internal/service"
	"taskDashboard/internal/worker"
)

type App struct {
	config     *config.Config
	server     *http.Server
	router     *chi.Mux
	repository repository.TaskRepository
	service    *service.TaskService
	worker     *worker.ReminderWorker
	shutdowns  []func() // функции для graceful shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return fmt.Errorf("инициализация логгера: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Завершение работы логгирования...")
		logger.Sync()
	})

	now, err := a.config.Clock()
	if err != nil {
		return err
	}
	if a.config.Demo.Anchor != "" {
		logger.Info("Демо-режим: часы зафиксированы",
			zap.String("anchor", a.config.Demo.Anchor))
	}

	if err := a.initRepository(ctx); err != nil {
		return err
	}

	if a.config.Demo.Seed {
		if err := a.seedDemoTasks(ctx); err != nil {
			return err
		}
	}

	a.service = service.NewTaskService(a.repository, now)

	if a.config.Worker.Enabled {
		a.worker = worker.NewReminderWorker(
			a.repository,
			a.config.Worker.Interval,
			a.config.Worker.Horizon,
			now,
		)
	}

	if err := a.initRouter(ctx); err != nil {
		return err
	}

	a.server = &http.Server{
		Addr:         a.config.GetServerAddr(),
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return nil
}

func (a *App) initRepository(ctx context.Context) error {
	switch a.config.Repository.Type {
	case "postgres":
		storage, err := postgres.New(ctx, a.config.Database.URL)
		if err != nil {
			return fmt.Errorf("инициализация postgres: %w", err)
		}
		a.repository = storage
		a.shutdowns = append(a.shutdowns, storage.Close)
	case "inmemory", "":
		a.repository = inmemory.NewTaskStorage()
	default:
		return fmt.Errorf("неизвестный тип репозитория: %s", a.config.Repository.Type)
	}

	logger.Info("Репозиторий инициализирован",
		zap.String("type", a.config.Repository.Type))
	return nil
}

// seedDemoTasks загружает демонстрационный набор в пустое хранилище.
func (a *App) seedDemoTasks(ctx context.Context) error {
	existing, err := a.repository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("проверка хранилища перед загрузкой: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Демо-набор пропущен: хранилище не пустое",
			zap.Int("existing", len(existing)))
		return nil
	}

	tasks := seed.Tasks()
	for _, t := range tasks {
		if err := a.repository.Create(ctx, t); err != nil {
			return fmt.Errorf("загрузка демо-задачи %s: %w", t.ID, err)
		}
	}

	logger.Info("Демо-набор загружен", zap.Int("tasks", len(tasks)))
	return nil
}

func (a *App) initRouter(ctx context.Context) error {
	taskHandler := handlers.NewTaskHandler(a.service)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Cors(a.config.Server.AllowedOrigins))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RateLimit(a.config.Server.RateLimitRPM))

	r.Get("/health", taskHandler.HealthCheck)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetTasks)          // GET /tasks
		r.Post("/", taskHandler.PostTask)         // POST /tasks
		r.Post("/bulk", taskHandler.PostTasksBulk)
		r.Delete("/", taskHandler.DeleteAllTasks) // DELETE /tasks

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", taskHandler.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", taskHandler.DeleteTaskByID) // DELETE /tasks/{id}

			r.Post("/toggle", taskHandler.ToggleTaskStatus)     // POST /tasks/{id}/toggle
			r.Post("/priority", taskHandler.UpdateTaskPriority) // POST /tasks/{id}/priority
		})
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/statistics", taskHandler.GetStatistics)
		r.Get("/priority-distribution", taskHandler.GetPriorityDistribution)
		r.Get("/history", taskHandler.GetHistory)
		r.Get("/trend", taskHandler.GetTrend)
	})

	r.Get("/board", taskHandler.GetBoard)

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/events", taskHandler.GetCalendarEvents)
		r.Get("/upcoming", taskHandler.GetUpcomingEvents)
	})

	if a.config.Calendar.Enabled {
		exporter, err := gcal.NewExporter(
			ctx,
			a.config.Calendar.CredentialsFile,
			a.config.Calendar.TokenFile,
			a.config.Calendar.CalendarID,
		)
		if err != nil {
			return fmt.Errorf("инициализация экспорта календаря: %w", err)
		}
		exportHandler := handlers.NewExportHandler(a.service, exporter)
		r.Post("/calendar/export", exportHandler.ExportCalendar)
	}

	a.router = r
	return nil
}

func (a *App) Run(ctx context.Context) error {
	if a.worker != nil {
		go a.worker.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Сервер запущен", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("работа сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Получен сигнал завершения, останавливаем сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Ошибка graceful shutdown", zap.Error(err))
	}

	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}

	return nil
}
