package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskDashboard/internal/models/task"
	"taskDashboard/internal/repository"
	"taskDashboard/internal/seed"
	"taskDashboard/internal/service"
)

// MockTaskRepository - мок репозитория
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskRepository) Create(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAll(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetWithLimit(ctx context.Context, page, limit int) ([]*task.Task, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ repository.TaskRepository = (*MockTaskRepository)(nil)

func fixedNow() time.Time {
	return time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC)
}

// TestTaskService_CreateTask тестирует создание задачи и значения по умолчанию
func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		input        service.NewTask
		setupMock    func(*MockTaskRepository)
		expectError  bool
		expectedCode string
		check        func(*testing.T, *task.Task)
	}{
		{
			name: "success - defaults applied",
			input: service.NewTask{
				Title:   "Write report",
				DueDate: fixedNow().AddDate(0, 0, 1),
			},
			setupMock: func(m *MockTaskRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)
			},
			check: func(t *testing.T, created *task.Task) {
				assert.Equal(t, task.StatusPending, created.Status)
				assert.Equal(t, task.PriorityMedium, created.Priority)
				assert.Equal(t, "General", created.Category)
				assert.Equal(t, fixedNow(), created.CreatedAt)
				assert.Nil(t, created.CompletedAt)
				assert.True(t, len(created.ID) > len("task-"))
			},
		},
		{
			name: "error - empty title",
			input: service.NewTask{
				Title:   "   ",
				DueDate: fixedNow(),
			},
			setupMock:    func(m *MockTaskRepository) {},
			expectError:  true,
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name: "error - unknown priority",
			input: service.NewTask{
				Title:    "Write report",
				Priority: "urgent",
				DueDate:  fixedNow(),
			},
			setupMock:    func(m *MockTaskRepository) {},
			expectError:  true,
			expectedCode: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			svc := service.NewTaskService(mockRepo, fixedNow)
			created, err := svc.CreateTask(ctx, tt.input)

			if tt.expectError {
				require.Error(t, err)
				var bizErr *service.BusinessError
				require.ErrorAs(t, err, &bizErr)
				assert.Equal(t, tt.expectedCode, bizErr.Code)
			} else {
				require.NoError(t, err)
				tt.check(t, created)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// TestTaskService_CreateTasksBulk тестирует дедупликацию по названию
func TestTaskService_CreateTasksBulk(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTaskRepository)

	existing := []*task.Task{
		{ID: "task-abc", Title: "Team Sync", Status: task.StatusPending},
	}
	mockRepo.On("GetAll", mock.Anything).Return(existing, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)

	svc := service.NewTaskService(mockRepo, fixedNow)

	created, err := svc.CreateTasksBulk(ctx, []service.NewTask{
		{Title: "  team sync  ", DueDate: fixedNow()}, // дубликат существующей
		{Title: "New Task", DueDate: fixedNow()},
		{Title: "new task", DueDate: fixedNow()}, // дубликат внутри пачки
		{Title: "", DueDate: fixedNow()},         // пустое название пропускается
	})

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "New Task", created[0].Title)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

// TestTaskService_ToggleTaskStatus тестирует инвариант completed_at
func TestTaskService_ToggleTaskStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to completed sets completed_at", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetByID", mock.Anything, "task-1").Return(&task.Task{
			ID:     "task-1",
			Title:  "Pending task",
			Status: task.StatusPending,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)

		svc := service.NewTaskService(mockRepo, fixedNow)
		toggled, err := svc.ToggleTaskStatus(ctx, "task-1")

		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, toggled.Status)
		require.NotNil(t, toggled.CompletedAt)
		assert.Equal(t, fixedNow(), *toggled.CompletedAt)
	})

	t.Run("completed back to pending clears completed_at", func(t *testing.T) {
		completedAt := fixedNow().AddDate(0, 0, -1)
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetByID", mock.Anything, "task-2").Return(&task.Task{
			ID:          "task-2",
			Title:       "Done task",
			Status:      task.StatusCompleted,
			CompletedAt: &completedAt,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)

		svc := service.NewTaskService(mockRepo, fixedNow)
		toggled, err := svc.ToggleTaskStatus(ctx, "task-2")

		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, toggled.Status)
		assert.Nil(t, toggled.CompletedAt)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetByID", mock.Anything, "task-missing").Return(nil, repository.ErrNotFound)

		svc := service.NewTaskService(mockRepo, fixedNow)
		_, err := svc.ToggleTaskStatus(ctx, "task-missing")

		var bizErr *service.BusinessError
		require.ErrorAs(t, err, &bizErr)
		assert.Equal(t, "NOT_FOUND", bizErr.Code)
	})
}

// TestTaskService_UpdateTask тестирует конфликт версий
func TestTaskService_UpdateTask_VersionConflict(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetByID", mock.Anything, "task-1").Return(&task.Task{
		ID:      "task-1",
		Title:   "Old title",
		Status:  task.StatusPending,
		Version: 1,
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*task.Task")).Return(repository.ErrVersionConflict)

	svc := service.NewTaskService(mockRepo, fixedNow)
	_, err := svc.UpdateTask(ctx, "task-1", task.WithTitle("New title"))

	var bizErr *service.BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "VERSION_CONFLICT", bizErr.Code)
}

func TestTaskService_UpdateTaskPriority_Invalid(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	svc := service.NewTaskService(mockRepo, fixedNow)

	_, err := svc.UpdateTaskPriority(context.Background(), "task-1", "critical")

	var bizErr *service.BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "VALIDATION_ERROR", bizErr.Code)
}

// TestTaskService_CalendarCache: проекция пересобирается только после мутаций
func TestTaskService_CalendarCache(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetAll", mock.Anything).Return(seed.Tasks(), nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*task.Task")).Return(nil)

	svc := service.NewTaskService(mockRepo, fixedNow)

	// два чтения подряд — одна сборка
	first, err := svc.CalendarEvents(ctx)
	require.NoError(t, err)
	second, err := svc.CalendarEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 24)
	assert.Len(t, second, 24)
	mockRepo.AssertNumberOfCalls(t, "GetAll", 1)

	// мутация инвалидирует кеш
	_, err = svc.CreateTask(ctx, service.NewTask{Title: "Fresh", DueDate: fixedNow()})
	require.NoError(t, err)

	_, err = svc.CalendarEvents(ctx)
	require.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "GetAll", 2)
}

// TestTaskService_Dashboard тестирует производные запросы на демо-наборе
func TestTaskService_Dashboard(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockTaskRepository)
	mockRepo.On("GetAll", mock.Anything).Return(seed.Tasks(), nil)

	anchor := seed.Anchor()
	svc := service.NewTaskService(mockRepo, func() time.Time { return anchor })

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, stats.Total)
	assert.Equal(t, 58, stats.CompletedPercentage)
	assert.Equal(t, 42, stats.PendingPercentage)

	history, err := svc.History(ctx, 15)
	require.NoError(t, err)
	assert.Len(t, history, 15)

	week, err := svc.History(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, week, 7)

	trend, err := svc.WeeklyComparison(ctx)
	require.NoError(t, err)
	assert.Equal(t, -29, trend)

	board, err := svc.BoardTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, board.Todo, 10)
	assert.Empty(t, board.InProgress)
	assert.Len(t, board.Done, 14)
}

func TestTaskService_EventsForDate_BadFormat(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	svc := service.NewTaskService(mockRepo, fixedNow)

	_, err := svc.EventsForDate(context.Background(), "20-12-2025")

	var bizErr *service.BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "VALIDATION_ERROR", bizErr.Code)
}

func TestTaskService_EventsForMonth_BadMonth(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	svc := service.NewTaskService(mockRepo, fixedNow)

	_, err := svc.EventsForMonth(context.Background(), 2025, 13)

	var bizErr *service.BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "VALIDATION_ERROR", bizErr.Code)
}

func TestTaskService_DeleteAllTasks(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("DeleteAll", mock.Anything).Return(24, nil)

	svc := service.NewTaskService(mockRepo, fixedNow)
	count, err := svc.DeleteAllTasks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 24, count)
}

func TestTaskService_HealthCheck(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("HealthCheck", mock.Anything).Return(errors.New("db connection failed"))

	svc := service.NewTaskService(mockRepo, fixedNow)
	err := svc.HealthCheck(context.Background())

	assert.Error(t, err)
}
