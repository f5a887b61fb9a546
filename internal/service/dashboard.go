package service

import (
	"context"
	"fmt"
	"time"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/models/task"
)

// запросы дашборда: синхронные чтения поверх полного снимка хранилища

func (s *TaskService) Statistics(ctx context.Context) (derive.TaskStatistics, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return derive.TaskStatistics{}, fmt.Errorf("получение задач: %w", err)
	}
	return derive.Statistics(tasks), nil
}

func (s *TaskService) PriorityDistribution(ctx context.Context) (derive.PriorityCounts, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return derive.PriorityCounts{}, fmt.Errorf("получение задач: %w", err)
	}
	return derive.PriorityDistribution(tasks), nil
}

// History возвращает ряд за 15 дней, либо его семидневный хвост.
func (s *TaskService) History(ctx context.Context, days int) ([]derive.DailyTaskMetrics, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	if days == 7 {
		return derive.LastSevenDays(tasks, s.now()), nil
	}
	return derive.LastFifteenDays(tasks, s.now()), nil
}

func (s *TaskService) WeeklyComparison(ctx context.Context) (int, error) {
	history, err := s.History(ctx, 15)
	if err != nil {
		return 0, err
	}
	return derive.WeeklyComparison(history), nil
}

// CalendarEvents отдаёт проекцию календаря, пересобирая её только после мутаций.
func (s *TaskService) CalendarEvents(ctx context.Context) ([]derive.CalendarEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built && s.builtVersion == s.version {
		return s.events, nil
	}

	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}

	s.events = derive.ProjectCalendar(tasks)
	s.builtVersion = s.version
	s.built = true
	return s.events, nil
}

func (s *TaskService) EventsForDate(ctx context.Context, date string) ([]derive.CalendarEvent, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, NewValidationError("date", "ожидается формат YYYY-MM-DD")
	}
	events, err := s.CalendarEvents(ctx)
	if err != nil {
		return nil, err
	}
	return derive.EventsForDate(events, day), nil
}

func (s *TaskService) EventsForMonth(ctx context.Context, year, month int) ([]derive.CalendarEvent, error) {
	if month < 1 || month > 12 {
		return nil, NewValidationError("month", "ожидается число от 1 до 12")
	}
	events, err := s.CalendarEvents(ctx)
	if err != nil {
		return nil, err
	}
	return derive.EventsForMonth(events, year, timeMonth(month)), nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func timeMonth(month int) time.Month {
	return time.Month(month)
}

func (s *TaskService) UpcomingEvents(ctx context.Context) ([]derive.CalendarEvent, error) {
	events, err := s.CalendarEvents(ctx)
	if err != nil {
		return nil, err
	}
	return derive.UpcomingEvents(events, s.now()), nil
}

// Board — колонки приоритетной доски. Колонка in-progress существует ради
// контракта доски, двухстатусная модель её не заполняет.
type Board struct {
	Todo       []*task.Task `json:"todo"`
	InProgress []*task.Task `json:"in_progress"`
	Done       []*task.Task `json:"done"`
}

func (s *TaskService) BoardTasks(ctx context.Context) (Board, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return Board{}, fmt.Errorf("получение задач: %w", err)
	}

	board := Board{
		Todo:       []*task.Task{},
		InProgress: []*task.Task{},
		Done:       []*task.Task{},
	}
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			board.Done = append(board.Done, t)
		} else {
			board.Todo = append(board.Todo, t)
		}
	}
	return board, nil
}
