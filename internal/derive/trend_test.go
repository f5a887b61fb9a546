package derive_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/models/task"
	"taskDashboard/internal/seed"
)

// TestWeeklyComparison_DemoSet: последняя неделя демо-набора хуже предыдущей —
// в ней накопились созданные и ещё не выполненные задачи
func TestWeeklyComparison_DemoSet(t *testing.T) {
	history := derive.LastFifteenDays(seed.Tasks(), seed.Anchor())
	trend := derive.WeeklyComparison(history)

	assert.Equal(t, -29, trend)
}

// TestWeeklyComparison_ShortHistory: меньше двух полных недель — тренд 0, не ошибка
func TestWeeklyComparison_ShortHistory(t *testing.T) {
	tests := []struct {
		name string
		days int
	}{
		{"empty history", 0},
		{"ten days", 10},
		{"thirteen days", 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := make([]derive.DailyTaskMetrics, tt.days)
			for i := range history {
				history[i].CompletionRate = 100
			}

			assert.Equal(t, 0, derive.WeeklyComparison(history))
		})
	}
}

func TestWeeklyComparison_FlatHistory(t *testing.T) {
	history := make([]derive.DailyTaskMetrics, 15)
	for i := range history {
		history[i].CompletionRate = 60
	}

	assert.Equal(t, 0, derive.WeeklyComparison(history))
}

// TestCompletionTrend считает тренд прямо из задач по окнам даты создания
func TestCompletionTrend(t *testing.T) {
	now := time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC)
	doneAt := now.AddDate(0, 0, -1)

	newTask := func(id string, createdDaysAgo int, done bool) *task.Task {
		t := &task.Task{
			ID:        id,
			Title:     "Task " + id,
			Status:    task.StatusPending,
			Priority:  task.PriorityMedium,
			CreatedAt: now.AddDate(0, 0, -createdDaysAgo),
		}
		if done {
			t.Status = task.StatusCompleted
			t.CompletedAt = &doneAt
		}
		return t
	}

	tasks := []*task.Task{
		// последняя неделя: две из двух выполнены
		newTask("task-a", 2, true),
		newTask("task-b", 5, true),
		// предыдущая неделя: одна из двух
		newTask("task-c", 9, true),
		newTask("task-d", 12, false),
	}

	assert.Equal(t, 50, derive.CompletionTrend(tasks, now))
}

func TestCompletionTrend_NoTasks(t *testing.T) {
	now := time.Date(2025, 12, 20, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, derive.CompletionTrend(nil, now))
}
