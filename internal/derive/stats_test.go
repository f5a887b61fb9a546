package derive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/models/task"
	"taskDashboard/internal/seed"
)

func makeTask(id string, status task.Status, priority task.Priority) *task.Task {
	return &task.Task{
		ID:       id,
		Title:    "Task " + id,
		Status:   status,
		Priority: priority,
	}
}

// TestStatistics_DemoSet проверяет агрегат на демонстрационном наборе
func TestStatistics_DemoSet(t *testing.T) {
	stats := derive.Statistics(seed.Tasks())

	assert.Equal(t, 24, stats.Total)
	assert.Equal(t, 14, stats.Completed)
	assert.Equal(t, 10, stats.Pending)
	assert.Equal(t, 58, stats.CompletionRate)
	assert.Equal(t, 58, stats.CompletedPercentage)
	assert.Equal(t, 42, stats.PendingPercentage)
}

// TestStatistics_PercentagesComplement проверяет, что проценты всегда дают 100
func TestStatistics_PercentagesComplement(t *testing.T) {
	tests := []struct {
		name              string
		tasks             []*task.Task
		expectedCompleted int
		expectedPending   int
	}{
		{
			name:              "empty store",
			tasks:             []*task.Task{},
			expectedCompleted: 0,
			expectedPending:   100,
		},
		{
			name: "one of three completed - rounding would give 33+33",
			tasks: []*task.Task{
				makeTask("task-a", task.StatusCompleted, task.PriorityLow),
				makeTask("task-b", task.StatusPending, task.PriorityLow),
				makeTask("task-c", task.StatusPending, task.PriorityLow),
			},
			expectedCompleted: 33,
			expectedPending:   67,
		},
		{
			name: "two of three completed",
			tasks: []*task.Task{
				makeTask("task-a", task.StatusCompleted, task.PriorityLow),
				makeTask("task-b", task.StatusCompleted, task.PriorityLow),
				makeTask("task-c", task.StatusPending, task.PriorityLow),
			},
			expectedCompleted: 67,
			expectedPending:   33,
		},
		{
			name: "all completed",
			tasks: []*task.Task{
				makeTask("task-a", task.StatusCompleted, task.PriorityHigh),
			},
			expectedCompleted: 100,
			expectedPending:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := derive.Statistics(tt.tasks)

			assert.Equal(t, tt.expectedCompleted, stats.CompletedPercentage)
			assert.Equal(t, tt.expectedPending, stats.PendingPercentage)
			assert.Equal(t, 100, stats.CompletedPercentage+stats.PendingPercentage)
			assert.Equal(t, len(tt.tasks), stats.Total)
			assert.Equal(t, stats.Total, stats.Completed+stats.Pending)
		})
	}
}

// TestPriorityDistribution тестирует распределение по приоритетам
func TestPriorityDistribution(t *testing.T) {
	counts := derive.PriorityDistribution(seed.Tasks())

	assert.Equal(t, 14, counts.High)
	assert.Equal(t, 9, counts.Medium)
	assert.Equal(t, 1, counts.Low)
}

func TestPriorityDistribution_Empty(t *testing.T) {
	counts := derive.PriorityDistribution(nil)

	assert.Equal(t, derive.PriorityCounts{}, counts)
}
