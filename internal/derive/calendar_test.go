package derive_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskDashboard/internal/derive"
	"taskDashboard/internal/models/task"
	"taskDashboard/internal/seed"
)

func calendarTask(id, title, category string, priority task.Priority, due time.Time) *task.Task {
	return &task.Task{
		ID:       id,
		Title:    title,
		Status:   task.StatusPending,
		Priority: priority,
		Category: category,
		DueDate:  due,
	}
}

// TestProjectCalendar_TypeRules проверяет вывод типа, цвета и времён события.
// Категория важнее приоритета, высокий приоритет без категории даёт напоминание.
func TestProjectCalendar_TypeRules(t *testing.T) {
	due := time.Date(2025, 12, 22, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		category      string
		priority      task.Priority
		expectedType  derive.EventType
		expectedColor string
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "meeting category with low priority stays meeting",
			category:      "Team Meetings",
			priority:      task.PriorityLow,
			expectedType:  derive.EventTypeMeeting,
			expectedColor: "purple",
			expectedStart: "14:30",
			expectedEnd:   "15:30",
		},
		{
			name:          "high priority without category becomes reminder",
			category:      "Development",
			priority:      task.PriorityHigh,
			expectedType:  derive.EventTypeReminder,
			expectedColor: "red",
			expectedStart: "14:30",
			expectedEnd:   "",
		},
		{
			name:          "reminder category",
			category:      "Reminders",
			priority:      task.PriorityLow,
			expectedType:  derive.EventTypeReminder,
			expectedColor: "red",
			expectedStart: "14:30",
			expectedEnd:   "",
		},
		{
			name:          "birthday",
			category:      "Birthday Party",
			priority:      task.PriorityMedium,
			expectedType:  derive.EventTypeBirthday,
			expectedColor: "pink",
			expectedStart: "",
			expectedEnd:   "",
		},
		{
			name:          "anniversary",
			category:      "Wedding Anniversary",
			priority:      task.PriorityLow,
			expectedType:  derive.EventTypeAnniversary,
			expectedColor: "rose",
			expectedStart: "",
			expectedEnd:   "",
		},
		{
			name:          "event category",
			category:      "Company Events",
			priority:      task.PriorityMedium,
			expectedType:  derive.EventTypeEvent,
			expectedColor: "green",
			expectedStart: "",
			expectedEnd:   "",
		},
		{
			name:          "plain task with low priority",
			category:      "Documentation",
			priority:      task.PriorityLow,
			expectedType:  derive.EventTypeTask,
			expectedColor: "cyan",
			expectedStart: "",
			expectedEnd:   "",
		},
		{
			name:          "plain task with medium priority",
			category:      "Documentation",
			priority:      task.PriorityMedium,
			expectedType:  derive.EventTypeTask,
			expectedColor: "orange",
			expectedStart: "",
			expectedEnd:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := derive.ProjectCalendar([]*task.Task{
				calendarTask("task-x", "Some Task", tt.category, tt.priority, due),
			})
			require.Len(t, events, 1)

			event := events[0]
			assert.Equal(t, tt.expectedType, event.Type)
			assert.Equal(t, tt.expectedColor, event.Color)
			assert.Equal(t, tt.expectedStart, event.StartTime)
			assert.Equal(t, tt.expectedEnd, event.EndTime)
		})
	}
}

// TestProjectCalendar_EventIdentity: одно событие на задачу, id выводится из id задачи
func TestProjectCalendar_EventIdentity(t *testing.T) {
	tasks := seed.Tasks()
	events := derive.ProjectCalendar(tasks)

	require.Len(t, events, len(tasks))
	assert.Equal(t, "cal-task-001", events[0].ID)
	assert.Equal(t, "task-001", events[0].TaskID)
	assert.Equal(t, tasks[0].Title, events[0].Title)
	assert.Equal(t, tasks[0].DueDate, events[0].Date)
}

func TestEventsForDate(t *testing.T) {
	events := derive.ProjectCalendar(seed.Tasks())

	day := time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC)
	forDay := derive.EventsForDate(events, day)

	require.Len(t, forDay, 1)
	assert.Equal(t, "cal-task-015", forDay[0].ID)
}

func TestEventsForMonth(t *testing.T) {
	events := derive.ProjectCalendar(seed.Tasks())

	december := derive.EventsForMonth(events, 2025, time.December)
	assert.Len(t, december, 24)

	january := derive.EventsForMonth(events, 2026, time.January)
	assert.Empty(t, january)
}

// TestUpcomingEvents: отсечка — начало текущего дня, события сегодняшнего
// вечера ещё предстоящие, результат отсортирован по дате
func TestUpcomingEvents(t *testing.T) {
	now := time.Date(2025, 12, 20, 15, 0, 0, 0, time.UTC)

	events := derive.ProjectCalendar([]*task.Task{
		calendarTask("task-y", "Yesterday", "Development", task.PriorityLow,
			time.Date(2025, 12, 19, 17, 0, 0, 0, time.UTC)),
		calendarTask("task-t", "Tonight", "Development", task.PriorityLow,
			time.Date(2025, 12, 20, 21, 0, 0, 0, time.UTC)),
		calendarTask("task-n", "Next week", "Development", task.PriorityLow,
			time.Date(2025, 12, 27, 10, 0, 0, 0, time.UTC)),
	})

	upcoming := derive.UpcomingEvents(events, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "cal-task-t", upcoming[0].ID)
	assert.Equal(t, "cal-task-n", upcoming[1].ID)
}

func TestUpcomingEvents_DemoSet(t *testing.T) {
	events := derive.ProjectCalendar(seed.Tasks())
	upcoming := derive.UpcomingEvents(events, seed.Anchor())

	// все десять незавершённых задач демо-набора имеют дедлайн после опорной даты
	require.Len(t, upcoming, 10)
	for i := 1; i < len(upcoming); i++ {
		assert.False(t, upcoming[i].Date.Before(upcoming[i-1].Date))
	}
}
