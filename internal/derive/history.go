package derive

import (
	"time"

	"taskDashboard/internal/models/task"
)

// DailyTaskMetrics — суточный срез метрик внутри фиксированного окна истории.
type DailyTaskMetrics struct {
	Date                 string         `json:"date"`
	TotalTasks           int            `json:"totalTasks"`
	CompletedTasks       int            `json:"completedTasks"`
	PendingTasks         int            `json:"pendingTasks"`
	CompletionRate       int            `json:"completionRate"`
	PriorityDistribution PriorityCounts `json:"priorityDistribution"`
}

const historyWindowDays = 15

// LastFifteenDays строит непрерывный ряд из 15 календарных дней, последний —
// today включительно. Задача попадает в день d, если в d она была создана или
// завершена; внутри одного дня задача учитывается не более одного раза.
// Пустые дни выдаются нулевыми записями, чтобы графики не имели разрывов.
func LastFifteenDays(tasks []*task.Task, today time.Time) []DailyTaskMetrics {
	history := make([]DailyTaskMetrics, 0, historyWindowDays)
	start := today.AddDate(0, 0, -(historyWindowDays - 1))

	for i := 0; i < historyWindowDays; i++ {
		day := start.AddDate(0, 0, i)
		bucket := tasksForDay(tasks, day)

		completed := 0
		for _, t := range bucket {
			if t.Status == task.StatusCompleted {
				completed++
			}
		}

		history = append(history, DailyTaskMetrics{
			Date:                 day.Format("2006-01-02"),
			TotalTasks:           len(bucket),
			CompletedTasks:       completed,
			PendingTasks:         len(bucket) - completed,
			CompletionRate:       percent(completed, len(bucket)),
			PriorityDistribution: PriorityDistribution(bucket),
		})
	}

	return history
}

// LastSevenDays — хвост пятнадцатидневного окна, оставлен для старых вызовов.
func LastSevenDays(tasks []*task.Task, today time.Time) []DailyTaskMetrics {
	full := LastFifteenDays(tasks, today)
	return full[len(full)-7:]
}

func tasksForDay(tasks []*task.Task, day time.Time) []*task.Task {
	bucket := []*task.Task{}
	seen := map[string]bool{}

	for _, t := range tasks {
		attributed := sameDay(t.CreatedAt, day) ||
			(t.CompletedAt != nil && sameDay(*t.CompletedAt, day))
		if !attributed || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		bucket = append(bucket, t)
	}
	return bucket
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
