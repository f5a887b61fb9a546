// Package derive содержит чистые функции, пересчитывающие производные
// представления (статистику, историю, календарь, тренд) из полного снимка
// хранилища задач. Все функции детерминированы, "сейчас" передаётся параметром.
package derive

import (
	"math"

	"taskDashboard/internal/models/task"
)

// TaskStatistics — точечный агрегат по текущему снимку хранилища.
type TaskStatistics struct {
	Total               int `json:"total"`
	Completed           int `json:"completed"`
	Pending             int `json:"pending"`
	CompletionRate      int `json:"completionRate"`
	CompletedPercentage int `json:"completedPercentage"`
	PendingPercentage   int `json:"pendingPercentage"`
}

type PriorityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

func Statistics(tasks []*task.Task) TaskStatistics {
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}
	pending := total - completed

	// процент считается один раз; pending — дополнением до 100,
	// иначе независимое округление даёт в сумме 99 или 101
	completedPercentage := percent(completed, total)
	pendingPercentage := 100 - completedPercentage

	return TaskStatistics{
		Total:               total,
		Completed:           completed,
		Pending:             pending,
		CompletionRate:      completedPercentage,
		CompletedPercentage: completedPercentage,
		PendingPercentage:   pendingPercentage,
	}
}

// PriorityDistribution считает задачи по приоритетам независимо от статуса.
func PriorityDistribution(tasks []*task.Task) PriorityCounts {
	counts := PriorityCounts{}
	for _, t := range tasks {
		switch t.Priority {
		case task.PriorityHigh:
			counts.High++
		case task.PriorityMedium:
			counts.Medium++
		case task.PriorityLow:
			counts.Low++
		}
	}
	return counts
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
