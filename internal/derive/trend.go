package derive

import (
	"math"
	"time"

	"taskDashboard/internal/models/task"
)

const weekDays = 7

// WeeklyComparison сравнивает средние доли выполнения двух соседних недель
// пятнадцатидневного ряда. Знак плюс — улучшение. Если истории меньше двух
// полных недель, возвращается 0, а не ошибка.
func WeeklyComparison(history []DailyTaskMetrics) int {
	if len(history) < 2*weekDays {
		return 0
	}

	lastWeek := history[len(history)-weekDays:]
	previousWeek := history[len(history)-2*weekDays : len(history)-weekDays]

	return int(math.Round(averageRate(lastWeek) - averageRate(previousWeek)))
}

func averageRate(window []DailyTaskMetrics) float64 {
	sum := 0
	for _, day := range window {
		sum += day.CompletionRate
	}
	return float64(sum) / float64(len(window))
}

// CompletionTrend — вариант тренда, пересчитываемый прямо из задач: окна по
// дате создания, округляется только итоговая разница.
func CompletionTrend(tasks []*task.Task, now time.Time) int {
	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	lastWeek := tasksCreatedBetween(tasks, sevenDaysAgo, now)
	previousWeek := tasksCreatedBetween(tasks, fourteenDaysAgo, sevenDaysAgo)

	return int(math.Round(completionRateOf(lastWeek) - completionRateOf(previousWeek)))
}

func tasksCreatedBetween(tasks []*task.Task, start, end time.Time) []*task.Task {
	res := []*task.Task{}
	for _, t := range tasks {
		if !t.CreatedAt.Before(start) && !t.CreatedAt.After(end) {
			res = append(res, t)
		}
	}
	return res
}

func completionRateOf(tasks []*task.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks)) * 100
}
