package derive

import (
	"sort"
	"strings"
	"time"

	"taskDashboard/internal/models/task"
)

type EventType string

const (
	EventTypeMeeting     EventType = "meeting"
	EventTypeTask        EventType = "task"
	EventTypeEvent       EventType = "event"
	EventTypeReminder    EventType = "reminder"
	EventTypeBirthday    EventType = "birthday"
	EventTypeAnniversary EventType = "anniversary"
)

// CalendarEvent — производное представление задачи для календаря.
// Никогда не редактируется напрямую, только пересобирается из задач.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Type        EventType `json:"type"`
	Color       string    `json:"color"`
	StartTime   string    `json:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
	TaskID      string    `json:"taskId"`
}

// правила типизации, первое совпадение выигрывает; порядок значим
type typeRule struct {
	matches func(category string, priority task.Priority) bool
	event   EventType
}

var typeRules = []typeRule{
	{func(c string, _ task.Priority) bool { return strings.Contains(c, "meeting") }, EventTypeMeeting},
	{func(c string, _ task.Priority) bool { return strings.Contains(c, "birthday") }, EventTypeBirthday},
	{func(c string, _ task.Priority) bool { return strings.Contains(c, "anniversary") }, EventTypeAnniversary},
	{func(c string, p task.Priority) bool { return strings.Contains(c, "reminder") || p == task.PriorityHigh }, EventTypeReminder},
	{func(c string, _ task.Priority) bool { return strings.Contains(c, "event") }, EventTypeEvent},
}

var typeColors = map[EventType]string{
	EventTypeMeeting:     "purple",
	EventTypeBirthday:    "pink",
	EventTypeAnniversary: "rose",
	EventTypeReminder:    "red",
	EventTypeEvent:       "green",
}

func inferEventType(t *task.Task) EventType {
	category := strings.ToLower(t.Category)
	for _, rule := range typeRules {
		if rule.matches(category, t.Priority) {
			return rule.event
		}
	}
	return EventTypeTask
}

func eventColor(eventType EventType, priority task.Priority) string {
	if color, ok := typeColors[eventType]; ok {
		return color
	}
	switch priority {
	case task.PriorityMedium:
		return "orange"
	case task.PriorityLow:
		return "cyan"
	}
	return "blue"
}

// ProjectCalendar выводит ровно одно событие на каждую задачу.
// Время начала показывается только для встреч и напоминаний, окончание —
// только для встреч (час после начала).
func ProjectCalendar(tasks []*task.Task) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(tasks))

	for _, t := range tasks {
		eventType := inferEventType(t)

		duration := 30 * time.Minute
		if eventType == EventTypeMeeting {
			duration = 60 * time.Minute
		}

		event := CalendarEvent{
			ID:          "cal-" + t.ID,
			Title:       t.Title,
			Description: t.Description,
			Date:        t.DueDate,
			Type:        eventType,
			Color:       eventColor(eventType, t.Priority),
			TaskID:      t.ID,
		}

		if eventType == EventTypeMeeting || eventType == EventTypeReminder {
			event.StartTime = t.DueDate.Format("15:04")
		}
		if eventType == EventTypeMeeting {
			event.EndTime = t.DueDate.Add(duration).Format("15:04")
		}

		events = append(events, event)
	}

	return events
}

// EventsForDate — точное совпадение календарного дня.
func EventsForDate(events []CalendarEvent, date time.Time) []CalendarEvent {
	res := []CalendarEvent{}
	for _, event := range events {
		if sameDay(event.Date, date) {
			res = append(res, event)
		}
	}
	return res
}

func EventsForMonth(events []CalendarEvent, year int, month time.Month) []CalendarEvent {
	res := []CalendarEvent{}
	for _, event := range events {
		if event.Date.Year() == year && event.Date.Month() == month {
			res = append(res, event)
		}
	}
	return res
}

// UpcomingEvents возвращает события строго после начала текущего дня,
// отсортированные по дате. Событие сегодняшнего вечера ещё считается будущим.
func UpcomingEvents(events []CalendarEvent, now time.Time) []CalendarEvent {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	res := []CalendarEvent{}
	for _, event := range events {
		if event.Date.After(dayStart) {
			res = append(res, event)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Date.Before(res[j].Date)
	})
	return res
}
