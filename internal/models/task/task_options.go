package task

import (
	"time"
)

type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	if title == "" {
		return nil
	}
	return func(task *Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithCategory(category string) TaskOption {
	if category == "" {
		return nil
	}
	return func(task *Task) {
		task.Category = category
	}
}

func WithPriority(priority Priority) TaskOption {
	if !priority.Valid() {
		return nil
	}
	return func(task *Task) {
		task.Priority = priority
	}
}

func WithDueDate(dueDate time.Time) TaskOption {
	if dueDate.IsZero() {
		return nil
	}
	return func(task *Task) {
		task.DueDate = dueDate
	}
}
