// Package seed содержит демонстрационный набор задач: 24 задачи на декабрь,
// 14 выполненных до опорной даты 2025-12-20 и 10 ожидающих после неё.
// Используется демо-режимом и тестами производного слоя.
package seed

import (
	"time"

	"taskDashboard/internal/models/task"
)

// Anchor — опорная дата "сегодня" для демо-набора.
func Anchor() time.Time {
	return mustTime("2025-12-20T00:00:00")
}

func Tasks() []*task.Task {
	return []*task.Task{
		completed("task-001", "Design Login Page UI", "Create mockups and wireframes for the new login page with modern design patterns",
			task.PriorityHigh, "UI/UX Phase", "2025-12-03T17:00:00", "2025-12-01T09:00:00", "2025-12-03T16:30:00"),
		completed("task-002", "Setup Project Repository", "Initialize Git repository with proper folder structure and README",
			task.PriorityHigh, "Development", "2025-12-02T17:00:00", "2025-12-01T10:00:00", "2025-12-02T15:00:00"),
		completed("task-003", "Review API Documentation", "Go through the REST API documentation and prepare integration plan",
			task.PriorityMedium, "Documentation", "2025-12-04T17:00:00", "2025-12-02T11:00:00", "2025-12-04T14:00:00"),
		completed("task-004", "Database Schema Design", "Design database schema for user authentication and profile management",
			task.PriorityHigh, "Development", "2025-12-05T17:00:00", "2025-12-03T09:00:00", "2025-12-05T16:00:00"),
		completed("task-005", "Implement User Registration", "Build user registration functionality with email verification",
			task.PriorityHigh, "Development", "2025-12-08T17:00:00", "2025-12-06T09:00:00", "2025-12-08T15:30:00"),
		completed("task-006", "Create Dashboard Wireframes", "Design wireframes for the main dashboard with all widgets",
			task.PriorityMedium, "UI/UX Phase", "2025-12-09T17:00:00", "2025-12-07T10:00:00", "2025-12-09T14:00:00"),
		completed("task-007", "Setup Testing Framework", "Configure Jest and React Testing Library for unit tests",
			task.PriorityMedium, "Testing", "2025-12-10T17:00:00", "2025-12-08T09:00:00", "2025-12-10T16:00:00"),
		completed("task-008", "Build Authentication API", "Develop REST API endpoints for user authentication",
			task.PriorityHigh, "Development", "2025-12-12T17:00:00", "2025-12-10T09:00:00", "2025-12-12T17:00:00"),
		completed("task-009", "Design System Components", "Create reusable component library with consistent styling",
			task.PriorityHigh, "UI/UX Phase", "2025-12-13T17:00:00", "2025-12-11T09:00:00", "2025-12-13T15:00:00"),
		completed("task-010", "Write Unit Tests for Auth", "Create comprehensive unit tests for authentication module",
			task.PriorityMedium, "Testing", "2025-12-14T17:00:00", "2025-12-12T10:00:00", "2025-12-14T16:00:00"),
		completed("task-011", "Deploy to Staging", "Deploy current build to staging environment for QA testing",
			task.PriorityHigh, "Deployment", "2025-12-15T17:00:00", "2025-12-13T09:00:00", "2025-12-15T14:00:00"),
		completed("task-012", "Fix Responsive Layout Issues", "Resolve mobile and tablet layout problems reported in QA",
			task.PriorityHigh, "Development", "2025-12-17T17:00:00", "2025-12-15T09:00:00", "2025-12-17T16:30:00"),
		completed("task-013", "Performance Optimization", "Optimize bundle size and improve page load times",
			task.PriorityMedium, "Development", "2025-12-18T17:00:00", "2025-12-16T10:00:00", "2025-12-18T15:00:00"),
		completed("task-014", "Accessibility Audit", "Conduct accessibility audit and fix WCAG compliance issues",
			task.PriorityMedium, "Review", "2025-12-19T17:00:00", "2025-12-17T09:00:00", "2025-12-19T14:00:00"),

		pending("task-015", "Integrate Payment Gateway", "Implement Stripe payment integration for subscription plans",
			task.PriorityHigh, "Development", "2025-12-21T17:00:00", "2025-12-18T09:00:00"),
		pending("task-016", "User Dashboard Implementation", "Build the main user dashboard with all analytics widgets",
			task.PriorityHigh, "Development", "2025-12-22T17:00:00", "2025-12-19T09:00:00"),
		pending("task-017", "Email Notification System", "Setup email notification service for user alerts",
			task.PriorityMedium, "Development", "2025-12-23T17:00:00", "2025-12-20T09:00:00"),
		pending("task-018", "Security Penetration Testing", "Conduct security testing and vulnerability assessment",
			task.PriorityHigh, "Testing", "2025-12-24T17:00:00", "2025-12-20T10:00:00"),
		pending("task-019", "Analytics Dashboard Design", "Design charts and graphs for analytics visualization",
			task.PriorityMedium, "UI/UX Phase", "2025-12-26T17:00:00", "2025-12-21T09:00:00"),
		pending("task-020", "API Rate Limiting", "Implement rate limiting and throttling for API endpoints",
			task.PriorityHigh, "Development", "2025-12-27T17:00:00", "2025-12-22T09:00:00"),
		pending("task-021", "Mobile App Mockups", "Create mobile app mockups for iOS and Android",
			task.PriorityMedium, "UI/UX Phase", "2025-12-28T17:00:00", "2025-12-23T09:00:00"),
		pending("task-022", "Database Backup Strategy", "Implement automated database backup and recovery system",
			task.PriorityHigh, "Development", "2025-12-29T17:00:00", "2025-12-24T09:00:00"),
		pending("task-023", "Documentation Update", "Update all API documentation and user guides",
			task.PriorityLow, "Documentation", "2025-12-30T17:00:00", "2025-12-25T09:00:00"),
		pending("task-024", "Final Production Deployment", "Deploy final version to production with monitoring",
			task.PriorityHigh, "Deployment", "2025-12-31T17:00:00", "2025-12-26T09:00:00"),
	}
}

func completed(id, title, description string, priority task.Priority, category, due, created, done string) *task.Task {
	completedAt := mustTime(done)
	return &task.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      task.StatusCompleted,
		Priority:    priority,
		Category:    category,
		DueDate:     mustTime(due),
		CreatedAt:   mustTime(created),
		CompletedAt: &completedAt,
		Version:     1,
	}
}

func pending(id, title, description string, priority task.Priority, category, due, created string) *task.Task {
	return &task.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      task.StatusPending,
		Priority:    priority,
		Category:    category,
		DueDate:     mustTime(due),
		CreatedAt:   mustTime(created),
		Version:     1,
	}
}

func mustTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}
