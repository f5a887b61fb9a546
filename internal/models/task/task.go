package task

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Status      Status     `json:"status" db:"status"`
	Priority    Priority   `json:"priority" db:"priority"`
	Category    string     `json:"category" db:"category"`
	DueDate     time.Time  `json:"due_date" db:"due_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at,omitempty"`
	Version     int        `json:"version" db:"version"`
}

type Status string
type Priority string

const StatusPending Status = "pending"
const StatusCompleted Status = "completed"

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"

// NewID генерирует идентификатор вида "task-a1b2c3d4"
func NewID() string {
	u := uuid.New()
	return "task-" + hex.EncodeToString(u[:])[:8]
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
