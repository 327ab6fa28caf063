package model

import (
	"time"
	"tripdesk/shared/model"
)

const (
	TableName  = "tasks"
	EntityName = "task"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldPriority  = "priority"
	FieldCompleted = "completed"
	FieldDueDate   = "due_date"
	FieldBookingID = "booking_id"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a back-office follow-up item, optionally pinned to a booking file.
type Task struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Priority    string     `db:"priority"`
	Completed   bool       `db:"completed"`
	DueDate     *time.Time `db:"due_date"`
	BookingID   string     `db:"booking_id"`
	model.Metadata
}
