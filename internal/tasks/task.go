// Package tasks implements the cybersecurity to-do list: task CRUD,
// generated task descriptions, and natural-language reminder dates.
// Everything lives in memory for the life of the process.
package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task is one cybersecurity to-do item.
type Task struct {
	ID          string
	Title       string
	Description string
	Reminder    *time.Time // nil when no reminder is set
	Done        bool
	Created     time.Time
}

// NewTask creates a task with a fresh ID.
func NewTask(title, description string, reminder *time.Time) Task {
	return Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Reminder:    reminder,
		Created:     time.Now(),
	}
}

// ReminderLabel formats the reminder relative to now for display.
func (t Task) ReminderLabel(now time.Time) string {
	if t.Reminder == nil {
		return "No reminder set"
	}
	today := startOfDay(now)
	day := startOfDay(*t.Reminder)
	switch {
	case day.Equal(today):
		return "Reminder: Today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "Reminder: Tomorrow"
	case day.Before(today):
		return "Overdue"
	default:
		return fmt.Sprintf("Reminder: %s", day.Format("Jan 02, 2006"))
	}
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
