package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	a := NewTask("Enable 2FA", "desc", nil)
	b := NewTask("Enable 2FA", "desc", nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "every task gets its own ID")
	assert.False(t, a.Done)
	assert.Nil(t, a.Reminder)
}

func TestReminderLabel(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	at := func(d time.Time) *time.Time { return &d }

	tests := []struct {
		name     string
		reminder *time.Time
		want     string
	}{
		{"none", nil, "No reminder set"},
		{"today", at(now.Add(2 * time.Hour)), "Reminder: Today"},
		{"tomorrow", at(now.AddDate(0, 0, 1)), "Reminder: Tomorrow"},
		{"past", at(now.AddDate(0, 0, -2)), "Overdue"},
		{"future date", at(time.Date(2025, 4, 2, 0, 0, 0, 0, time.Local)), "Reminder: Apr 02, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Title: "x", Reminder: tt.reminder}
			assert.Equal(t, tt.want, task.ReminderLabel(now))
		})
	}
}
