// Package activity keeps a bounded, in-memory log of what the user has
// done across the chat, quiz, and task features, newest first.
package activity

import (
	"fmt"
	"strings"
	"time"
)

// Kind classifies an activity entry.
type Kind string

const (
	KindTask   Kind = "task"
	KindQuiz   Kind = "quiz"
	KindChat   Kind = "chat"
	KindSystem Kind = "system"
)

// maxEntries caps the log; the oldest entry is dropped past this.
const maxEntries = 50

// recentCount is how many entries the short chat rendering shows.
const recentCount = 5

// Entry is one logged activity.
type Entry struct {
	When        time.Time
	Kind        Kind
	Description string
}

// Label formats the entry timestamp relative to now: time of day for
// today and yesterday, weekday within a week, date otherwise.
func (e Entry) Label(now time.Time) string {
	today := startOfDay(now)
	day := startOfDay(e.When)
	switch {
	case day.Equal(today):
		return "Today " + e.When.Format("3:04 PM")
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday " + e.When.Format("3:04 PM")
	case day.After(today.AddDate(0, 0, -7)):
		return e.When.Format("Monday 3:04 PM")
	default:
		return e.When.Format("Jan 02 3:04 PM")
	}
}

// Log is the bounded newest-first activity log for one session.
type Log struct {
	entries []Entry
	now     func() time.Time
}

// NewLog returns an empty activity log.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// SetClock overrides the time source, for tests.
func (l *Log) SetClock(now func() time.Time) {
	l.now = now
}

// Now returns the log's current time, honoring a test clock.
func (l *Log) Now() time.Time {
	return l.now()
}

// Record prepends an entry, evicting the oldest past the cap.
func (l *Log) Record(kind Kind, description string) {
	e := Entry{When: l.now(), Kind: kind, Description: description}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
}

// RecordTask logs a task action ("added", "completed", ...) with optional
// extra detail.
func (l *Log) RecordTask(action, title, detail string) {
	d := fmt.Sprintf("Task %s: '%s'", action, title)
	if detail != "" {
		d += fmt.Sprintf(" (%s)", detail)
	}
	l.Record(KindTask, d)
}

// RecordQuiz logs a quiz action with optional detail such as the score.
func (l *Log) RecordQuiz(action, detail string) {
	d := "Quiz " + action
	if detail != "" {
		d += ": " + detail
	}
	l.Record(KindQuiz, d)
}

// RecordChat logs a discussed topic.
func (l *Log) RecordChat(topic string) {
	l.Record(KindChat, fmt.Sprintf("Discussed %s security", topic))
}

// RecordSystem logs a system action such as opening the help menu.
func (l *Log) RecordSystem(action string) {
	l.Record(KindSystem, action)
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []Entry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[:n])
	return out
}

// All returns every stored entry, newest first.
func (l *Log) All() []Entry {
	return l.Recent(len(l.entries))
}

// Len returns the number of stored entries.
func (l *Log) Len() int { return len(l.entries) }

// Clear drops every entry.
func (l *Log) Clear() {
	l.entries = nil
}

// RenderRecent formats the recent entries for chat display, with a
// "show more" hint when more history exists.
func (l *Log) RenderRecent() string {
	return l.render(l.Recent(recentCount), l.Len() > recentCount)
}

// RenderAll formats the full log for chat display.
func (l *Log) RenderAll() string {
	return l.render(l.All(), false)
}

func (l *Log) render(entries []Entry, more bool) string {
	if len(entries) == 0 {
		return "No recent activities to display. Start using the chatbot to see your activity history!"
	}
	now := l.now()
	var b strings.Builder
	b.WriteString("Recent activity:\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, e.Label(now), e.Description)
	}
	if more {
		b.WriteString("\nType 'show more' to see the full activity history.")
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsLogRequest reports whether input asks to see the activity log.
func IsLogRequest(input string) bool {
	in := strings.ToLower(input)
	return strings.Contains(in, "what have you done for me") ||
		strings.Contains(in, "recent activity") ||
		strings.Contains(in, "history") ||
		strings.Contains(in, "log") ||
		strings.Contains(in, "show more")
}

// IsShowMoreRequest reports whether input asks for the extended history.
func IsShowMoreRequest(input string) bool {
	in := strings.ToLower(input)
	return strings.Contains(in, "show more") ||
		strings.Contains(in, "more activities") ||
		strings.Contains(in, "full history")
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
