package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestRecordNewestFirst(t *testing.T) {
	l := NewLog()
	l.Record(KindChat, "first")
	l.Record(KindChat, "second")

	entries := l.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Description)
	assert.Equal(t, "first", entries[1].Description)
}

func TestRecordEvictsPastCap(t *testing.T) {
	l := NewLog()
	for i := range 55 {
		l.Record(KindSystem, fmt.Sprintf("entry %d", i))
	}

	assert.Equal(t, maxEntries, l.Len())
	assert.Equal(t, "entry 54", l.All()[0].Description, "newest survives")
	assert.Equal(t, "entry 5", l.All()[maxEntries-1].Description, "oldest five evicted")
}

func TestRecordHelpers(t *testing.T) {
	l := NewLog()
	l.RecordTask("added", "Backup files", "Reminder: Tomorrow")
	l.RecordQuiz("completed", "8/10")
	l.RecordChat("password")
	l.RecordSystem("Viewed the help menu")

	all := l.All()
	require.Len(t, all, 4)
	assert.Equal(t, KindSystem, all[0].Kind)
	assert.Equal(t, "Discussed password security", all[1].Description)
	assert.Equal(t, "Quiz completed: 8/10", all[2].Description)
	assert.Equal(t, "Task added: 'Backup files' (Reminder: Tomorrow)", all[3].Description)
}

func TestEntryLabel(t *testing.T) {
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.Local) // a Friday

	tests := []struct {
		name string
		when time.Time
		want string
	}{
		{"today", time.Date(2025, 3, 14, 9, 5, 0, 0, time.Local), "Today 9:05 AM"},
		{"yesterday", time.Date(2025, 3, 13, 22, 30, 0, 0, time.Local), "Yesterday 10:30 PM"},
		{"this week", time.Date(2025, 3, 11, 8, 0, 0, 0, time.Local), "Tuesday 8:00 AM"},
		{"older", time.Date(2025, 2, 1, 12, 0, 0, 0, time.Local), "Feb 01 12:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{When: tt.when}
			assert.Equal(t, tt.want, e.Label(now))
		})
	}
}

func TestRenderRecent(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		l := NewLog()
		assert.Contains(t, l.RenderRecent(), "No recent activities")
	})

	t.Run("shows at most five with a hint", func(t *testing.T) {
		l := NewLog()
		l.SetClock(fixedClock(time.Date(2025, 3, 14, 16, 0, 0, 0, time.Local)))
		for i := range 7 {
			l.Record(KindChat, fmt.Sprintf("entry %d", i))
		}

		out := l.RenderRecent()
		assert.Contains(t, out, "entry 6")
		assert.Contains(t, out, "entry 2")
		assert.NotContains(t, out, "entry 1")
		assert.Contains(t, out, "show more")
	})

	t.Run("no hint when everything fits", func(t *testing.T) {
		l := NewLog()
		l.Record(KindChat, "only entry")
		assert.NotContains(t, l.RenderRecent(), "show more")
	})
}

func TestRenderAll(t *testing.T) {
	l := NewLog()
	for i := range 7 {
		l.Record(KindChat, fmt.Sprintf("entry %d", i))
	}

	out := l.RenderAll()
	assert.Contains(t, out, "entry 0")
	assert.Contains(t, out, "entry 6")
	assert.NotContains(t, out, "show more")
}

func TestClear(t *testing.T) {
	l := NewLog()
	l.Record(KindChat, "x")
	l.Clear()
	assert.Zero(t, l.Len())
}

func TestIsLogRequest(t *testing.T) {
	assert.True(t, IsLogRequest("what have you done for me?"))
	assert.True(t, IsLogRequest("show me my recent activity"))
	assert.True(t, IsLogRequest("show my history"))
	assert.False(t, IsLogRequest("tell me about phishing"))
}

func TestIsShowMoreRequest(t *testing.T) {
	assert.True(t, IsShowMoreRequest("show more"))
	assert.True(t, IsShowMoreRequest("full history please"))
	assert.False(t, IsShowMoreRequest("recent activity"))
}
