package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCRUD(t *testing.T) {
	l := NewList()
	assert.Zero(t, l.Len())

	added := l.Add(NewTask("Backup files", "desc", nil))
	require.Equal(t, 1, l.Len())

	t.Run("get", func(t *testing.T) {
		got, ok := l.Get(added.ID)
		require.True(t, ok)
		assert.Equal(t, "Backup files", got.Title)

		_, ok = l.Get("missing")
		assert.False(t, ok)
	})

	t.Run("set reminder", func(t *testing.T) {
		r := Reminder{Date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)}
		require.NoError(t, l.SetReminder(added.ID, &r))

		got, _ := l.Get(added.ID)
		require.NotNil(t, got.Reminder)
		assert.Equal(t, r.Date, *got.Reminder)

		require.NoError(t, l.SetReminder(added.ID, nil))
		got, _ = l.Get(added.ID)
		assert.Nil(t, got.Reminder)

		assert.Error(t, l.SetReminder("missing", &r))
	})

	t.Run("complete", func(t *testing.T) {
		require.NoError(t, l.Complete(added.ID))
		got, _ := l.Get(added.ID)
		assert.True(t, got.Done)

		assert.Error(t, l.Complete("missing"))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, l.Delete(added.ID))
		assert.Zero(t, l.Len())

		assert.Error(t, l.Delete(added.ID))
	})
}

func TestAllIsACopy(t *testing.T) {
	l := NewList()
	l.Add(NewTask("a", "", nil))

	all := l.All()
	all[0].Title = "mutated"

	assert.Equal(t, "a", l.All()[0].Title)
}
