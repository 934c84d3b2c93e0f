package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAutoCreate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"remind me to backup my files", true},
		{"set up 2fa for me", true},
		{"create a password review", true},
		{"add an antivirus scan", true},
		{"backup my files", false},      // topic but no action word
		{"remind me to call mom", false}, // action but no security topic
		{"hello there", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldAutoCreate(tt.input))
		})
	}
}

func TestIsQuizRequest(t *testing.T) {
	assert.True(t, IsQuizRequest("let's play the quiz"))
	assert.True(t, IsQuizRequest("can we play a game"))
	assert.False(t, IsQuizRequest("tell me about phishing"))
}

func TestBuildFromInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	t.Run("title from topic keyword", func(t *testing.T) {
		task := BuildFromInput("remind me to backup my files", now)
		assert.Equal(t, "Backup important files", task.Title)
		assert.NotEmpty(t, task.Description)
		assert.Nil(t, task.Reminder)
	})

	t.Run("inline reminder date", func(t *testing.T) {
		task := BuildFromInput("remind me to install updates tomorrow", now)
		assert.Equal(t, "Install software updates", task.Title)
		require.NotNil(t, task.Reminder)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local), *task.Reminder)
	})

	t.Run("2fa keyword", func(t *testing.T) {
		task := BuildFromInput("set up 2fa on my accounts", now)
		assert.Equal(t, "Enable two-factor authentication", task.Title)
	})
}

func TestGenerateDescription(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Review account passwords", "strengthen passwords"},
		{"Install software updates", "security updates"},
		{"Backup important files", "backups"},
		{"Enable two-factor authentication", "two-factor"},
		{"Run a malware scan", "antivirus"},
		{"Review email security settings", "phishing"},
		{"Secure wireless network settings", "wireless"},
		{"Walk the dog", "Complete the cybersecurity task"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Contains(t, GenerateDescription(tt.title), tt.want)
		})
	}
}
