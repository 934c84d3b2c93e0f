package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noShuffle leaves the deck in bank order so rounds are deterministic.
func noShuffle(int, func(i, j int)) {}

func TestBank(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 30, m.BankSize())

	for i, q := range questionBank() {
		assert.NotEmpty(t, q.Text, "question %d", i)
		assert.NotEmpty(t, q.Explanation, "question %d", i)
		require.GreaterOrEqual(t, len(q.Options), 2, "question %d", i)
		assert.GreaterOrEqual(t, q.CorrectIndex, 0, "question %d", i)
		assert.Less(t, q.CorrectIndex, len(q.Options), "question %d", i)
		if q.TrueFalse {
			assert.Equal(t, []string{"True", "False"}, q.Options, "question %d", i)
		}
	}
}

func TestStartSamplesTenQuestions(t *testing.T) {
	m := NewManager(WithShuffler(noShuffle))
	m.Start()

	assert.Equal(t, QuestionsPerRound, m.TotalQuestions())
	assert.Equal(t, 1, m.QuestionNumber())
	assert.Zero(t, m.Score())
	assert.False(t, m.Done())

	q, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, questionBank()[0].Text, q.Text)
}

func TestCurrentBeforeStart(t *testing.T) {
	m := NewManager()
	_, ok := m.Current()
	assert.False(t, ok)
	assert.False(t, m.Done(), "an unstarted round is not done")
}

func TestSubmitAnswer(t *testing.T) {
	t.Run("correct answer scores", func(t *testing.T) {
		m := NewManager(WithShuffler(noShuffle))
		m.Start()
		q, _ := m.Current()

		assert.True(t, m.SubmitAnswer(q.CorrectIndex))
		assert.Equal(t, 1, m.Score())
	})

	t.Run("wrong answer does not score", func(t *testing.T) {
		m := NewManager(WithShuffler(noShuffle))
		m.Start()
		q, _ := m.Current()
		wrong := (q.CorrectIndex + 1) % len(q.Options)

		assert.False(t, m.SubmitAnswer(wrong))
		assert.Zero(t, m.Score())
	})

	t.Run("submission after the round is ignored", func(t *testing.T) {
		m := NewManager(WithShuffler(noShuffle))
		m.Start()
		for range m.TotalQuestions() {
			m.Advance()
		}
		require.True(t, m.Done())
		assert.False(t, m.SubmitAnswer(0))
		assert.Zero(t, m.Score())
	})
}

func TestFullRound(t *testing.T) {
	playRound := func(t *testing.T, correct int) *Manager {
		t.Helper()
		m := NewManager(WithShuffler(noShuffle))
		m.Start()
		for i := 0; !m.Done(); i++ {
			q, ok := m.Current()
			require.True(t, ok)
			if i < correct {
				m.SubmitAnswer(q.CorrectIndex)
			} else {
				m.SubmitAnswer((q.CorrectIndex + 1) % len(q.Options))
			}
			m.Advance()
		}
		return m
	}

	t.Run("perfect score", func(t *testing.T) {
		m := playRound(t, 10)
		assert.Equal(t, 10, m.Score())
		assert.InDelta(t, 100, m.Percentage(), 0.01)
		assert.Contains(t, m.Feedback(), "pro")
	})

	t.Run("middling score", func(t *testing.T) {
		m := playRound(t, 7)
		assert.Equal(t, 7, m.Score())
		assert.InDelta(t, 70, m.Percentage(), 0.01)
		assert.Contains(t, m.Feedback(), "Good work")
	})

	t.Run("low score", func(t *testing.T) {
		m := playRound(t, 3)
		assert.InDelta(t, 30, m.Percentage(), 0.01)
		assert.Contains(t, m.Feedback(), "Keep studying")
	})
}

func TestRestartResetsScore(t *testing.T) {
	m := NewManager(WithShuffler(noShuffle))
	m.Start()
	q, _ := m.Current()
	m.SubmitAnswer(q.CorrectIndex)
	m.Advance()

	m.Start()

	assert.Zero(t, m.Score())
	assert.Equal(t, 1, m.QuestionNumber())
	assert.False(t, m.Done())
}
