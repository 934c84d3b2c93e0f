package dialogue

import (
	"testing"

	"cyberbot/internal/topics"

	"github.com/stretchr/testify/assert"
)

func TestPhaseDerivation(t *testing.T) {
	st := NewState()
	assert.Equal(t, PhaseIdle, st.Phase())

	st.activate(topics.TopicPassword, "a question?")
	assert.Equal(t, PhaseAwaitingFollowUp, st.Phase())

	st.lastFollowUp = ""
	assert.Equal(t, PhaseTopicActive, st.Phase())

	st.postFollowUp = true
	assert.Equal(t, PhaseAwaitingPostFollowUp, st.Phase())
}

func TestResetKeepsHistory(t *testing.T) {
	st := NewState()
	st.activate(topics.TopicPassword, "q?")
	st.activate(topics.TopicPhishing, "q?")

	st.Reset()

	assert.Equal(t, PhaseIdle, st.Phase())
	assert.Empty(t, st.CurrentTopic())
	assert.Equal(t, []topics.Topic{topics.TopicPassword, topics.TopicPhishing}, st.History())

	// Idempotent.
	st.Reset()
	assert.Equal(t, PhaseIdle, st.Phase())
}

func TestClearHistory(t *testing.T) {
	st := NewState()
	st.activate(topics.TopicBackup, "q?")

	st.ClearHistory()

	assert.Empty(t, st.History())
	assert.Equal(t, topics.TopicBackup, st.CurrentTopic(),
		"clearing history does not end the active topic")
}

func TestHistoryRecordsFirstVisitOnly(t *testing.T) {
	st := NewState()
	st.activate(topics.TopicPassword, "q?")
	st.activate(topics.TopicPhishing, "q?")
	st.activate(topics.TopicPassword, "q?")

	assert.Equal(t, []topics.Topic{topics.TopicPassword, topics.TopicPhishing}, st.History())
}

func TestHistoryIsACopy(t *testing.T) {
	st := NewState()
	st.activate(topics.TopicPassword, "q?")

	h := st.History()
	h[0] = topics.TopicMalware

	assert.Equal(t, []topics.Topic{topics.TopicPassword}, st.History())
}
