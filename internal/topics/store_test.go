package topics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickFirst pins every random selection to the first option.
func pickFirst(int) int { return 0 }

func TestLoad(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	for _, topic := range All() {
		t.Run(string(topic), func(t *testing.T) {
			assert.GreaterOrEqual(t, len(s.Paraphrases(topic)), 3,
				"each topic needs paraphrases for repeat visits")
			fus := s.FollowUps(topic)
			assert.GreaterOrEqual(t, len(fus), 2)
			for _, q := range fus {
				ans, ok := s.DirectFollowUpAnswer(topic, q)
				assert.True(t, ok, "follow-up %q must have an answer", q)
				assert.NotEmpty(t, ans)
			}
		})
	}
}

func TestHelpNamesEveryTopic(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	help := strings.ToLower(s.Help())
	for _, want := range []string{
		"password", "phishing", "malware", "social engineering",
		"data protection", "public wifi", "updates", "backup", "2fa",
	} {
		assert.Contains(t, help, want)
	}
}

func TestParaphrase(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	t.Run("pinned pick returns the first paraphrase", func(t *testing.T) {
		got := s.Paraphrase(TopicPassword, pickFirst)
		assert.Equal(t, s.Paraphrases(TopicPassword)[0], got)
	})

	t.Run("unknown topic yields empty", func(t *testing.T) {
		assert.Empty(t, s.Paraphrase(Topic("cooking"), pickFirst))
	})
}

func TestDirectFollowUpAnswer(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	t.Run("exact question text", func(t *testing.T) {
		q := s.FollowUps(TopicPassword)[0]
		ans, ok := s.DirectFollowUpAnswer(TopicPassword, q)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(ans, "To create a strong password:"))
	})

	t.Run("question from another topic", func(t *testing.T) {
		q := s.FollowUps(TopicPhishing)[0]
		_, ok := s.DirectFollowUpAnswer(TopicPassword, q)
		assert.False(t, ok)
	})
}

func TestSubAnswer(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	t.Run("keyword match", func(t *testing.T) {
		ans, ok := s.SubAnswer(TopicPassword, "are password MANAGERS safe?")
		require.True(t, ok)
		assert.Contains(t, ans, "manager")
	})

	t.Run("no keyword", func(t *testing.T) {
		_, ok := s.SubAnswer(TopicPassword, "what about my cat")
		assert.False(t, ok)
	})
}

func TestBridge(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	got := s.Bridge(TopicPassword, TopicPhishing, pickFirst)
	assert.Contains(t, got, "password")
	assert.Contains(t, got, "phishing")
	assert.NotContains(t, got, "%s", "template placeholders must be filled")
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() { MustLoad() })
}
