package quiz

import "math/rand"

// QuestionsPerRound is how many questions each round samples from the bank.
const QuestionsPerRound = 10

// Shuffler permutes n elements via the provided swap function. Tests
// inject a no-op or fixed permutation.
type Shuffler func(n int, swap func(i, j int))

// UniformShuffler returns a math/rand backed Shuffler.
func UniformShuffler() Shuffler {
	return rand.Shuffle
}

// Manager runs quiz rounds: it samples questions, accepts answers, and
// tracks the score. Not safe for concurrent use.
type Manager struct {
	bank    []Question
	shuffle Shuffler

	round []Question
	index int
	score int
}

// Option configures a Manager.
type Option func(*Manager)

// WithShuffler replaces the sampling shuffler.
func WithShuffler(s Shuffler) Option {
	return func(m *Manager) { m.shuffle = s }
}

// NewManager creates a quiz manager over the built-in question bank.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		bank:    questionBank(),
		shuffle: UniformShuffler(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BankSize returns the number of questions in the bank.
func (m *Manager) BankSize() int { return len(m.bank) }

// Start begins a new round with QuestionsPerRound questions sampled
// without replacement.
func (m *Manager) Start() {
	deck := make([]Question, len(m.bank))
	copy(deck, m.bank)
	m.shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	n := QuestionsPerRound
	if n > len(deck) {
		n = len(deck)
	}
	m.round = deck[:n]
	m.index = 0
	m.score = 0
}

// Current returns the question awaiting an answer, or false when the
// round is over or not started.
func (m *Manager) Current() (Question, bool) {
	if m.round == nil || m.index >= len(m.round) {
		return Question{}, false
	}
	return m.round[m.index], true
}

// QuestionNumber returns the 1-based number of the current question.
func (m *Manager) QuestionNumber() int { return m.index + 1 }

// TotalQuestions returns the length of the current round.
func (m *Manager) TotalQuestions() int { return len(m.round) }

// Score returns the number of correct answers so far.
func (m *Manager) Score() int { return m.score }

// Done reports whether the round is complete.
func (m *Manager) Done() bool {
	return m.round != nil && m.index >= len(m.round)
}

// SubmitAnswer scores the answer for the current question and reports
// whether it was correct. Out-of-round submissions are ignored.
func (m *Manager) SubmitAnswer(optionIndex int) bool {
	q, ok := m.Current()
	if !ok {
		return false
	}
	if optionIndex == q.CorrectIndex {
		m.score++
		return true
	}
	return false
}

// Advance moves to the next question.
func (m *Manager) Advance() {
	if m.round != nil && m.index < len(m.round) {
		m.index++
	}
}

// Percentage returns the round score as a percentage of the round length.
func (m *Manager) Percentage() float64 {
	if len(m.round) == 0 {
		return 0
	}
	return float64(m.score) / float64(len(m.round)) * 100
}

// Feedback returns the performance message for the final score.
func (m *Manager) Feedback() string {
	switch p := m.Percentage(); {
	case p >= 90:
		return "Great job! You're a cybersecurity pro!"
	case p >= 70:
		return "Good work! Keep learning to stay safe online!"
	default:
		return "Keep studying! Cybersecurity knowledge is important."
	}
}
