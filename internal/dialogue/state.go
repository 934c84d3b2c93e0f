// Package dialogue implements the conversation core: per-session state
// tracking and the keyword-driven response resolution engine. The engine
// never performs I/O and never fails; every input yields reply text plus
// a state update, which is the whole contract the surrounding shell needs.
package dialogue

import "cyberbot/internal/topics"

// Phase is the engine-visible conversation phase, derived from the
// concrete state fields so invalid combinations cannot be represented.
type Phase int

const (
	// PhaseIdle means no topic is active.
	PhaseIdle Phase = iota
	// PhaseTopicActive means a topic is set with no pending question.
	PhaseTopicActive
	// PhaseAwaitingFollowUp means a follow-up question was just asked.
	PhaseAwaitingFollowUp
	// PhaseAwaitingPostFollowUp is the turn after a detailed answer,
	// where the bot asks whether to continue on the same topic.
	PhaseAwaitingPostFollowUp
)

func (p Phase) String() string {
	switch p {
	case PhaseTopicActive:
		return "topic-active"
	case PhaseAwaitingFollowUp:
		return "awaiting-follow-up"
	case PhaseAwaitingPostFollowUp:
		return "awaiting-post-follow-up"
	default:
		return "idle"
	}
}

// State holds the per-session dialogue context. One instance per session,
// mutated only by Engine.Resolve and the two reset operations. Not safe
// for concurrent use; a session is single-threaded and turn-based.
type State struct {
	current      topics.Topic
	lastFollowUp string
	postFollowUp bool
	history      []topics.Topic
}

// NewState returns an empty session state.
func NewState() *State {
	return &State{}
}

// CurrentTopic returns the active topic, or "" when idle.
func (s *State) CurrentTopic() topics.Topic { return s.current }

// LastFollowUp returns the follow-up question pending an answer, or "".
func (s *State) LastFollowUp() string { return s.lastFollowUp }

// PostFollowUp reports whether the session is in the turn immediately
// after a detailed follow-up answer.
func (s *State) PostFollowUp() bool { return s.postFollowUp }

// History returns the distinct topics visited, in first-visit order.
func (s *State) History() []topics.Topic {
	out := make([]topics.Topic, len(s.history))
	copy(out, s.history)
	return out
}

// Phase derives the conversation phase from the state fields.
func (s *State) Phase() Phase {
	switch {
	case s.postFollowUp:
		return PhaseAwaitingPostFollowUp
	case s.lastFollowUp != "":
		return PhaseAwaitingFollowUp
	case s.current != "":
		return PhaseTopicActive
	default:
		return PhaseIdle
	}
}

// Reset clears the active topic and any pending follow-up state. It does
// NOT clear the topic history; history only feeds bridge phrasing and
// survives topic switches. Idempotent.
func (s *State) Reset() {
	s.current = ""
	s.lastFollowUp = ""
	s.postFollowUp = false
}

// ClearHistory forgets which topics were visited. Separate from Reset on
// purpose: callers decide whether a reset should also drop the history.
func (s *State) ClearHistory() {
	s.history = nil
}

// recordTopic appends t to the history on first visit only.
func (s *State) recordTopic(t topics.Topic) {
	for _, seen := range s.history {
		if seen == t {
			return
		}
	}
	s.history = append(s.history, t)
}

// seen reports whether t was already visited this session.
func (s *State) seen(t topics.Topic) bool {
	for _, v := range s.history {
		if v == t {
			return true
		}
	}
	return false
}

// lastVisited returns the most recently recorded topic, if any.
func (s *State) lastVisited() (topics.Topic, bool) {
	if len(s.history) == 0 {
		return "", false
	}
	return s.history[len(s.history)-1], true
}

// activate makes t the current topic with fu pending. Post-follow-up is
// always cleared; a new activation starts a fresh question cycle.
func (s *State) activate(t topics.Topic, fu string) {
	s.current = t
	s.lastFollowUp = fu
	s.postFollowUp = false
	s.recordTopic(t)
}
