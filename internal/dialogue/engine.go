package dialogue

import (
	"fmt"
	"strings"

	"cyberbot/internal/topics"
)

// Affirmation and rejection vocabularies. Matching is substring
// containment on the lowercased input, same as topic detection; "ok"
// inside "look" counts as an affirmation and that behavior is load-bearing
// for compatibility with the original response tables.
var (
	postFollowUpAffirmations = []string{"yes", "sure", "ok", "yeah", "yep"}
	followUpAffirmations     = []string{"yes", "sure", "ok", "please", "tell me"}
	rejections               = []string{"no", "not", "different"}
)

// Response is the transient result of resolving one utterance. Text is
// the reply body; Ask is an optional trailing question the shell renders
// after the body. Both are discarded once displayed.
type Response struct {
	Text string
	Ask  string
}

// Joined renders the response as a single utterance.
func (r Response) Joined() string {
	if r.Ask == "" {
		return r.Text
	}
	return r.Text + "\n\n" + r.Ask
}

// Engine resolves user utterances against the topic content store and a
// per-session State. It holds no per-session data itself, so one Engine
// can serve any number of States.
type Engine struct {
	store    *topics.Store
	userName string
	pick     topics.Picker
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker replaces the uniform random picker, used by tests to make
// paraphrase, follow-up, and bridge selection deterministic.
func WithPicker(p topics.Picker) Option {
	return func(e *Engine) { e.pick = p }
}

// NewEngine creates an engine personalized with the user's name.
func NewEngine(store *topics.Store, userName string, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		userName: userName,
		pick:     topics.UniformPicker(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Resolve processes one utterance and mutates st accordingly. Every
// reachable path returns a non-empty Text; the engine never errors.
// Branches are checked in strict precedence order; first match wins.
func (e *Engine) Resolve(input string, st *State) Response {
	in := strings.ToLower(strings.TrimSpace(input))

	// 1. Post-follow-up choice: the flag is consumed no matter what the
	// user says.
	if st.postFollowUp {
		st.postFollowUp = false
		if containsAny(in, postFollowUpAffirmations) && st.current != "" {
			cur := st.current
			return Response{
				Text: e.store.Paraphrase(cur, e.pick),
				Ask:  fmt.Sprintf("Is there anything else about %s you'd like to explore?", cur.Display()),
			}
		}
		st.current = ""
		st.lastFollowUp = ""
		return Response{Text: "No problem! Type 'help' any time to see the topics I can explain."}
	}

	// 2. Pending follow-up answered affirmatively: serve the canned
	// answer keyed by the exact question text.
	if st.lastFollowUp != "" && containsAny(in, followUpAffirmations) {
		if ans, ok := e.store.DirectFollowUpAnswer(st.current, st.lastFollowUp); ok {
			st.lastFollowUp = ""
			st.postFollowUp = true
			return Response{
				Text: ans,
				Ask:  fmt.Sprintf("Would you like to learn more about %s?", st.current.Display()),
			}
		}
		// The stored question no longer exists in the store. Should be
		// unreachable with static content; degrade instead of failing.
		st.lastFollowUp = ""
		return Response{Text: e.fallback()}
	}

	// 3. Active topic handling.
	if st.current != "" {
		// 3a. Sub-question keyword registered under the current topic.
		if ans, ok := e.store.SubAnswer(st.current, in); ok {
			st.lastFollowUp = ""
			return Response{
				Text: ans,
				Ask:  fmt.Sprintf("Anything else you'd like to know about %s?", st.current.Display()),
			}
		}
		// 3b. A different recognized topic: switch.
		if next, ok := topics.DetectOther(in, st.current); ok {
			prev := st.current
			st.recordTopic(prev)
			bridge := ""
			if !st.seen(next) {
				bridge = e.store.Bridge(prev, next, e.pick)
			}
			fu := e.pickFollowUp(next)
			st.activate(next, fu)
			text := e.store.Paraphrase(next, e.pick)
			if bridge != "" {
				text = bridge + " " + text
			}
			return Response{Text: text, Ask: fu}
		}
		// 3c. Bare affirmation with no pending follow-up: another
		// paraphrase of the same topic.
		if st.lastFollowUp == "" && containsAny(in, followUpAffirmations) {
			return Response{Text: e.store.Paraphrase(st.current, e.pick)}
		}
		// 3d. Rejection or change request: back toward idle.
		if containsAny(in, rejections) {
			st.Reset()
			return Response{Text: "Sure, which topic should we look at next? Type 'help' to see everything I can explain."}
		}
	}

	// 4. Help request embedded in free text. Asking for the menu ends
	// the current topic thread; history is kept for bridge phrasing.
	if strings.Contains(in, "help") || strings.Contains(in, "topics") {
		st.Reset()
		return Response{Text: e.store.Help()}
	}

	// 5. Full topic keyword scan.
	matched := topics.Detect(in)
	switch {
	case len(matched) >= 2:
		// Ambiguity defers commitment: no state change.
		return Response{
			Text: fmt.Sprintf("I can tell you about both %s and %s. Which one should we start with?",
				matched[0].Display(), matched[1].Display()),
		}
	case len(matched) == 1:
		next := matched[0]
		bridge := ""
		if prev, ok := st.lastVisited(); ok && !st.seen(next) {
			bridge = e.store.Bridge(prev, next, e.pick)
		}
		fu := e.pickFollowUp(next)
		st.activate(next, fu)
		text := e.store.Paraphrase(next, e.pick)
		if bridge != "" {
			text = bridge + " " + text
		}
		return Response{Text: text, Ask: fu}
	default:
		return Response{Text: e.fallback()}
	}
}

// pickFollowUp selects a follow-up question for t.
func (e *Engine) pickFollowUp(t topics.Topic) string {
	fus := e.store.FollowUps(t)
	if len(fus) == 0 {
		return ""
	}
	return fus[e.pick(len(fus))]
}

// fallback is the personalized unknown-topic reply.
func (e *Engine) fallback() string {
	return fmt.Sprintf("I'm sorry %s, I don't have information about that topic yet. Type 'help' to see available topics.", e.userName)
}

func containsAny(in string, words []string) bool {
	for _, w := range words {
		if strings.Contains(in, w) {
			return true
		}
	}
	return false
}
