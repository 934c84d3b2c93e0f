package topics

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/topics.yaml
var embeddedContent []byte

// Picker selects an index in [0, n). Paraphrase, follow-up, and bridge
// selection all go through a Picker so tests can pin the choice.
type Picker func(n int) int

// UniformPicker returns a Picker backed by math/rand.
func UniformPicker() Picker {
	return rand.Intn
}

// subAnswer pairs a trigger keyword with its canned detailed answer.
// Kept as an ordered list so first-match wins deterministically.
type subAnswer struct {
	Keyword string `yaml:"keyword"`
	Answer  string `yaml:"answer"`
}

type followUp struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Entry is the immutable content block for one topic.
type Entry struct {
	Key         Topic       `yaml:"key"`
	Paraphrases []string    `yaml:"paraphrases"`
	FollowUps   []followUp  `yaml:"followups"`
	SubAnswers  []subAnswer `yaml:"subanswers"`
}

type contentFile struct {
	Topics  []Entry  `yaml:"topics"`
	Bridges []string `yaml:"bridges"`
	Help    string   `yaml:"help"`
}

// Store provides read-only lookups over the embedded topic content.
// Safe for shared use; nothing mutates after Load.
type Store struct {
	entries map[Topic]*Entry
	bridges []string
	help    string
}

// Load decodes the embedded content corpus and validates it.
func Load() (*Store, error) {
	var cf contentFile
	if err := yaml.Unmarshal(embeddedContent, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse topic content: %w", err)
	}

	s := &Store{
		entries: make(map[Topic]*Entry, len(cf.Topics)),
		bridges: cf.Bridges,
		help:    cf.Help,
	}
	for i := range cf.Topics {
		e := &cf.Topics[i]
		if !e.Key.Known() {
			return nil, fmt.Errorf("unknown topic key %q in content", e.Key)
		}
		if len(e.Paraphrases) == 0 {
			return nil, fmt.Errorf("topic %q has no paraphrases", e.Key)
		}
		if len(e.FollowUps) == 0 {
			return nil, fmt.Errorf("topic %q has no follow-ups", e.Key)
		}
		s.entries[e.Key] = e
	}
	for _, t := range topicOrder {
		if _, ok := s.entries[t]; !ok {
			return nil, fmt.Errorf("content is missing topic %q", t)
		}
	}
	if len(s.bridges) == 0 || s.help == "" {
		return nil, fmt.Errorf("content is missing bridges or help text")
	}
	return s, nil
}

// MustLoad is Load for callers wiring static content at startup.
func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// Paraphrase returns one paraphrase for the topic, selected by pick.
// Unknown topics yield the empty string; the engine treats every topic it
// passes here as known.
func (s *Store) Paraphrase(t Topic, pick Picker) string {
	e, ok := s.entries[t]
	if !ok {
		return ""
	}
	return e.Paraphrases[pick(len(e.Paraphrases))]
}

// Paraphrases returns every paraphrase registered for the topic.
func (s *Store) Paraphrases(t Topic) []string {
	e, ok := s.entries[t]
	if !ok {
		return nil
	}
	out := make([]string, len(e.Paraphrases))
	copy(out, e.Paraphrases)
	return out
}

// FollowUps returns the topic's follow-up prompts in content order.
func (s *Store) FollowUps(t Topic) []string {
	e, ok := s.entries[t]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(e.FollowUps))
	for _, f := range e.FollowUps {
		out = append(out, f.Question)
	}
	return out
}

// DirectFollowUpAnswer returns the canned answer keyed by the literal
// follow-up question text previously asked.
func (s *Store) DirectFollowUpAnswer(t Topic, question string) (string, bool) {
	e, ok := s.entries[t]
	if !ok {
		return "", false
	}
	for _, f := range e.FollowUps {
		if f.Question == question {
			return f.Answer, true
		}
	}
	return "", false
}

// SubAnswer scans the topic's registered sub-question keywords against
// input (case-insensitive substring) and returns the first match.
func (s *Store) SubAnswer(t Topic, input string) (string, bool) {
	e, ok := s.entries[t]
	if !ok {
		return "", false
	}
	in := strings.ToLower(input)
	for _, sub := range e.SubAnswers {
		if strings.Contains(in, sub.Keyword) {
			return sub.Answer, true
		}
	}
	return "", false
}

// Bridge returns a one-time transition sentence referencing the previously
// discussed topic, selected by pick.
func (s *Store) Bridge(prev, next Topic, pick Picker) string {
	tmpl := s.bridges[pick(len(s.bridges))]
	return fmt.Sprintf(tmpl, prev.Display(), next.Display())
}

// Help returns the static topic-list message.
func (s *Store) Help() string {
	return s.help
}
