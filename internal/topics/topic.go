// Package topics holds the read-only educational content the chatbot can
// talk about: per-topic paraphrases, follow-up prompts, canned sub-answers,
// and the bridge templates used when the conversation moves between topics.
// Content is authored in YAML and baked into the binary with go:embed.
package topics

import "strings"

// Topic identifies one of the fixed cybersecurity subject areas.
// The zero value ("") means no topic.
type Topic string

const (
	TopicPassword          Topic = "password"
	TopicPhishing          Topic = "phishing"
	TopicMalware           Topic = "malware"
	TopicSocialEngineering Topic = "social engineering"
	TopicDataProtection    Topic = "data protection"
	TopicPublicWifi        Topic = "public wifi"
	TopicUpdates           Topic = "updates"
	TopicBackup            Topic = "backup"
	TopicTwoFactor         Topic = "2fa"
)

// topicOrder fixes the scan and display order. Map iteration order is not
// deterministic in Go, and disambiguation replies must always name topics
// in the same order.
var topicOrder = []Topic{
	TopicPassword,
	TopicPhishing,
	TopicMalware,
	TopicSocialEngineering,
	TopicDataProtection,
	TopicPublicWifi,
	TopicUpdates,
	TopicBackup,
	TopicTwoFactor,
}

// detectKeywords maps each topic to the substrings that activate it.
// Matching is case-insensitive substring containment, not whole-word:
// "passwords" activates password via the "password" substring.
var detectKeywords = map[Topic][]string{
	TopicPassword:          {"password"},
	TopicPhishing:          {"phishing"},
	TopicMalware:           {"malware"},
	TopicSocialEngineering: {"social engineering"},
	TopicDataProtection:    {"data protection"},
	TopicPublicWifi:        {"public wifi", "wifi"},
	TopicUpdates:           {"update"},
	TopicBackup:            {"backup"},
	TopicTwoFactor:         {"2fa", "two factor", "authentication"},
}

// Display returns the topic name used in replies and for the current-topic
// field. "updates" is the content key family, but the conversation refers
// to the singular "update".
func (t Topic) Display() string {
	if t == TopicUpdates {
		return "update"
	}
	return string(t)
}

// Known reports whether t is one of the fixed topics.
func (t Topic) Known() bool {
	_, ok := detectKeywords[t]
	return ok
}

// All returns the topics in scan order.
func All() []Topic {
	out := make([]Topic, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// Detect scans input for topic keywords and returns every distinct topic
// mentioned, in scan order. Input is lowercased before matching.
func Detect(input string) []Topic {
	in := strings.ToLower(input)
	var found []Topic
	for _, t := range topicOrder {
		for _, kw := range detectKeywords[t] {
			if strings.Contains(in, kw) {
				found = append(found, t)
				break
			}
		}
	}
	return found
}

// DetectOther returns the first topic mentioned in input that is not cur.
func DetectOther(input string, cur Topic) (Topic, bool) {
	for _, t := range Detect(input) {
		if t != cur {
			return t, true
		}
	}
	return "", false
}
