package tasks

import (
	"strings"
	"time"
)

// Action-based task creation: an input that combines an action keyword
// with a security topic keyword becomes a task without the explicit
// "add task -" syntax, e.g. "remind me to backup my files tomorrow".

var actionKeywords = []string{"remind", "task", "create", "set", "schedule", "add"}

var topicKeywords = []string{
	"2fa", "two-factor", "backup", "password", "passwords", "malware",
	"updates", "antivirus", "virus", "security", "phishing", "wifi", "network",
}

var quizKeywords = []string{"quiz", "game", "test"}

// titles maps the first matched topic keyword to a task title.
var titles = map[string]string{
	"2fa":        "Enable two-factor authentication",
	"two-factor": "Enable two-factor authentication",
	"backup":     "Backup important files",
	"password":   "Review account passwords",
	"passwords":  "Review account passwords",
	"malware":    "Run a malware scan",
	"updates":    "Install software updates",
	"antivirus":  "Update antivirus software",
	"virus":      "Run an antivirus scan",
	"security":   "Review security settings",
	"phishing":   "Review email security settings",
	"wifi":       "Secure wireless network settings",
	"network":    "Secure wireless network settings",
}

// IsQuizRequest reports whether the input asks for the quiz game.
func IsQuizRequest(input string) bool {
	return containsAny(strings.ToLower(input), quizKeywords)
}

// ShouldAutoCreate reports whether input combines an action keyword with
// a security topic keyword and should become a task automatically.
func ShouldAutoCreate(input string) bool {
	in := strings.ToLower(input)
	return containsAny(in, actionKeywords) && containsAny(in, topicKeywords)
}

// BuildFromInput constructs a task from an action-keyword utterance:
// title from the first matched topic keyword, a generated description,
// and any inline reminder date.
func BuildFromInput(input string, now time.Time) Task {
	in := strings.ToLower(input)
	title := "Complete a cybersecurity task"
	for _, kw := range topicKeywords {
		if strings.Contains(in, kw) {
			title = titles[kw]
			break
		}
	}
	var reminder *time.Time
	if r, ok := ParseReminder(input, now); ok {
		d := r.Date
		reminder = &d
	}
	return NewTask(title, GenerateDescription(title), reminder)
}

// GenerateDescription produces a cybersecurity-focused description from
// keywords in the task title.
func GenerateDescription(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "password"):
		return "Review and strengthen passwords to ensure account security."
	case strings.Contains(t, "update") || strings.Contains(t, "software"):
		return "Install the latest security updates and software patches."
	case strings.Contains(t, "backup"):
		return "Create or verify backups of important data and files."
	case strings.Contains(t, "2fa") || strings.Contains(t, "authentication") || strings.Contains(t, "two factor") || strings.Contains(t, "two-factor"):
		return "Enable two-factor authentication for enhanced account security."
	case strings.Contains(t, "antivirus") || strings.Contains(t, "virus") || strings.Contains(t, "malware"):
		return "Update and run antivirus software to protect against malware."
	case strings.Contains(t, "email") || strings.Contains(t, "phishing"):
		return "Review email security settings and learn to identify phishing attempts."
	case strings.Contains(t, "wifi") || strings.Contains(t, "network"):
		return "Secure wireless network connections and avoid public WiFi risks."
	case strings.Contains(t, "privacy") || strings.Contains(t, "setting"):
		return "Check and update privacy settings to protect personal information."
	default:
		return "Complete the cybersecurity task: " + strings.ToLower(title) + "."
	}
}

func containsAny(in string, words []string) bool {
	for _, w := range words {
		if strings.Contains(in, w) {
			return true
		}
	}
	return false
}
