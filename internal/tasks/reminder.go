package tasks

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Reminder is a parsed reminder date, normalized to midnight local time.
type Reminder struct {
	Date time.Time
}

var (
	dayPattern   = regexp.MustCompile(`(\d+)\s*days?`)
	weekPattern  = regexp.MustCompile(`(\d+)\s*weeks?`)
	monthPattern = regexp.MustCompile(`(\d+)\s*months?`)
)

// wordNumbers lets "in three days" work as well as "in 3 days".
var wordNumbers = map[string]string{
	"one": "1", "two": "2", "three": "3",
	"four": "4", "five": "5", "six": "6",
}

// ParseReminder extracts a reminder date from natural language, relative
// to now. Recognized forms: today, tomorrow, next week, next month, and
// "N days/weeks/months" with numeric or spelled-out N. Returns false when
// no time expression is found.
func ParseReminder(input string, now time.Time) (Reminder, bool) {
	in := strings.ToLower(input)
	for word, digit := range wordNumbers {
		in = strings.ReplaceAll(in, word, digit)
	}
	today := startOfDay(now)

	switch {
	case strings.Contains(in, "tomorrow"):
		return Reminder{Date: today.AddDate(0, 0, 1)}, true
	case strings.Contains(in, "today"):
		return Reminder{Date: today}, true
	case strings.Contains(in, "next week"):
		return Reminder{Date: today.AddDate(0, 0, 7)}, true
	case strings.Contains(in, "next month"):
		return Reminder{Date: today.AddDate(0, 1, 0)}, true
	}

	if m := dayPattern.FindStringSubmatch(in); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return Reminder{Date: today.AddDate(0, 0, days)}, true
		}
	}
	if m := weekPattern.FindStringSubmatch(in); m != nil {
		if weeks, err := strconv.Atoi(m[1]); err == nil {
			return Reminder{Date: today.AddDate(0, 0, weeks*7)}, true
		}
	}
	if m := monthPattern.FindStringSubmatch(in); m != nil {
		if months, err := strconv.Atoi(m[1]); err == nil {
			return Reminder{Date: today.AddDate(0, months, 0)}, true
		}
	}
	return Reminder{}, false
}
