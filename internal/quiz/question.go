// Package quiz implements the cybersecurity quiz game: a fixed question
// bank, random sampling of ten questions per round, and scoring with
// performance feedback.
package quiz

// Question is one quiz question, either true/false or multiple choice.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
	TrueFalse    bool
}

// Correct returns the text of the correct option.
func (q Question) Correct() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// multipleChoice builds a multiple-choice question.
func multipleChoice(text string, options []string, correct int, explanation string) Question {
	return Question{
		Text:         text,
		Options:      options,
		CorrectIndex: correct,
		Explanation:  explanation,
	}
}

// trueFalse builds a true/false question.
func trueFalse(text string, isTrue bool, explanation string) Question {
	correct := 1
	if isTrue {
		correct = 0
	}
	return Question{
		Text:         text,
		Options:      []string{"True", "False"},
		CorrectIndex: correct,
		Explanation:  explanation,
		TrueFalse:    true,
	}
}
