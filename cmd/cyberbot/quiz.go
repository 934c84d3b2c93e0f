package main

import (
	"fmt"
	"strings"

	"cyberbot/cmd/cyberbot/config"
	"cyberbot/cmd/cyberbot/ui"
	"cyberbot/internal/logging"
	"cyberbot/internal/quiz"

	tea "github.com/charmbracelet/bubbletea"
)

// quizStage tracks where the round is: answering a question, reading the
// feedback for it, or looking at the final score.
type quizStage int

const (
	stageAnswering quizStage = iota
	stageFeedback
	stageFinished
)

// quizModel is the bubbletea model for a quiz round.
type quizModel struct {
	styles  ui.Styles
	manager *quiz.Manager

	stage    quizStage
	cursor   int
	lastOK   bool
	quitting bool

	width int
}

func runQuiz() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	m := &quizModel{
		styles:  stylesForConfig(cfg),
		manager: quiz.NewManager(),
	}
	m.manager.Start()
	logging.Quiz("quiz round started (%d questions)", m.manager.TotalQuestions())

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func (m *quizModel) Init() tea.Cmd {
	return nil
}

func (m *quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}

		switch m.stage {
		case stageAnswering:
			return m.updateAnswering(msg)
		case stageFeedback:
			if msg.Type == tea.KeyEnter || msg.String() == " " {
				m.manager.Advance()
				m.cursor = 0
				if m.manager.Done() {
					m.stage = stageFinished
					logging.Quiz("quiz round finished: %d/%d (%.0f%%)",
						m.manager.Score(), m.manager.TotalQuestions(), m.manager.Percentage())
				} else {
					m.stage = stageAnswering
				}
			}
		case stageFinished:
			if msg.Type == tea.KeyEnter {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *quizModel) updateAnswering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.manager.Current()
	if !ok {
		m.stage = stageFinished
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter":
		m.lastOK = m.manager.SubmitAnswer(m.cursor)
		m.stage = stageFeedback
	default:
		// Number keys answer directly.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if n := int(s[0] - '1'); n < len(q.Options) {
				m.cursor = n
				m.lastOK = m.manager.SubmitAnswer(n)
				m.stage = stageFeedback
			}
		}
	}
	return m, nil
}

func (m *quizModel) View() string {
	if m.quitting && m.stage != stageFinished {
		return m.styles.Muted.Render("Quiz abandoned. Run 'cyberbot quiz' to try again!\n")
	}

	var b strings.Builder
	b.WriteString(m.styles.Badge.Render("CYBERSECURITY QUIZ"))
	b.WriteString("\n\n")

	switch m.stage {
	case stageFinished:
		b.WriteString(m.viewFinished())
	default:
		b.WriteString(m.viewQuestion())
	}
	return b.String()
}

func (m *quizModel) viewQuestion() string {
	q, ok := m.manager.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n",
		m.styles.Subtitle.Render(fmt.Sprintf("Question %d of %d  ·  Score %d",
			m.manager.QuestionNumber(), m.manager.TotalQuestions(), m.manager.Score())))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(q.Text))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if m.stage == stageFeedback {
			switch {
			case i == q.CorrectIndex:
				b.WriteString(m.styles.Success.Render("✓ " + line))
			case i == m.cursor && !m.lastOK:
				b.WriteString(m.styles.Error.Render("✗ " + line))
			default:
				b.WriteString(m.styles.Option.Render(line))
			}
		} else if i == m.cursor {
			b.WriteString(m.styles.Chosen.Render("> " + line))
		} else {
			b.WriteString(m.styles.Option.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.stage == stageFeedback {
		if m.lastOK {
			b.WriteString(m.styles.Success.Render("Correct!"))
		} else {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("Not quite. The answer is: %s", q.Correct())))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Body.Render(q.Explanation))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Footer.Render("enter next question · q quit"))
	} else {
		b.WriteString(m.styles.Footer.Render("↑/↓ or number keys select · enter submit · q quit"))
	}
	return b.String()
}

func (m *quizModel) viewFinished() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Quiz complete!"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s\n",
		m.styles.Body.Render(fmt.Sprintf("You scored %d out of %d (%.0f%%).",
			m.manager.Score(), m.manager.TotalQuestions(), m.manager.Percentage())))
	b.WriteString("\n")
	b.WriteString(m.styles.Info.Render(m.manager.Feedback()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render("enter exit"))
	return b.String()
}
