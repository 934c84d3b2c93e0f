package main

import (
	"fmt"
	"strings"
	"time"

	"cyberbot/cmd/cyberbot/config"
	"cyberbot/cmd/cyberbot/ui"
	"cyberbot/internal/activity"
	"cyberbot/internal/dialogue"
	"cyberbot/internal/logging"
	"cyberbot/internal/tasks"
	"cyberbot/internal/topics"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// thinkingDelay paces bot replies so the conversation reads naturally.
const thinkingDelay = 400 * time.Millisecond

// botReplyMsg delivers the bot's reply after the thinking delay.
type botReplyMsg struct {
	text string
}

// chatModel is the bubbletea model for the interactive chat session.
type chatModel struct {
	styles   ui.Styles
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	cfg    config.Config
	store  *topics.Store
	engine *dialogue.Engine
	state  *dialogue.State
	tasks  *tasks.List
	log    *activity.Log

	userName     string
	awaitingName bool

	// now is the session clock; tests pin it.
	now func() time.Time

	// pendingReminderID is the task awaiting a reminder decision; while
	// set, input is routed to the reminder flow instead of the engine.
	pendingReminderID string

	messages []string
	loading  bool
	quitting bool

	width  int
	height int
	ready  bool
}

func runInteractiveChat() error {
	store, err := topics.Load()
	if err != nil {
		return fmt.Errorf("failed to load topic content: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Boot("config load failed, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	m := newChatModel(store, cfg)

	// The closest thing a terminal has to the original voice greeting.
	fmt.Print("\a")

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newChatModel(store *topics.Store, cfg config.Config) *chatModel {
	styles := stylesForConfig(cfg)

	ti := textinput.New()
	ti.Placeholder = "What would you like to know about cybersecurity?"
	ti.CharLimit = 500
	ti.Width = 70
	ti.PromptStyle = styles.Prompt
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(78),
	)
	if err != nil {
		// Plain text fallback; rendering is cosmetic.
		renderer = nil
	}

	m := &chatModel{
		styles:       styles,
		input:        ti,
		spinner:      sp,
		renderer:     renderer,
		cfg:          cfg,
		store:        store,
		state:        dialogue.NewState(),
		tasks:        tasks.NewList(),
		log:          activity.NewLog(),
		userName:     cfg.UserName,
		awaitingName: cfg.UserName == "",
		now:          time.Now,
	}
	m.log.SetClock(func() time.Time { return m.now() })
	if m.awaitingName {
		m.input.Placeholder = "Type your name to get started"
	} else {
		m.engine = dialogue.NewEngine(store, m.userName)
	}

	m.messages = append(m.messages, m.welcomeBlock())
	logging.Boot("chat session started (named=%v)", !m.awaitingName)
	return m
}

func stylesForConfig(cfg config.Config) ui.Styles {
	switch cfg.Theme {
	case "light":
		return ui.NewStyles(ui.LightTheme())
	case "dark":
		return ui.NewStyles(ui.DarkTheme())
	default:
		return ui.DefaultStyles()
	}
}

func (m *chatModel) welcomeBlock() string {
	var b strings.Builder
	b.WriteString(ui.Logo(m.styles))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Cybersecurity Awareness Bot"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Your friendly guide to staying safe online"))
	b.WriteString("\n\n")
	if m.awaitingName {
		b.WriteString(m.styles.Body.Render("Hello! I'm here to help you learn about cybersecurity.\nBefore we begin, what's your name?"))
	} else {
		b.WriteString(m.styles.Body.Render(fmt.Sprintf(
			"Welcome back, %s! Ask me about passwords, phishing, malware and more.\nType 'help' to see every topic, or 'exit' to leave.", m.userName)))
	}
	return b.String()
}

func (m *chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.input.Width = msg.Width - 6
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			if cmd := m.handleSubmit(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case botReplyMsg:
		m.loading = false
		m.messages = append(m.messages, m.renderBot(msg.text))
		m.refreshViewport()
		m.refreshPlaceholder()
		if m.quitting {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleSubmit consumes the input line and schedules the bot's reply.
func (m *chatModel) handleSubmit() tea.Cmd {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return nil
	}
	m.input.Reset()
	m.messages = append(m.messages, m.renderUser(raw))

	var reply string
	if m.awaitingName {
		reply = m.captureName(raw)
	} else {
		var quit bool
		reply, quit = m.dispatch(raw)
		if quit {
			m.quitting = true
		}
	}

	m.refreshViewport()
	m.loading = true
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(thinkingDelay, func(time.Time) tea.Msg {
			return botReplyMsg{text: reply}
		}),
	)
}

// captureName handles the first-run name prompt and persists the name.
func (m *chatModel) captureName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "I didn't catch that. What should I call you?"
	}
	m.userName = name
	m.awaitingName = false
	m.engine = dialogue.NewEngine(m.store, name)

	m.cfg.UserName = name
	if err := config.Save(m.cfg); err != nil {
		logging.Boot("could not persist user name: %v", err)
	}

	m.log.RecordSystem("Started a chat session")
	logging.Chat("user introduced as %q", name)
	return fmt.Sprintf(
		"Nice to meet you, %s! I can explain passwords, phishing, malware, safe browsing and more.\n\nType 'help' to see every topic, or just ask me something.", name)
}

func (m *chatModel) renderUser(text string) string {
	return m.styles.Prompt.Render("You: ") + m.styles.UserInput.Render(text)
}

func (m *chatModel) renderBot(text string) string {
	body := text
	if m.renderer != nil {
		if out, err := m.renderer.Render(text); err == nil {
			body = strings.Trim(out, "\n")
		}
	}
	return m.styles.BotResponse.Render(body)
}

func (m *chatModel) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.messages, "\n\n"))
	m.viewport.GotoBottom()
}

// refreshPlaceholder keys the input hint off the conversation phase.
func (m *chatModel) refreshPlaceholder() {
	if m.pendingReminderID != "" {
		m.input.Placeholder = "yes / no, or a date like 'tomorrow'"
		return
	}
	switch m.state.Phase() {
	case dialogue.PhaseAwaitingFollowUp, dialogue.PhaseAwaitingPostFollowUp:
		m.input.Placeholder = ""
	case dialogue.PhaseTopicActive:
		m.input.Placeholder = fmt.Sprintf("Ask me more about %s...", m.state.CurrentTopic().Display())
	default:
		m.input.Placeholder = "What would you like to know about cybersecurity?"
	}
}

func (m *chatModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.styles.Header.Width(m.width).Render("CYBERBOT  Cybersecurity Awareness Chat")

	inputLine := m.styles.Prompt.Render("> ") + m.input.View()
	if m.loading {
		inputLine = m.spinner.View() + " " + m.styles.Muted.Render("thinking...")
	}

	footer := m.styles.Footer.Render("enter send · esc quit · type 'help' for topics")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		header,
		m.viewport.View(),
		m.styles.RenderDivider(m.width),
		inputLine,
		footer,
	)
}
