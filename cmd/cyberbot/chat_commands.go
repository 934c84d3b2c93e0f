package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cyberbot/internal/activity"
	"cyberbot/internal/logging"
	"cyberbot/internal/tasks"
	"cyberbot/internal/topics"
)

// Session commands the shell handles before the dialogue engine sees the
// input: exit, help menu, resets, tasks, activity log, and the reminder
// follow-up flow. Everything else falls through to Engine.Resolve.

var (
	addTaskPattern      = regexp.MustCompile(`(?i)^add task\s*-\s*(.+)$`)
	createTaskPattern   = regexp.MustCompile(`(?i)^(?:create|add) task to (.+)$`)
	completeTaskPattern = regexp.MustCompile(`(?i)^complete task (\d+)$`)
	deleteTaskPattern   = regexp.MustCompile(`(?i)^delete task (\d+)$`)
)

var exitWords = map[string]bool{"exit": true, "quit": true, "bye": true, "goodbye": true}

// dispatch routes one utterance. The second return value requests quit.
func (m *chatModel) dispatch(raw string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(raw))

	if exitWords[in] {
		m.log.RecordSystem("Ended the chat session")
		logging.Chat("session ended by user")
		return fmt.Sprintf("Goodbye, %s! Stay safe online, and come back any time you have a security question.", m.userName), true
	}

	// A pending reminder question owns the next turn.
	if m.pendingReminderID != "" {
		return m.handleReminderResponse(raw), false
	}

	switch in {
	case "help", "menu", "topics":
		// Opening the menu ends the current topic thread; the visited
		// history stays for bridge phrasing.
		m.state.Reset()
		m.log.RecordSystem("Viewed the help menu")
		return m.helpMenu(), false
	case "change topic":
		m.state.Reset()
		return "Sure! Which topic should we look at next? Type 'help' to see everything I can explain.", false
	case "clear history":
		m.state.ClearHistory()
		return "Done, I've cleared the list of topics we covered. Where should we start fresh?", false
	case "create task", "add task", "new task", "make task":
		return "To add a task, type: add task - <title>\nFor example: add task - Enable two-factor authentication", false
	}

	if mt := addTaskPattern.FindStringSubmatch(raw); mt != nil {
		return m.addTask(strings.TrimSpace(mt[1])), false
	}
	if mt := createTaskPattern.FindStringSubmatch(raw); mt != nil {
		return m.addTask(strings.TrimSpace(mt[1])), false
	}
	if mt := completeTaskPattern.FindStringSubmatch(in); mt != nil {
		return m.completeTask(mt[1]), false
	}
	if mt := deleteTaskPattern.FindStringSubmatch(in); mt != nil {
		return m.deleteTask(mt[1]), false
	}
	if strings.Contains(in, "show tasks") || strings.Contains(in, "list tasks") ||
		strings.Contains(in, "my tasks") || strings.Contains(in, "view tasks") {
		m.log.RecordSystem("Viewed the task list")
		return m.renderTasks(), false
	}

	// Topic keywords win over the loose activity-log and quiz matching,
	// so "login phishing" or "latest updates" reach the engine.
	if len(topics.Detect(in)) == 0 {
		if activity.IsShowMoreRequest(in) {
			return m.log.RenderAll(), false
		}
		if activity.IsLogRequest(in) {
			return m.log.RenderRecent(), false
		}
		if tasks.IsQuizRequest(in) && !tasks.ShouldAutoCreate(in) {
			m.log.RecordSystem("Asked about the quiz")
			return "The quiz runs as its own mode. Exit the chat and run 'cyberbot quiz' to answer ten questions and test your security knowledge!", false
		}
	}

	if tasks.ShouldAutoCreate(in) {
		return m.autoCreateTask(raw), false
	}

	return m.resolveWithEngine(raw), false
}

// resolveWithEngine hands the utterance to the dialogue engine and records
// topic activity when the conversation lands on a new topic.
func (m *chatModel) resolveWithEngine(raw string) string {
	before := m.state.CurrentTopic()
	resp := m.engine.Resolve(raw, m.state)
	after := m.state.CurrentTopic()

	if after != "" && after != before {
		m.log.RecordChat(after.Display())
	}
	logging.ChatDebug("resolved %q phase=%s topic=%s", raw, m.state.Phase(), after)
	return resp.Joined()
}

func (m *chatModel) helpMenu() string {
	var b strings.Builder
	b.WriteString(m.store.Help())
	b.WriteString("\n\nI can also:\n")
	b.WriteString("- manage tasks: 'add task - <title>', 'show tasks', 'complete task <n>', 'delete task <n>'\n")
	b.WriteString("- show what we've done: 'recent activity' or 'show more'\n")
	b.WriteString("- start over: 'change topic' or 'clear history'\n")
	b.WriteString("- quiz you: run 'cyberbot quiz' from your terminal")
	return b.String()
}

// addTask creates a task from an explicit command and opens the reminder
// question for it.
func (m *chatModel) addTask(title string) string {
	t := m.tasks.Add(tasks.NewTask(title, tasks.GenerateDescription(title), nil))
	m.pendingReminderID = t.ID
	m.log.RecordTask("added", t.Title, "")
	logging.Tasks("task added: %s", t.Title)
	return fmt.Sprintf("Task added: '%s'\n%s\n\nWould you like to set a reminder for this task?", t.Title, t.Description)
}

// autoCreateTask builds a task from an action-keyword utterance such as
// "remind me to backup my files tomorrow".
func (m *chatModel) autoCreateTask(raw string) string {
	t := m.tasks.Add(tasks.BuildFromInput(raw, m.now()))
	detail := ""
	if t.Reminder != nil {
		detail = t.ReminderLabel(m.now())
	}
	m.log.RecordTask("added", t.Title, detail)
	logging.Tasks("task auto-created: %s (%s)", t.Title, detail)

	if t.Reminder != nil {
		return fmt.Sprintf("Task added: '%s'\n%s\n%s", t.Title, t.Description, t.ReminderLabel(m.now()))
	}
	m.pendingReminderID = t.ID
	return fmt.Sprintf("Task added: '%s'\n%s\n\nWould you like to set a reminder for this task?", t.Title, t.Description)
}

// handleReminderResponse interprets the answer to "would you like a
// reminder?": a date sets it, an affirmation asks for the date, anything
// else leaves the task without one.
func (m *chatModel) handleReminderResponse(raw string) string {
	id := m.pendingReminderID
	t, ok := m.tasks.Get(id)
	if !ok {
		m.pendingReminderID = ""
		return "That task no longer exists. Type 'show tasks' to see your list."
	}

	if r, parsed := tasks.ParseReminder(raw, m.now()); parsed {
		m.pendingReminderID = ""
		if err := m.tasks.SetReminder(id, &r); err != nil {
			return "I couldn't save that reminder. Type 'show tasks' to check your list."
		}
		updated, _ := m.tasks.Get(id)
		m.log.RecordTask("reminder set", t.Title, updated.ReminderLabel(m.now()))
		logging.Tasks("reminder set for %s", t.Title)
		return fmt.Sprintf("Got it! %s for '%s'.", updated.ReminderLabel(m.now()), t.Title)
	}

	in := strings.ToLower(raw)
	if strings.Contains(in, "yes") || strings.Contains(in, "sure") ||
		strings.Contains(in, "ok") || strings.Contains(in, "remind") {
		return "When should I remind you? For example: 'tomorrow', 'in 3 days', or 'next week'."
	}

	m.pendingReminderID = ""
	return fmt.Sprintf("No problem, I've saved '%s' without a reminder.", t.Title)
}

func (m *chatModel) completeTask(numStr string) string {
	t, msg := m.taskByNumber(numStr)
	if msg != "" {
		return msg
	}
	if err := m.tasks.Complete(t.ID); err != nil {
		return "I couldn't update that task. Type 'show tasks' to check your list."
	}
	m.log.RecordTask("completed", t.Title, "")
	logging.Tasks("task completed: %s", t.Title)
	return fmt.Sprintf("Nice work! Marked '%s' as completed.", t.Title)
}

func (m *chatModel) deleteTask(numStr string) string {
	t, msg := m.taskByNumber(numStr)
	if msg != "" {
		return msg
	}
	if err := m.tasks.Delete(t.ID); err != nil {
		return "I couldn't delete that task. Type 'show tasks' to check your list."
	}
	m.log.RecordTask("deleted", t.Title, "")
	logging.Tasks("task deleted: %s", t.Title)
	return fmt.Sprintf("Deleted '%s' from your list.", t.Title)
}

// taskByNumber resolves a 1-based list position to a task; the string is
// a user-facing error when resolution fails.
func (m *chatModel) taskByNumber(numStr string) (tasks.Task, string) {
	n, err := strconv.Atoi(numStr)
	if err != nil || n < 1 || n > m.tasks.Len() {
		if m.tasks.Len() == 0 {
			return tasks.Task{}, "You don't have any tasks yet. Try: add task - <title>"
		}
		return tasks.Task{}, fmt.Sprintf("Please pick a task between 1 and %d. Type 'show tasks' to see them.", m.tasks.Len())
	}
	return m.tasks.All()[n-1], ""
}

func (m *chatModel) renderTasks() string {
	all := m.tasks.All()
	if len(all) == 0 {
		return "You don't have any tasks yet. Add one with: add task - <title>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your cybersecurity tasks (%d):\n", len(all))
	for i, t := range all {
		status := "[ ]"
		if t.Done {
			status = "[x]"
		}
		fmt.Fprintf(&b, "%d. %s %s - %s (%s)\n", i+1, status, t.Title, t.Description, t.ReminderLabel(m.now()))
	}
	b.WriteString("\nUse 'complete task <n>' or 'delete task <n>' to update the list.")
	return b.String()
}
