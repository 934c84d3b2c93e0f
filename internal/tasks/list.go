package tasks

import "fmt"

// List is the in-memory task list for one session.
type List struct {
	items []Task
}

// NewList returns an empty task list.
func NewList() *List {
	return &List{}
}

// Add appends a task and returns it.
func (l *List) Add(t Task) Task {
	l.items = append(l.items, t)
	return t
}

// All returns the tasks in creation order.
func (l *List) All() []Task {
	out := make([]Task, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.items) }

// Get returns the task with the given ID.
func (l *List) Get(id string) (Task, bool) {
	for _, t := range l.items {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// SetReminder attaches a reminder date to the task with the given ID.
func (l *List) SetReminder(id string, when *Reminder) error {
	for i := range l.items {
		if l.items[i].ID == id {
			if when == nil {
				l.items[i].Reminder = nil
			} else {
				d := when.Date
				l.items[i].Reminder = &d
			}
			return nil
		}
	}
	return fmt.Errorf("no task with id %s", id)
}

// Complete marks the task with the given ID as done.
func (l *List) Complete(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Done = true
			return nil
		}
	}
	return fmt.Errorf("no task with id %s", id)
}

// Delete removes the task with the given ID.
func (l *List) Delete(id string) error {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no task with id %s", id)
}
