// Package router keeps the navigation stack for the app's screens. Screens
// never hold references to each other; they navigate by emitting the
// commands below and the router rearranges the stack.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/meera/lingua/internal/screen"
)

type pushMsg struct{ s screen.Screen }

type popMsg struct{}

// Push returns a command that stacks s on top of the active screen.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return pushMsg{s: s} }
}

// Pop returns a command that dismisses the active screen, revealing the one
// below it. Popping the last screen quits the program.
func Pop() tea.Cmd {
	return func() tea.Msg { return popMsg{} }
}

// ResumedMsg is delivered to a screen when a screen above it is popped and
// it becomes active again.
type ResumedMsg struct{}

// Router owns the screen stack. The bottom screen is the app's home; the
// top screen is the one receiving input.
type Router struct {
	stack []screen.Screen
}

// New creates a router showing home.
func New(home screen.Screen) *Router {
	return &Router{stack: []screen.Screen{home}}
}

// Active returns the screen currently receiving input, or nil when the
// stack is empty.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Update routes msg. Navigation messages rearrange the stack; everything
// else goes to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pushMsg:
		r.stack = append(r.stack, msg.s)
		return msg.s.Init()

	case popMsg:
		if len(r.stack) <= 1 {
			return tea.Quit
		}
		r.stack = r.stack[:len(r.stack)-1]
		return r.deliver(ResumedMsg{})
	}

	return r.deliver(msg)
}

// View renders the active screen into the given content area.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

func (r *Router) deliver(msg tea.Msg) tea.Cmd {
	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}
