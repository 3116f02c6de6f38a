package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/lingua/internal/ui/theme"
)

// Choice is a keyboard-driven option selector. In multi-select mode the
// space bar toggles options and the cursor moves independently of the
// toggled set.
type Choice struct {
	Options     []string
	Cursor      int
	MultiSelect bool
	toggled     map[int]bool
}

// NewChoice creates a single-select Choice over the given options.
func NewChoice(options []string) Choice {
	return Choice{Options: options}
}

// NewMultiChoice creates a multi-select Choice over the given options.
func NewMultiChoice(options []string) Choice {
	return Choice{Options: options, MultiSelect: true, toggled: make(map[int]bool)}
}

// Update handles cursor movement, number shortcuts, and toggling.
// Enter is deliberately left to the caller.
func (c Choice) Update(msg tea.Msg) Choice {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space", " ":
		if c.MultiSelect {
			c.toggled[c.Cursor] = !c.toggled[c.Cursor]
		}
	default:
		// Number shortcuts jump the cursor (and toggle in multi mode).
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(c.Options) {
				c.Cursor = idx
				if c.MultiSelect {
					c.toggled[idx] = !c.toggled[idx]
				}
			}
		}
	}
	return c
}

// Selected returns the option under the cursor.
func (c Choice) Selected() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Options) {
		return ""
	}
	return c.Options[c.Cursor]
}

// Toggled returns the toggled options in display order (multi mode).
func (c Choice) Toggled() []string {
	var out []string
	for i, opt := range c.Options {
		if c.toggled[i] {
			out = append(out, opt)
		}
	}
	return out
}

// View renders the option list.
func (c Choice) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "> "
		}

		mark := ""
		if c.MultiSelect {
			if c.toggled[i] {
				mark = "[x] "
			} else {
				mark = "[ ] "
			}
		}

		line := fmt.Sprintf("%s%d) %s%s", prefix, i+1, mark, opt)

		switch {
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case c.MultiSelect && c.toggled[i]:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		if i < len(c.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
