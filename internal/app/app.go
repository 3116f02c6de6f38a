package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/meera/lingua/internal/content"
	"github.com/meera/lingua/internal/gamification"
	"github.com/meera/lingua/internal/hints"
	"github.com/meera/lingua/internal/router"
	"github.com/meera/lingua/internal/screen"
	"github.com/meera/lingua/internal/screens/quiz"
	"github.com/meera/lingua/internal/store"
	"github.com/meera/lingua/internal/ui/layout"
)

// Options configures a practice run.
type Options struct {
	Deck      *content.Deck
	EventRepo store.EventRepo // may be nil when the store is unavailable
	Hints     *hints.Service  // may be nil without an LLM provider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	runID := uuid.New().String()

	gamify := gamification.NewService(opts.EventRepo, runID)

	quizScreen := quiz.New(quiz.Deps{
		Deck:      opts.Deck,
		EventRepo: opts.EventRepo,
		Gamify:    gamify,
		Hints:     opts.Hints,
		RunID:     runID,
	})

	return AppModel{
		router: router.New(quizScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points, streak := 0, 0
	if tp, ok := active.(screen.TotalsProvider); ok {
		points, streak = tp.Totals()
	}
	header := layout.RenderHeader(title, points, streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if custom := hp.KeyHints(); len(custom) > 0 {
			footerHints = append(custom, footerHints...)
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program for one practice run.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
