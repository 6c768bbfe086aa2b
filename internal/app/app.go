package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/config"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/identity"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/router"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screen"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screens/home"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/suggest"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/layout"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/theme"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/uploads"
)

// Options carries the services the TUI depends on.
type Options struct {
	Assist   *assist.Service
	Ranker   *suggest.Ranker
	Ledger   *ledger.Ledger
	Identity *identity.Manager
	Uploads  *uploads.Store
	Config   *config.Config
}

type totalLoadedMsg struct {
	Total int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
	total  int
	status string
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Assist:   opts.Assist,
		Ranker:   opts.Ranker,
		Ledger:   opts.Ledger,
		Identity: opts.Identity,
		Uploads:  opts.Uploads,
		Config:   opts.Config,
	})
	return AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.loadTotal()
}

func (m AppModel) loadTotal() tea.Cmd {
	ld := m.opts.Ledger
	return func() tea.Msg {
		total, err := ld.TotalPoints(context.Background())
		if err != nil {
			return totalLoadedMsg{}
		}
		return totalLoadedMsg{Total: total}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case totalLoadedMsg:
		m.total = msg.Total
		return m, nil

	case screen.PointsAwardedMsg:
		m.total += msg.Points
		m.status = msg.Message
		cmd := m.router.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	user := ""
	if u, ok := m.opts.Identity.Current(); ok {
		user = u.Email
	}
	header := layout.RenderHeader(title, m.total, user, m.width)

	var footerHints []layout.KeyHint
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
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
	if m.status != "" {
		notice := lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(m.status)
		content = notice + "\n" + content
	}
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
