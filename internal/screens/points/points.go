package points

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screen"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/layout"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/theme"
)

type activityLoadedMsg struct {
	Total  int
	Events []ledger.Event
	Err    error
}

// PointsScreen shows the earned-points total and recent activity.
type PointsScreen struct {
	ldg    *ledger.Ledger
	limit  int
	total  int
	events []ledger.Event
	loaded bool
	errMsg string
}

var _ screen.Screen = (*PointsScreen)(nil)
var _ screen.KeyHintProvider = (*PointsScreen)(nil)

// New creates a new PointsScreen.
func New(ldg *ledger.Ledger, limit int) *PointsScreen {
	return &PointsScreen{ldg: ldg, limit: limit}
}

func (s *PointsScreen) Init() tea.Cmd {
	ldg, limit := s.ldg, s.limit
	return func() tea.Msg {
		ctx := context.Background()

		total, err := ldg.TotalPoints(ctx)
		if err != nil {
			return activityLoadedMsg{Err: err}
		}
		events, err := ldg.History(ctx, limit)
		if err != nil {
			return activityLoadedMsg{Err: err}
		}
		return activityLoadedMsg{Total: total, Events: events}
	}
}

func (s *PointsScreen) Title() string {
	return "Points & Activity"
}

func (s *PointsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PointsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.total = msg.Total
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case screen.PointsAwardedMsg:
		// Refresh so a just-recorded activity shows up.
		return s, s.Init()
	}
	return s, nil
}

func (s *PointsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading activity...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("✦ %d points", s.total)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderSchedule()))
	b.WriteString("\n\n")

	if len(s.events) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No activity yet. Start a skill journey or share a project!")))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Recent activity")))
	b.WriteString("\n\n")

	now := time.Now()
	for _, e := range s.events {
		when := relativeTime(e.Time, now)
		line := fmt.Sprintf("%s  %-18s  +%d pts", e.Kind.Icon(), e.Kind.Label(), e.Points())
		if title := e.Title(); title != "" {
			line += "  " + title
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)+
				"  "+lipgloss.NewStyle().Foreground(theme.TextDim).Render(when)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSchedule lists every activity kind with its reward.
func renderSchedule() string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("How to earn points:"))
	b.WriteString("\n")
	for _, k := range ledger.AllKinds() {
		b.WriteString(fmt.Sprintf("%s  %-18s  +%d pts\n", k.Icon(), k.Label(), k.Points()))
	}
	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

// relativeTime renders an event age the way a feed would.
func relativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
