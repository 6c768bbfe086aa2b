package journey

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screen"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/suggest"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/components"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/layout"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/theme"
)

type mode int

const (
	modeInput mode = iota
	modeLoading
	modeResult
)

type journeyDoneMsg struct {
	Interest string
	Rec      catalog.Recommendation
	Found    bool
	Err      error
}

// JourneyScreen walks the user from an interest to a recommendation.
type JourneyScreen struct {
	svc          *assist.Service
	ranker       *suggest.Ranker
	ldg          *ledger.Ledger
	suggestLimit int

	mode        mode
	spin        spinner.Model
	input       components.TextInput
	suggestions []string
	cursor      int
	hint        string

	interest       string
	rec            catalog.Recommendation
	found          bool
	errMsg         string
	courseRecorded bool
	exRecorded     bool
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)

// New creates a new JourneyScreen.
func New(svc *assist.Service, ranker *suggest.Ranker, ldg *ledger.Ledger, suggestLimit int) *JourneyScreen {
	input := components.NewTextInput("e.g. watercolor, pottery, animation...", 60)
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &JourneyScreen{
		svc:          svc,
		ranker:       ranker,
		ldg:          ldg,
		suggestLimit: suggestLimit,
		input:        input,
		spin:         spin,
	}
}

func (s *JourneyScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *JourneyScreen) Title() string {
	return "Skill Journey"
}

func (s *JourneyScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeResult:
		if s.found {
			return []layout.KeyHint{
				{Key: "C", Description: "Start course"},
				{Key: "E", Description: "Do exercise"},
				{Key: "N", Description: "New search"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{
			{Key: "N", Description: "New search"},
			{Key: "Esc", Description: "Back"},
		}
	case modeLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Suggestions"},
			{Key: "Tab", Description: "Fill"},
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journeyDoneMsg:
		if s.mode != modeLoading {
			return s, nil
		}
		if msg.Err != nil {
			s.mode = modeInput
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.mode = modeResult
		s.interest = msg.Interest
		s.rec = msg.Rec
		s.found = msg.Found
		return s, nil

	case screen.PointsAwardedMsg:
		return s, nil

	case spinner.TickMsg:
		if s.mode != modeLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch s.mode {
		case modeInput:
			return s.updateInput(msg)
		case modeResult:
			return s.updateResult(msg)
		}
	}
	return s, nil
}

func (s *JourneyScreen) updateInput(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down":
		if s.cursor < len(s.suggestions)-1 {
			s.cursor++
		}
		return s, nil
	case "tab":
		if s.cursor >= 0 && s.cursor < len(s.suggestions) {
			s.input.Model.SetValue(s.suggestions[s.cursor])
			s.input.Model.CursorEnd()
			s.refreshSuggestions()
		}
		return s, nil
	case "enter":
		value := s.input.Value()
		if ok, hint := s.svc.ValidateInterest(value); !ok {
			s.hint = hint
			s.input.Submit(false)
			return s, nil
		}
		s.hint = ""
		s.errMsg = ""
		s.input.Submit(true)
		s.mode = modeLoading
		return s, tea.Batch(s.resolve(value), s.spin.Tick)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refreshSuggestions()
	return s, cmd
}

// refreshSuggestions recomputes the live suggestion list. Queries
// shorter than two characters are too noisy to rank.
func (s *JourneyScreen) refreshSuggestions() {
	query := strings.TrimSpace(s.input.Value())
	if len([]rune(query)) < 2 {
		s.suggestions = nil
		s.cursor = 0
		return
	}
	s.suggestions = s.ranker.Suggest(query, s.suggestLimit)
	if s.cursor >= len(s.suggestions) {
		s.cursor = 0
	}
}

func (s *JourneyScreen) resolve(interest string) tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		rec, found, err := svc.SkillJourney(context.Background(), interest)
		return journeyDoneMsg{Interest: interest, Rec: rec, Found: found, Err: err}
	}
}

func (s *JourneyScreen) updateResult(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n":
		s.mode = modeInput
		s.input.Reset()
		s.suggestions = nil
		s.cursor = 0
		s.courseRecorded = false
		s.exRecorded = false
		return s, s.input.Focus()
	case "c":
		if s.found && !s.courseRecorded {
			s.courseRecorded = true
			return s, s.record(ledger.KindCourseSelected, s.rec.Course)
		}
	case "e":
		if s.found && !s.exRecorded {
			s.exRecorded = true
			return s, s.record(ledger.KindExerciseSelected, s.rec.Exercise)
		}
	}
	return s, nil
}

func (s *JourneyScreen) record(kind ledger.Kind, title string) tea.Cmd {
	ldg := s.ldg
	return func() tea.Msg {
		pts, err := ldg.Record(context.Background(), kind, map[string]any{
			ledger.DetailTitle: title,
		})
		if err != nil || pts == 0 {
			return nil
		}
		return screen.PointsAwardedMsg{
			Points:  pts,
			Message: fmt.Sprintf("+%d pts · %s", pts, kind.EarnedMessage()),
		}
	}
}

func (s *JourneyScreen) View(width, height int) string {
	switch s.mode {
	case modeLoading:
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.spin.View()+lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(" Finding the right course for you..."))
	case modeResult:
		return s.viewResult(width)
	default:
		return s.viewInput(width)
	}
}

func (s *JourneyScreen) viewInput(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("What would you like to learn?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if s.hint != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.hint)))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
		b.WriteString("\n")
	}

	for i, sug := range s.suggestions {
		line := "  " + sug
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.cursor {
			line = "▸ " + sug
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *JourneyScreen) viewResult(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if !s.found {
		b.WriteString(theme.Title.Width(width).Render("No match yet"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(fmt.Sprintf("I don't have a path for %q yet.", s.interest))))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Try something like illustration, ceramics or photography.")))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Your %s journey", s.interest)))
	b.WriteString("\n\n")

	card := theme.Card.Render(
		theme.Body.Render("Course    ") + theme.Selected.Render(s.rec.Course) + "\n" +
			theme.Body.Render("Exercise  ") + theme.Body.Render(s.rec.Exercise))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if s.courseRecorded {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Positive.Render("✓ Course selected")))
		b.WriteString("\n")
	}
	if s.exRecorded {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Positive.Render("✓ Exercise completed")))
		b.WriteString("\n")
	}

	return b.String()
}
