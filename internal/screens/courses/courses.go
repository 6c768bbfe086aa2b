package courses

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screen"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/components"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/layout"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/theme"
)

const listLimit = 10

type coursesLoadedMsg struct {
	Heading string
	Courses []catalog.Course
	Err     error
}

// CoursesScreen browses the course library: popular, per-category and
// free-text search.
type CoursesScreen struct {
	svc        *assist.Service
	ldg        *ledger.Ledger
	heading    string
	courses    []catalog.Course
	categories []catalog.Category
	catCursor  int
	selected   int
	loaded     bool
	errMsg     string
	searching  bool
	search     components.TextInput
	recorded   map[string]bool
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates a new CoursesScreen.
func New(svc *assist.Service, ldg *ledger.Ledger) *CoursesScreen {
	search := components.NewTextInput("Search courses...", 60)
	search.Blur()
	return &CoursesScreen{
		svc:        svc,
		ldg:        ldg,
		categories: svc.Categories(),
		catCursor:  -1, // -1 means "popular"
		search:     search,
		recorded:   make(map[string]bool),
	}
}

func (s *CoursesScreen) Init() tea.Cmd {
	return s.loadPopular()
}

func (s *CoursesScreen) Title() string {
	return "Courses"
}

func (s *CoursesScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Category"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CoursesScreen) loadPopular() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		list, err := svc.PopularCourses(context.Background(), listLimit)
		return coursesLoadedMsg{Heading: "Popular courses", Courses: list, Err: err}
	}
}

func (s *CoursesScreen) loadCategory(cat catalog.Category) tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		list, err := svc.CoursesByCategory(context.Background(), cat.Slug, listLimit)
		return coursesLoadedMsg{Heading: cat.Name, Courses: list, Err: err}
	}
}

func (s *CoursesScreen) runSearch(query string) tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		list, err := svc.SearchCourses(context.Background(), query, listLimit)
		return coursesLoadedMsg{Heading: fmt.Sprintf("Results for %q", query), Courses: list, Err: err}
	}
}

func (s *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.heading = msg.Heading
		s.courses = msg.Courses
		s.selected = 0
		return s, nil

	case screen.PointsAwardedMsg:
		return s, nil

	case tea.KeyMsg:
		if s.searching {
			return s.updateSearch(msg)
		}
		return s.updateBrowse(msg)
	}
	return s, nil
}

func (s *CoursesScreen) updateSearch(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		query := strings.TrimSpace(s.search.Value())
		s.searching = false
		s.search.Blur()
		if query == "" {
			return s, s.loadPopular()
		}
		s.loaded = false
		return s, s.runSearch(query)
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return s, cmd
}

func (s *CoursesScreen) updateBrowse(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "/":
		s.searching = true
		s.search.Reset()
		return s, s.search.Focus()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.courses)-1 {
			s.selected++
		}
	case "left", "h":
		if s.catCursor > -1 {
			s.catCursor--
		}
		return s, s.loadCursor()
	case "right", "l":
		if s.catCursor < len(s.categories)-1 {
			s.catCursor++
		}
		return s, s.loadCursor()
	case "enter":
		if s.selected >= 0 && s.selected < len(s.courses) {
			course := s.courses[s.selected]
			if s.recorded[course.ID] {
				return s, nil
			}
			s.recorded[course.ID] = true
			return s, s.record(course)
		}
	}
	return s, nil
}

func (s *CoursesScreen) loadCursor() tea.Cmd {
	s.loaded = false
	if s.catCursor < 0 {
		return s.loadPopular()
	}
	return s.loadCategory(s.categories[s.catCursor])
}

func (s *CoursesScreen) record(course catalog.Course) tea.Cmd {
	ldg := s.ldg
	return func() tea.Msg {
		pts, err := ldg.Record(context.Background(), ledger.KindCourseSelected, map[string]any{
			ledger.DetailTitle: course.Title,
		})
		if err != nil || pts == 0 {
			return nil
		}
		return screen.PointsAwardedMsg{
			Points:  pts,
			Message: fmt.Sprintf("+%d pts · %s", pts, ledger.KindCourseSelected.EarnedMessage()),
		}
	}
}

func (s *CoursesScreen) View(width, height int) string {
	if s.searching {
		var b strings.Builder
		b.WriteString("\n")
		b.WriteString(theme.Title.Width(width).Render("Search courses"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.search.View()))
		return b.String()
	}

	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading courses...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.heading))
	b.WriteString("\n\n")

	if len(s.courses) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No courses found.")))
		b.WriteString("\n")
		return b.String()
	}

	for i, c := range s.courses {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%s", prefix, c.Title)
		if s.recorded[c.ID] {
			line += "  ✓"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
		meta := fmt.Sprintf("    %s · %s · ★ %.1f · %d students",
			c.Instructor, c.Category, c.Rating, c.Students)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta)))
		b.WriteString("\n")
	}

	return b.String()
}
