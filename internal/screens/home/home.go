package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/config"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/identity"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/router"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screen"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screens/courses"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screens/feedbackform"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screens/journey"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screens/points"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/suggest"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/components"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/theme"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/uploads"
)

// Deps carries the services home and its child screens need.
type Deps struct {
	Assist   *assist.Service
	Ranker   *suggest.Ranker
	Ledger   *ledger.Ledger
	Identity *identity.Manager
	Uploads  *uploads.Store
	Config   *config.Config
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SKILL JOURNEY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: journey.New(deps.Assist, deps.Ranker, deps.Ledger, deps.Config.SuggestLimit),
				}
			}
		}},
		{Label: "PROJECT FEEDBACK", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: feedbackform.New(deps.Assist, deps.Ledger, deps.Identity, deps.Uploads),
				}
			}
		}},
		{Label: "BROWSE COURSES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: courses.New(deps.Assist, deps.Ledger),
				}
			}
		}},
		{Label: "POINTS & ACTIVITY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: points.New(deps.Ledger, deps.Config.HistoryDisplayLimit),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Width(width).Render("Launchpad"),
		theme.Subtitle.Width(width).Render("Your creative assistant for learning new skills"))

	if u, ok := h.deps.Identity.Current(); ok {
		sections = append(sections,
			theme.Subtitle.Width(width).Render(fmt.Sprintf("signed in as %s", u.Email)))
	} else {
		sections = append(sections,
			theme.Hint.Width(width).Align(lipgloss.Center).
				Render("browsing as guest — run 'launchpad login' to keep your points"))
	}

	menuBox := theme.Card.Render(h.menu.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menuBox))

	content := "\n" + strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Top, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
