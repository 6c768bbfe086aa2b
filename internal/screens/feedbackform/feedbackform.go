package feedbackform

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/feedback"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/identity"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/screen"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/components"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/layout"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ui/theme"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/uploads"
)

const (
	focusDescription = iota
	focusImage
	focusSend
)

type mode int

const (
	modeForm mode = iota
	modeLoading
	modeResult
)

type feedbackDoneMsg struct {
	Response feedback.Response
	Uploaded string
	Points   int
	Err      error
}

// FeedbackScreen collects a project description and optional image and
// shows the assistant's critique.
type FeedbackScreen struct {
	svc      *assist.Service
	ldg      *ledger.Ledger
	ident    *identity.Manager
	files    *uploads.Store
	mode     mode
	spin     spinner.Model
	focus    int
	desc     components.TextInput
	image    components.TextInput
	send     components.Button
	hint     string
	errMsg   string
	response feedback.Response
	uploaded string
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)

// New creates a new FeedbackScreen.
func New(svc *assist.Service, ldg *ledger.Ledger, ident *identity.Manager, files *uploads.Store) *FeedbackScreen {
	s := &FeedbackScreen{
		svc:   svc,
		ldg:   ldg,
		ident: ident,
		files: files,
		desc:  components.NewTextInput("Describe your project...", 200),
		image: components.NewTextInput("Path to an image (optional)", 120),
	}
	s.image.Blur()
	s.send = components.NewButton("Get Feedback", false, s.submit)
	s.spin = spinner.New()
	s.spin.Spinner = spinner.Dot
	s.spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return s
}

func (s *FeedbackScreen) Init() tea.Cmd {
	return s.desc.Init()
}

func (s *FeedbackScreen) Title() string {
	return "Project Feedback"
}

func (s *FeedbackScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeResult:
		return []layout.KeyHint{
			{Key: "N", Description: "Another project"},
			{Key: "Esc", Description: "Back"},
		}
	case modeLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.mode != modeLoading {
			return s, nil
		}
		if msg.Err != nil {
			s.mode = modeForm
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.mode = modeResult
		s.response = msg.Response
		s.uploaded = msg.Uploaded
		if msg.Points > 0 {
			pts := msg.Points
			return s, func() tea.Msg {
				return screen.PointsAwardedMsg{
					Points:  pts,
					Message: fmt.Sprintf("+%d pts · %s", pts, ledger.KindFeedbackReceived.EarnedMessage()),
				}
			}
		}
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
		case modeForm:
			return s.updateForm(msg)
		case modeResult:
			if msg.String() == "n" {
				s.reset()
				return s, s.desc.Focus()
			}
		}
	}
	return s, nil
}

func (s *FeedbackScreen) reset() {
	s.mode = modeForm
	s.desc.Reset()
	s.image.Reset()
	s.image.Blur()
	s.focus = focusDescription
	s.send.Active = false
	s.hint = ""
	s.errMsg = ""
	s.uploaded = ""
}

func (s *FeedbackScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		if msg.String() == "tab" {
			s.focus = (s.focus + 1) % 3
		} else {
			s.focus = (s.focus + 2) % 3
		}
		s.desc.Blur()
		s.image.Blur()
		s.send.Active = false
		switch s.focus {
		case focusDescription:
			return s, s.desc.Focus()
		case focusImage:
			return s, s.image.Focus()
		case focusSend:
			s.send.Active = true
		}
		return s, nil
	case "enter":
		return s, s.submit()
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusDescription:
		s.desc, cmd = s.desc.Update(msg)
	case focusImage:
		s.image, cmd = s.image.Update(msg)
	}
	return s, cmd
}

func (s *FeedbackScreen) submit() tea.Cmd {
	desc := s.desc.Value()
	imagePath := strings.TrimSpace(s.image.Value())

	if ok, hint := s.svc.ValidateFeedbackInput(desc, imagePath != ""); !ok {
		s.hint = hint
		s.desc.Submit(false)
		return nil
	}
	s.hint = ""
	s.errMsg = ""
	s.mode = modeLoading

	var fileName string
	if imagePath != "" {
		fileName = filepath.Base(imagePath)
	}

	svc, ldg, ident, files := s.svc, s.ldg, s.ident, s.files
	return tea.Batch(s.spin.Tick, func() tea.Msg {
		ctx := context.Background()

		userID := "guest"
		if id, ok := ident.CurrentUserID(); ok {
			userID = id
		}

		var uploaded string
		var totalPts int
		if imagePath != "" {
			stored, err := files.SaveFile(userID, imagePath)
			if err != nil {
				return feedbackDoneMsg{Err: fmt.Errorf("upload image: %w", err)}
			}
			uploaded = stored
			// Credit only follows a successful upload.
			pts, err := ldg.Record(ctx, ledger.KindProjectUpload, map[string]any{
				ledger.DetailFilename: fileName,
			})
			if err != nil {
				return feedbackDoneMsg{Err: err}
			}
			totalPts += pts
		}

		resp, err := svc.ProjectFeedback(ctx, assist.FeedbackInput{
			Description: desc,
			HasImage:    imagePath != "",
			FileName:    fileName,
		})
		if err != nil {
			return feedbackDoneMsg{Err: err}
		}

		pts, err := ldg.Record(ctx, ledger.KindFeedbackReceived, map[string]any{
			ledger.DetailFeedback: resp.Feedback,
			ledger.DetailRating:   string(resp.Kind),
		})
		if err != nil {
			return feedbackDoneMsg{Err: err}
		}
		totalPts += pts

		return feedbackDoneMsg{Response: resp, Uploaded: uploaded, Points: totalPts}
	})
}

func (s *FeedbackScreen) View(width, height int) string {
	switch s.mode {
	case modeLoading:
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.spin.View()+lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(" Looking at your project..."))
	case modeResult:
		return s.viewResult(width)
	default:
		return s.viewForm(width)
	}
}

func (s *FeedbackScreen) viewForm(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Share your project"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Project  ")+s.desc.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Image    ")+s.image.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.send.View()))
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

	return b.String()
}

func (s *FeedbackScreen) viewResult(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	badge := theme.Suggestion.Render("suggestion")
	if s.response.Kind == feedback.KindPositive {
		badge = theme.Positive.Render("positive")
	}

	b.WriteString(theme.Title.Width(width).Render("Feedback"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, badge))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 70)).Render(theme.Body.Render(s.response.Feedback))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if s.uploaded != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("saved to "+s.uploaded)))
		b.WriteString("\n")
	}

	return b.String()
}
