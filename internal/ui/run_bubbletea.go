package ui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/nils-degroot/shorty/internal/controller"
	core "github.com/nils-degroot/shorty/internal/core"
	"github.com/nils-degroot/shorty/internal/dialog"
	"github.com/nils-degroot/shorty/internal/util"
	verinfo "github.com/nils-degroot/shorty/internal/version"
)

// surface is the screen state the controller mutates. It lives behind a
// pointer so that copies of model made by bubbletea share it.
type surface struct {
	input    textinput.Model
	warnings map[core.Warning]bool
	dialogs  dialog.Presenter
}

func (s *surface) InputValue() string               { return s.input.Value() }
func (s *surface) SetWarningVisible(w core.Warning) { s.warnings[w] = true }
func (s *surface) ClearWarnings()                   { clear(s.warnings) }
func (s *surface) OpenSuccessDialog(shortURL string) {
	s.dialogs.ShowSuccess(shortURL)
	s.input.Blur()
}
func (s *surface) OpenErrorDialog() {
	s.dialogs.ShowError()
	s.input.Blur()
}
func (s *surface) CloseSuccessDialog() {
	s.dialogs.CloseSuccess()
	s.refocus()
}
func (s *surface) CloseErrorDialog() {
	s.dialogs.CloseError()
	s.refocus()
}

func (s *surface) refocus() {
	if !s.dialogs.AnyOpen() {
		s.input.Focus()
	}
}

type model struct {
	ctx  context.Context
	s    *surface
	ctrl *controller.Controller
	log  *zap.Logger
	spin spinner.Model

	status string
	width  int
	height int
}

var (
	styleHeader    = lipgloss.NewStyle().Bold(true)
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleMuted     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleKey       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	styleWarn      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleStatusOK  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleStatusErr = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleLink      = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("12"))
	styleDialog    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(dialogWidth)
)

const dialogWidth = 60

const (
	successTitle = "Url was shortened successfully"
	successBody  = "Use the following link to visit your url:"
	errorTitle   = "Oh noo"
	errorBody    = "Something went wrong while shortening your url, please try again later."
)

func newModel(ctx context.Context, client controller.Shortener, log *zap.Logger) model {
	if log == nil {
		log = zap.NewNop()
	}
	s := &surface{warnings: map[core.Warning]bool{}}
	s.input = textinput.New()
	s.input.Placeholder = "Url"
	s.input.Prompt = "> "
	s.input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		ctx:    ctx,
		s:      s,
		ctrl:   controller.New(s, client, log),
		log:    log,
		spin:   sp,
		status: "Ready",
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

// shortenedMsg carries a settled request back into the event loop.
type shortenedMsg struct {
	outcome core.Outcome
}

func shortenCmd(ctx context.Context, ctrl *controller.Controller, raw string) tea.Cmd {
	return func() tea.Msg {
		return shortenedMsg{outcome: ctrl.Request(ctx, raw)}
	}
}

type copiedMsg struct{ err error }

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// dialogs are modal: the form sees no keys while one is open
		switch {
		case m.s.dialogs.SuccessOpen():
			return m.updateSuccessKey(msg)
		case m.s.dialogs.ErrorOpen():
			return m.updateErrorKey(msg)
		}
		return m.updateFormKey(msg)
	case shortenedMsg:
		m.ctrl.Settle(msg.outcome)
		if msg.outcome.Kind == core.OutcomeSuccess {
			m.status = "shortened"
		} else {
			m.status = "shorten failed"
		}
		return m, nil
	case spinner.TickMsg:
		if !m.ctrl.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("copy to clipboard failed", zap.Error(msg.err))
			m.status = "copy failed"
		} else {
			m.status = "copied to clipboard"
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.s.input, cmd = m.s.input.Update(msg)
	return m, cmd
}

func (m model) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw, ok := m.ctrl.Begin()
		if !ok {
			// still in flight after a refusal means the guard fired, not validation
			if m.ctrl.InFlight() {
				m.status = "still shortening…"
			} else {
				m.status = "Ready"
			}
			return m, nil
		}
		m.status = "shortening…"
		return m, tea.Batch(shortenCmd(m.ctx, m.ctrl, raw), m.spin.Tick)
	case "esc":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.s.input, cmd = m.s.input.Update(msg)
		m.ctrl.InputChanged()
		return m, cmd
	}
}

func (m model) updateSuccessKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.ctrl.DismissSuccess()
	case "c":
		return m, copyCmd(m.s.dialogs.Link().Href)
	}
	return m, nil
}

func (m model) updateErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.ctrl.DismissError()
	}
	return m, nil
}

func (m model) View() string {
	var body string
	switch {
	case m.s.dialogs.SuccessOpen():
		body = m.renderSuccessDialog()
	case m.s.dialogs.ErrorOpen():
		body = m.renderErrorDialog()
	default:
		return m.renderTop() + "\n\n" + m.renderForm() + "\n" + m.help()
	}
	if m.width > 0 && m.height > 0 {
		body = lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, body)
	}
	return m.renderTop() + "\n" + body + "\n" + m.help()
}

func (m model) renderTop() string {
	name, ver := verinfo.Info()
	st := styleStatusOK.Render(m.status)
	if strings.Contains(strings.ToLower(m.status), "failed") {
		st = styleStatusErr.Render(m.status)
	}
	return styleHeader.Render(name) + " " + styleMuted.Render(ver) + " | Status: " + st
}

func (m model) renderForm() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Shorten url") + "\n")
	b.WriteString(styleMuted.Render("Shorten URLs without hassle.") + "\n\n")
	b.WriteString("Url to shorten\n")
	b.WriteString(m.s.input.View() + "\n")
	for _, w := range []core.Warning{core.WarningMissing, core.WarningInvalid} {
		if m.s.warnings[w] {
			b.WriteString(styleWarn.Render(w.Text()) + "\n")
		}
	}
	if m.ctrl.InFlight() {
		b.WriteString(m.spin.View() + " Shortening…\n")
	}
	return b.String()
}

func (m model) renderSuccessDialog() string {
	link := m.s.dialogs.Link()
	label := util.Truncate(link.Label, dialogWidth-4)
	var b strings.Builder
	b.WriteString(styleHeader.Render(successTitle) + "\n\n")
	b.WriteString(successBody + "\n")
	b.WriteString(ansi.SetHyperlink(link.Href) + styleLink.Render(label) + ansi.ResetHyperlink())
	return styleDialog.BorderForeground(lipgloss.Color("10")).Render(b.String())
}

func (m model) renderErrorDialog() string {
	var b strings.Builder
	b.WriteString(styleStatusErr.Bold(true).Render(errorTitle) + "\n\n")
	b.WriteString(errorBody)
	return styleDialog.BorderForeground(lipgloss.Color("9")).Render(b.String())
}

func (m model) help() string {
	var b strings.Builder
	switch {
	case m.s.dialogs.SuccessOpen():
		b.WriteString(styleKey.Render("[Enter]"))
		b.WriteString(" Got it  ")
		b.WriteString(styleKey.Render("[c]"))
		b.WriteString(" Copy link  ")
	case m.s.dialogs.ErrorOpen():
		b.WriteString(styleKey.Render("[Enter]"))
		b.WriteString(" Alright then  ")
	default:
		b.WriteString(styleKey.Render("[Enter]"))
		b.WriteString(" Shorten it  ")
		b.WriteString(styleKey.Render("[Esc]"))
		b.WriteString(" Quit  ")
	}
	b.WriteString(styleKey.Render("[Ctrl+C]"))
	b.WriteString(" Exit")
	return b.String()
}

// Run starts the interactive screen. Requests still outstanding when the
// user quits are cancelled.
func Run(ctx context.Context, client controller.Shortener, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := tea.NewProgram(newModel(ctx, client, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
