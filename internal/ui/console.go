package ui

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nils-degroot/shorty/internal/controller"
	core "github.com/nils-degroot/shorty/internal/core"
	"github.com/nils-degroot/shorty/internal/dialog"
)

// Exit codes of the console command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitInvalid = 2
)

// console is the non-interactive surface: the input comes from a flag,
// warnings and the error dialog go to errw, the short link goes to out.
type console struct {
	url     string
	out     io.Writer
	errw    io.Writer
	dialogs dialog.Presenter
}

func (c *console) InputValue() string { return c.url }

func (c *console) SetWarningVisible(w core.Warning) {
	fmt.Fprintln(c.errw, w.Text())
}

func (c *console) ClearWarnings() {}

func (c *console) OpenSuccessDialog(shortURL string) {
	c.dialogs.ShowSuccess(shortURL)
	fmt.Fprintln(c.out, c.dialogs.Link().Label)
}

func (c *console) OpenErrorDialog() {
	c.dialogs.ShowError()
	fmt.Fprintln(c.errw, errorBody)
}

func (c *console) CloseSuccessDialog() { c.dialogs.CloseSuccess() }
func (c *console) CloseErrorDialog()   { c.dialogs.CloseError() }

// Shorten runs one submission for rawURL without a screen and returns the
// process exit code.
func Shorten(ctx context.Context, rawURL string, client controller.Shortener, log *zap.Logger, out, errw io.Writer) int {
	c := &console{url: rawURL, out: out, errw: errw}
	o := controller.New(c, client, log).Submit(ctx)
	switch o.Kind {
	case core.OutcomeSuccess:
		return ExitOK
	case core.OutcomeNetworkFailure:
		return ExitFailure
	default:
		return ExitInvalid
	}
}
