// Package controller drives one URL submission from the form to a dialog.
//
// The controller never renders anything itself. It reads and mutates the
// screen only through the View port and reaches the network only through
// the Shortener port, so both the terminal screen and the console command
// share the same flow:
//
//	Begin   clear warnings, validate, warn and halt or mark in flight
//	Request the one network call; safe to run off the UI loop
//	Settle  open exactly one dialog and return to idle
package controller

import (
	"context"

	"go.uber.org/zap"

	core "github.com/nils-degroot/shorty/internal/core"
)

// View is the screen surface the controller works against.
type View interface {
	InputValue() string
	SetWarningVisible(w core.Warning)
	ClearWarnings()
	OpenSuccessDialog(shortURL string)
	OpenErrorDialog()
	CloseSuccessDialog()
	CloseErrorDialog()
}

// Shortener turns a long URL into a short one.
type Shortener interface {
	Shorten(ctx context.Context, raw string) (string, error)
}

type Controller struct {
	view     View
	client   Shortener
	log      *zap.Logger
	inFlight bool
}

func New(view View, client Shortener, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{view: view, client: client, log: log}
}

// InFlight reports whether a request is outstanding.
func (c *Controller) InFlight() bool { return c.inFlight }

// Begin evaluates the current input. It returns the raw input and true when
// a request must be issued; in that case the caller must eventually pass the
// outcome of Request to Settle. A submit while another request is
// outstanding is dropped.
func (c *Controller) Begin() (string, bool) {
	if c.inFlight {
		c.log.Debug("submit ignored, request in flight")
		return "", false
	}
	c.view.ClearWarnings()

	raw := c.view.InputValue()
	v := core.Validate(raw)
	switch v.Kind {
	case core.VerdictMissing:
		c.view.SetWarningVisible(core.WarningMissing)
		return "", false
	case core.VerdictInvalid:
		c.view.SetWarningVisible(core.WarningInvalid)
		return "", false
	}

	c.inFlight = true
	c.log.Debug("submitting url", zap.String("url", raw))
	return raw, true
}

// Request performs the shortening call. It does not touch the view.
func (c *Controller) Request(ctx context.Context, raw string) core.Outcome {
	short, err := c.client.Shorten(ctx, raw)
	if err != nil {
		c.log.Error("failed to shorten url", zap.String("url", raw), zap.Error(err))
		return core.NetworkFailure(err.Error())
	}
	c.log.Info("url shortened", zap.String("url", raw), zap.String("short", short))
	return core.Success(short)
}

// Settle hands a completed outcome to the dialogs and returns to idle.
func (c *Controller) Settle(o core.Outcome) {
	c.inFlight = false
	switch o.Kind {
	case core.OutcomeSuccess:
		c.view.OpenSuccessDialog(o.ShortURL)
	case core.OutcomeNetworkFailure:
		c.view.OpenErrorDialog()
	}
}

// Submit runs a whole attempt synchronously. The returned outcome has kind
// core.OutcomeNone when validation stopped the attempt.
func (c *Controller) Submit(ctx context.Context) core.Outcome {
	raw, ok := c.Begin()
	if !ok {
		return core.Outcome{}
	}
	o := c.Request(ctx, raw)
	c.Settle(o)
	return o
}

// InputChanged is called on every keystroke into the URL field.
func (c *Controller) InputChanged() { c.view.ClearWarnings() }

func (c *Controller) DismissSuccess() { c.view.CloseSuccessDialog() }

func (c *Controller) DismissError() { c.view.CloseErrorDialog() }
