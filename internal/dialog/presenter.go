// Package dialog holds the state of the success and error dialogs.
//
// The two dialogs are independent elements: opening or closing one never
// touches the other. Rendering is left to the view that embeds a Presenter.
package dialog

import core "github.com/nils-degroot/shorty/internal/core"

type Presenter struct {
	successOpen bool
	link        core.Link
	errorOpen   bool
}

// ShowSuccess sets both the label and the target of the success link to
// shortURL and opens the success dialog.
func (p *Presenter) ShowSuccess(shortURL string) {
	p.link = core.Link{Label: shortURL, Href: shortURL}
	p.successOpen = true
}

func (p *Presenter) ShowError() { p.errorOpen = true }

// CloseSuccess is a no-op when the dialog is already closed. The last link
// is kept until the next ShowSuccess.
func (p *Presenter) CloseSuccess() { p.successOpen = false }

func (p *Presenter) CloseError() { p.errorOpen = false }

func (p *Presenter) SuccessOpen() bool { return p.successOpen }

func (p *Presenter) ErrorOpen() bool { return p.errorOpen }

// AnyOpen reports whether input should be routed to a dialog.
func (p *Presenter) AnyOpen() bool { return p.successOpen || p.errorOpen }

func (p *Presenter) Link() core.Link { return p.link }

// State collapses both dialogs into one value. The success dialog wins if
// both happen to be open.
func (p *Presenter) State() core.DialogState {
	switch {
	case p.successOpen:
		return core.DialogState{Kind: core.DialogSuccessOpen, Link: p.link}
	case p.errorOpen:
		return core.DialogState{Kind: core.DialogErrorOpen}
	default:
		return core.DialogState{Kind: core.DialogClosed}
	}
}
