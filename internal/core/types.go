package core

import "net/url"

// VerdictKind is the result class of local input validation.
type VerdictKind int

const (
	VerdictMissing VerdictKind = iota
	VerdictInvalid
	VerdictValid
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictMissing:
		return "missing"
	case VerdictInvalid:
		return "invalid"
	case VerdictValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Verdict is produced fresh on every submit attempt. URL is set only when
// Kind is VerdictValid.
type Verdict struct {
	Kind VerdictKind
	URL  *url.URL
}

// Err maps the verdict to the sentinel error used on the command line.
func (v Verdict) Err() error {
	switch v.Kind {
	case VerdictMissing:
		return ErrMissingInput
	case VerdictInvalid:
		return ErrInvalidURL
	default:
		return nil
	}
}

// Warning identifies one of the inline warnings under the URL field.
type Warning int

const (
	WarningMissing Warning = iota
	WarningInvalid
)

// Text is the user-facing warning line.
func (w Warning) Text() string {
	switch w {
	case WarningMissing:
		return "Please enter a url"
	case WarningInvalid:
		return "The provided url was invalid"
	default:
		return ""
	}
}

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeSuccess
	OutcomeNetworkFailure
)

// Outcome is the settled result of one shortening request.
type Outcome struct {
	Kind     OutcomeKind
	ShortURL string
	Reason   string // diagnostics only, never shown to the user
}

func Success(shortURL string) Outcome {
	return Outcome{Kind: OutcomeSuccess, ShortURL: shortURL}
}

func NetworkFailure(reason string) Outcome {
	return Outcome{Kind: OutcomeNetworkFailure, Reason: reason}
}

// Link is the label/target pair of the success dialog. Both are always set
// together.
type Link struct {
	Label string
	Href  string
}

type DialogKind int

const (
	DialogClosed DialogKind = iota
	DialogSuccessOpen
	DialogErrorOpen
)

// DialogState describes which dialog is showing. Link is only meaningful
// for DialogSuccessOpen.
type DialogState struct {
	Kind DialogKind
	Link Link
}
