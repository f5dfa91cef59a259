package upstream

import "errors"

// Kind classifies a failed lookup for the endpoint layer.
type Kind int

const (
	// KindUpstream covers transport failures and payloads we cannot use.
	KindUpstream Kind = iota
	// KindNotFound means the provider answered with a non-2xx status.
	KindNotFound
	// KindValidation means the caller passed unusable input.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "upstream"
	}
}

// Public messages. These are the only error texts that reach API clients.
const (
	MsgServerError          = "Server error"
	MsgCityRequired         = "City is required"
	MsgCityNotFound         = "City not found"
	MsgNewsNotFound         = "News not found"
	MsgCurrencyDataNotFound = "Currency data not found"
)

// Error is a failed provider call. Message is safe to show to users, Err
// holds the detail for the server log.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func serverError(err error) *Error {
	return &Error{Kind: KindUpstream, Message: MsgServerError, Err: err}
}

// KindOf returns the Kind of err, treating anything unclassified as
// KindUpstream.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// MessageOf returns the public message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return MsgServerError
}
