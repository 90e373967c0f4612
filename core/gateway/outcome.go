package gateway

import "errors"

// Outcome is the four-way classification assigned to every API call result.
// Collaborator pages branch on it to render retry banners, inline validation
// messages, or nothing at all (unauthorized is handled centrally).
type Outcome int

const (
	// OutcomeSuccess: 2xx response with a successful envelope.
	OutcomeSuccess Outcome = iota
	// OutcomeNetworkUnreachable: no response received.
	OutcomeNetworkUnreachable
	// OutcomeUnauthorized: HTTP 401, session torn down as a side effect.
	OutcomeUnauthorized
	// OutcomeApplicationError: any other rejection with a server message.
	OutcomeApplicationError
)

// Classify maps an error returned by the gateway to its Outcome.
// A nil error is OutcomeSuccess.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrNetworkUnreachable):
		return OutcomeNetworkUnreachable
	case errors.Is(err, ErrUnauthorized):
		return OutcomeUnauthorized
	default:
		return OutcomeApplicationError
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNetworkUnreachable:
		return "network_unreachable"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeApplicationError:
		return "application_error"
	default:
		return "unknown"
	}
}
