package guard

// Session is the read-only surface the routing layer needs from the session
// store. *session.Store satisfies it.
type Session interface {
	// IsAuthenticated reports whether a session is currently established.
	IsAuthenticated() bool
	// AuthCheckComplete reports whether the boot-time restore attempt finished.
	AuthCheckComplete() bool
}

// Decision tells the routing layer what to do with a protected route.
type Decision int

const (
	// DecisionPending: the auth check has not finished; render a loading
	// placeholder and resolve again when it completes.
	DecisionPending Decision = iota
	// DecisionRedirect: the auth check finished and no session exists;
	// redirect to the public entry point.
	DecisionRedirect
	// DecisionAllow: render the protected view.
	DecisionAllow
)

// Resolve maps session state onto a routing decision. Protected content is
// withheld until the auth check completes, which guarantees Initialize runs
// to completion before anything protected renders.
func Resolve(s Session) Decision {
	switch {
	case !s.AuthCheckComplete():
		return DecisionPending
	case !s.IsAuthenticated():
		return DecisionRedirect
	default:
		return DecisionAllow
	}
}

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirect:
		return "redirect"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}
