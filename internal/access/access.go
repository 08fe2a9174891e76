package access

import (
	"crypto/subtle"
	"strings"
)

// State is the outcome of the admin gate for one request.
type State int

const (
	// Hidden: the admin view was not requested; render nothing.
	Hidden State = iota
	// Disabled: requested, but no admin token is configured.
	Disabled
	// Unauthorized: requested with a token that does not match.
	Unauthorized
	// Authorized: requested with the matching token.
	Authorized
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Disabled:
		return "disabled"
	case Unauthorized:
		return "unauthorized"
	case Authorized:
		return "authorized"
	}
	return "unknown"
}

// Evaluate decides the admin view state from the request flag, the
// token the request carried, and the token configured at startup.
// Stateless: every request is evaluated fresh, no lockout or retry
// limiting. Only Authorized may reveal log contents.
func Evaluate(adminRequested bool, providedToken, configuredToken string) State {
	if !adminRequested {
		return Hidden
	}
	if configuredToken == "" {
		return Disabled
	}
	if subtle.ConstantTimeCompare([]byte(providedToken), []byte(configuredToken)) != 1 {
		return Unauthorized
	}
	return Authorized
}

// Truthy reports whether a query flag value counts as set.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
