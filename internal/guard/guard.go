// Package guard decides, per navigation, whether the current session
// may reach a destination that declares a required role set, and where
// to redirect otherwise. It is a UX convenience only: the upstream API
// independently enforces authorization on every call, since a client
// side gate is trivially bypassable.
package guard

import (
	"careerconnect/gateway/internal/models"
)

type Outcome int

const (
	// Authorized renders the requested destination.
	Authorized Outcome = iota
	// RedirectLogin sends an unauthenticated requester to the login
	// destination, carrying the original destination as return state.
	RedirectLogin
	// RedirectHome sends an authenticated requester without a matching
	// role to the home destination. The intended destination is
	// deliberately not preserved: the user is not entitled to that area
	// at all, as opposed to merely not being signed in yet.
	RedirectHome
)

// Decision is the result of evaluating one navigation attempt. Next is
// populated only for RedirectLogin.
type Decision struct {
	Outcome Outcome
	Next    string
}

// SessionReader is the slice of the session service the gate consults.
type SessionReader interface {
	Authenticated() bool
	HasRole(required ...models.Role) bool
}

// Evaluate runs fresh on every navigation; nothing is cached between
// calls. Any ambiguity resolves to the more restrictive outcome.
func Evaluate(sess SessionReader, destination string, required ...models.Role) Decision {
	if !sess.Authenticated() {
		return Decision{Outcome: RedirectLogin, Next: destination}
	}
	if !sess.HasRole(required...) {
		return Decision{Outcome: RedirectHome}
	}
	return Decision{Outcome: Authorized}
}
