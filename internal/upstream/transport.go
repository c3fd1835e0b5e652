package upstream

import (
	"net/http"

	"github.com/segmentio/ksuid"
)

const correlationHeader = "X-Correlation-Id"

// TokenSource yields the bearer token to attach to an outgoing request,
// or "" when unauthenticated. The session service satisfies it; reading
// at call time means a logout is honored by the very next request.
type TokenSource interface {
	Token() string
}

// bearerTransport attaches the current token, when present, to every
// outgoing request and stamps a correlation id for log joining. It
// never retries, refreshes, or reacts to the response status: a 401 is
// the caller's to handle, and the session is never mutated here.
type bearerTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if tok := t.tokens.Token(); tok != "" {
		clone.Header.Set("Authorization", "Bearer "+tok)
	}
	if clone.Header.Get(correlationHeader) == "" {
		clone.Header.Set(correlationHeader, ksuid.New().String())
	}

	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(clone)
}
