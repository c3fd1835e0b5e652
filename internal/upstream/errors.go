package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an upstream failure so call sites pattern-match one
// taxonomy instead of inspecting raw status codes.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindInvalid      Kind = "invalid"
	KindUpstream     Kind = "upstream"
	KindNetwork      Kind = "network"
)

// Error carries the upstream response unmodified: the gateway adds the
// classification and nothing else. Status is zero for transport
// failures that never produced a response.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %s: %s", e.Kind, e.Message)
}

func classify(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindInvalid
	default:
		return KindUpstream
	}
}

// AsError unwraps err into the upstream taxonomy when possible.
func AsError(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	ue, ok := AsError(err)
	return ok && ue.Kind == KindNotFound
}

func IsUnauthorized(err error) bool {
	ue, ok := AsError(err)
	return ok && ue.Kind == KindUnauthorized
}
