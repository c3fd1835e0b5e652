// Package credstore persists the session credential across gateway
// restarts. It is a plain durable cache: no network side effects beyond
// the chosen backend, no expiry tracking, no encryption.
package credstore

import (
	"context"

	"careerconnect/gateway/internal/models"
)

// Credentials couples the bearer token with the user snapshot taken at
// login. The pair is written and cleared as a unit; a token without a
// snapshot (or the reverse) never survives a restart.
type Credentials struct {
	Token string              `json:"token"`
	User  models.UserSnapshot `json:"user"`
}

// Store is implemented by the file and redis backends. Load returns
// (nil, nil) when nothing is stored; unparseable stored data reads the
// same way rather than surfacing an error, so startup cannot crash on
// whatever an earlier run left behind.
type Store interface {
	Save(ctx context.Context, creds Credentials) error
	Load(ctx context.Context) (*Credentials, error)
	Clear(ctx context.Context) error
}
