package models

import (
	"encoding/json"
	"strconv"
)

// Role is a coarse authorization tag controlling which areas of the
// application are reachable.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

// UserSnapshot is the canonical identity record kept alongside the
// bearer token. JobSeekerID and EmployerID are cached hints only: the
// upstream API stays the source of truth for profile existence and a
// missing hint never proves the profile is absent.
type UserSnapshot struct {
	UserID      int64  `json:"userId"`
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Roles       []Role `json:"roles"`
	JobSeekerID *int64 `json:"jobSeekerId"`
	EmployerID  *int64 `json:"employerId"`
}

// HasAnyRole reports whether the snapshot holds at least one of the
// required roles. An empty requirement always passes; a nil snapshot
// never does. Duplicate or nil role sets are tolerated on both sides.
func (u *UserSnapshot) HasAnyRole(required ...Role) bool {
	if len(required) == 0 {
		return true
	}
	if u == nil {
		return false
	}
	have := make(map[Role]struct{}, len(u.Roles))
	for _, r := range u.Roles {
		have[r] = struct{}{}
	}
	for _, r := range required {
		if _, ok := have[r]; ok {
			return true
		}
	}
	return false
}

// NormalizeUser maps a loosely shaped login payload onto the canonical
// snapshot. The upstream may send either an "id" or a "userId" key and
// any of "username", "name" or "email" for the display name; the fixed
// precedence below resolves them. The function is total over arbitrary
// optional-field input and never panics; absent roles become an empty
// set, which fails every non-empty role gate until a later login
// supplies one.
func NormalizeUser(payload map[string]any) UserSnapshot {
	email := stringValue(payload["email"])

	username := firstString(payload, "username", "name")
	if username == "" {
		username = email
	}

	return UserSnapshot{
		UserID:      firstInt(payload, "userId", "id"),
		ID:          firstInt(payload, "id", "userId"),
		Username:    username,
		Email:       email,
		Roles:       roleSet(payload["roles"]),
		JobSeekerID: optionalInt(payload["jobSeekerId"]),
		EmployerID:  optionalInt(payload["employerId"]),
	}
}

func roleSet(v any) []Role {
	roles := []Role{}
	items, ok := v.([]any)
	if !ok {
		return roles
	}
	for _, item := range items {
		if s := stringValue(item); s != "" {
			roles = append(roles, Role(s))
		}
	}
	return roles
}

func firstString(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringValue(payload[key]); s != "" {
			return s
		}
	}
	return ""
}

func firstInt(payload map[string]any, keys ...string) int64 {
	for _, key := range keys {
		if n, ok := intValue(payload[key]); ok {
			return n
		}
	}
	return 0
}

func optionalInt(v any) *int64 {
	if n, ok := intValue(v); ok {
		return &n
	}
	return nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// intValue accepts the numeric shapes encoding/json can produce plus
// numeric strings, which the upstream occasionally sends for the
// profile-id hints.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}
