package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeUserIDPrecedence(t *testing.T) {
	payload := map[string]any{
		"id":    float64(7),
		"email": "a@b.com",
		"roles": []any{"job_seeker"},
	}

	user := NormalizeUser(payload)

	require.Equal(t, int64(7), user.UserID)
	require.Equal(t, int64(7), user.ID)
	require.Equal(t, "a@b.com", user.Username)
	require.Equal(t, "a@b.com", user.Email)
	require.Equal(t, []Role{RoleJobSeeker}, user.Roles)
	require.Nil(t, user.JobSeekerID)
	require.Nil(t, user.EmployerID)
}

func TestNormalizeUserPrefersUserID(t *testing.T) {
	user := NormalizeUser(map[string]any{
		"userId": float64(3),
		"id":     float64(9),
	})

	if user.UserID != 3 {
		t.Errorf("expected userId 3, got %d", user.UserID)
	}
	if user.ID != 9 {
		t.Errorf("expected id 9, got %d", user.ID)
	}
}

func TestNormalizeUserUsernamePrecedence(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{"username wins", map[string]any{"username": "u", "name": "n", "email": "e@x.com"}, "u"},
		{"name next", map[string]any{"name": "n", "email": "e@x.com"}, "n"},
		{"email last", map[string]any{"email": "e@x.com"}, "e@x.com"},
		{"all absent", map[string]any{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeUser(tc.payload).Username; got != tc.want {
				t.Errorf("expected username %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeUserAbsentRolesBecomeEmptySet(t *testing.T) {
	user := NormalizeUser(map[string]any{"email": "a@b.com"})

	require.NotNil(t, user.Roles)
	require.Empty(t, user.Roles)
	require.False(t, user.HasAnyRole(RoleJobSeeker))
	require.False(t, user.HasAnyRole(RoleEmployer, RoleJobSeeker))
}

func TestNormalizeUserTotalOverGarbage(t *testing.T) {
	// Arbitrary shapes must never panic and resolve restrictively.
	user := NormalizeUser(map[string]any{
		"id":          "not-a-number",
		"roles":       "employer",
		"jobSeekerId": []any{1},
		"employerId":  map[string]any{},
		"username":    12,
	})

	require.Zero(t, user.UserID)
	require.Empty(t, user.Roles)
	require.Nil(t, user.JobSeekerID)
	require.Nil(t, user.EmployerID)
}

func TestNormalizeUserNumericStringsAndHints(t *testing.T) {
	user := NormalizeUser(map[string]any{
		"userId":      json.Number("42"),
		"email":       "x@y.com",
		"jobSeekerId": "17",
		"employerId":  float64(5),
	})

	require.Equal(t, int64(42), user.UserID)
	require.NotNil(t, user.JobSeekerID)
	require.Equal(t, int64(17), *user.JobSeekerID)
	require.NotNil(t, user.EmployerID)
	require.Equal(t, int64(5), *user.EmployerID)
}

func TestHasAnyRoleEmptyRequirementAlwaysPasses(t *testing.T) {
	var nobody *UserSnapshot
	require.True(t, nobody.HasAnyRole())

	somebody := &UserSnapshot{Roles: []Role{}}
	require.True(t, somebody.HasAnyRole())
}

func TestHasAnyRoleIntersection(t *testing.T) {
	user := &UserSnapshot{Roles: []Role{RoleJobSeeker, RoleJobSeeker}}

	require.True(t, user.HasAnyRole(RoleJobSeeker))
	require.True(t, user.HasAnyRole(RoleEmployer, RoleJobSeeker))
	require.False(t, user.HasAnyRole(RoleEmployer))
}

func TestHasAnyRoleNilSnapshotFailsClosed(t *testing.T) {
	var nobody *UserSnapshot
	require.False(t, nobody.HasAnyRole(RoleEmployer))
}
