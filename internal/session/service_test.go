package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"careerconnect/gateway/internal/credstore"
	"careerconnect/gateway/internal/models"
)

// memStore is an in-memory credstore.Store for exercising the service
// without touching disk.
type memStore struct {
	mu    sync.Mutex
	creds *credstore.Credentials
	fail  error
}

func (m *memStore) Save(ctx context.Context, creds credstore.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	copied := creds
	m.creds = &copied
	return nil
}

func (m *memStore) Load(ctx context.Context) (*credstore.Credentials, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	if m.creds == nil {
		return nil, nil
	}
	copied := *m.creds
	return &copied, nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.creds = nil
	return nil
}

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	store := &memStore{}
	return NewService(context.Background(), store, zerolog.Nop()), store
}

func TestLoginPersistsThenExposes(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	payload := map[string]any{
		"id":    float64(7),
		"email": "a@b.com",
		"roles": []any{"job_seeker"},
	}

	user, err := svc.Login(ctx, "tok123", payload)
	require.NoError(t, err)
	require.Equal(t, "tok123", svc.Token())
	require.Equal(t, int64(7), user.UserID)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	require.Equal(t, "tok123", persisted.Token)
	require.Equal(t, []models.Role{models.RoleJobSeeker}, persisted.User.Roles)
}

func TestLoginIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	payload := map[string]any{"id": float64(1), "email": "a@b.com", "roles": []any{"employer"}}

	first, err := svc.Login(ctx, "t", payload)
	require.NoError(t, err)
	second, err := svc.Login(ctx, "t", payload)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, "t", svc.Token())
}

func TestLoginFailedPersistLeavesStateUntouched(t *testing.T) {
	store := &memStore{}
	svc := NewService(context.Background(), store, zerolog.Nop())
	store.fail = errors.New("disk full")

	_, err := svc.Login(context.Background(), "t", map[string]any{"email": "a@b.com"})
	require.Error(t, err)
	require.Empty(t, svc.Token())
	require.Nil(t, svc.Current())
}

func TestLogoutClearsAndIsIdempotent(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "t", map[string]any{"email": "a@b.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))

	require.Empty(t, svc.Token())
	require.Nil(t, svc.Current())
	require.False(t, svc.Authenticated())

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, persisted)
}

func TestHasRoleEmptyRequirementPassesWithoutSession(t *testing.T) {
	svc, _ := newTestService(t)
	require.True(t, svc.HasRole())
}

func TestHasRoleFailsClosedWithoutSession(t *testing.T) {
	svc, _ := newTestService(t)
	require.False(t, svc.HasRole(models.RoleEmployer))
}

func TestHasRoleEmptyRoleSetFailsEveryGate(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Login(context.Background(), "t", map[string]any{"email": "a@b.com"})
	require.NoError(t, err)

	require.True(t, svc.HasRole())
	require.False(t, svc.HasRole(models.RoleJobSeeker))
	require.False(t, svc.HasRole(models.RoleEmployer))
}

func TestHasRoleIntersection(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Login(context.Background(), "t", map[string]any{
		"email": "a@b.com",
		"roles": []any{"job_seeker"},
	})
	require.NoError(t, err)

	require.True(t, svc.HasRole(models.RoleJobSeeker))
	require.True(t, svc.HasRole(models.RoleEmployer, models.RoleJobSeeker))
	require.False(t, svc.HasRole(models.RoleEmployer))
}

func TestNewServiceRestoresPersistedSession(t *testing.T) {
	store := &memStore{creds: &credstore.Credentials{
		Token: "restored",
		User:  models.UserSnapshot{Email: "a@b.com", Roles: []models.Role{models.RoleEmployer}},
	}}

	svc := NewService(context.Background(), store, zerolog.Nop())

	require.Equal(t, "restored", svc.Token())
	require.True(t, svc.HasRole(models.RoleEmployer))
}

func TestNewServiceStartsSignedOutOnStoreError(t *testing.T) {
	store := &memStore{fail: errors.New("backend down")}
	svc := NewService(context.Background(), store, zerolog.Nop())

	require.False(t, svc.Authenticated())
	require.False(t, svc.HasRole(models.RoleEmployer))
}

func TestRememberProfileIDsPersistsHints(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "t", map[string]any{"id": float64(2), "email": "a@b.com"})
	require.NoError(t, err)

	jobSeekerID := int64(31)
	require.NoError(t, svc.RememberProfileIDs(ctx, &jobSeekerID, nil))

	current := svc.Current()
	require.NotNil(t, current.JobSeekerID)
	require.Equal(t, int64(31), *current.JobSeekerID)

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, persisted.User.JobSeekerID)
	require.Equal(t, int64(31), *persisted.User.JobSeekerID)
}

func TestRememberProfileIDsWithoutSessionIsNoOp(t *testing.T) {
	svc, store := newTestService(t)
	id := int64(1)

	require.NoError(t, svc.RememberProfileIDs(context.Background(), &id, nil))

	persisted, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, persisted)
}

func TestReloadObservesExternalLogin(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	changed, err := svc.Reload(ctx)
	require.NoError(t, err)
	require.False(t, changed)

	// Another process signs in through the shared backend.
	require.NoError(t, store.Save(ctx, credstore.Credentials{
		Token: "elsewhere",
		User:  models.UserSnapshot{Email: "a@b.com", Roles: []models.Role{models.RoleJobSeeker}},
	}))

	changed, err = svc.Reload(ctx)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "elsewhere", svc.Token())
	require.True(t, svc.HasRole(models.RoleJobSeeker))
}

func TestReloadObservesExternalLogout(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "t", map[string]any{"email": "a@b.com"})
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))

	changed, err := svc.Reload(ctx)
	require.NoError(t, err)
	require.True(t, changed)
	require.False(t, svc.Authenticated())
}
