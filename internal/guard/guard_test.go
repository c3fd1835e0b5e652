package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"careerconnect/gateway/internal/models"
)

type fakeSession struct {
	token string
	roles []models.Role
}

func (f fakeSession) Authenticated() bool {
	return f.token != ""
}

func (f fakeSession) HasRole(required ...models.Role) bool {
	user := &models.UserSnapshot{Roles: f.roles}
	if f.token == "" {
		user = nil
	}
	return user.HasAnyRole(required...)
}

func TestEvaluateUnauthenticatedRedirectsToLoginWithReturnState(t *testing.T) {
	decision := Evaluate(fakeSession{}, "/employer/post-job", models.RoleEmployer)

	require.Equal(t, RedirectLogin, decision.Outcome)
	require.Equal(t, "/employer/post-job", decision.Next)
}

func TestEvaluateWrongRoleRedirectsHomeWithoutReturnState(t *testing.T) {
	sess := fakeSession{token: "t", roles: []models.Role{models.RoleJobSeeker}}

	decision := Evaluate(sess, "/employer/post-job", models.RoleEmployer)

	require.Equal(t, RedirectHome, decision.Outcome)
	require.Empty(t, decision.Next)
}

func TestEvaluateMatchingRoleAuthorizes(t *testing.T) {
	sess := fakeSession{token: "t", roles: []models.Role{models.RoleEmployer, models.RoleJobSeeker}}

	decision := Evaluate(sess, "/employer/post-job", models.RoleEmployer)

	require.Equal(t, Authorized, decision.Outcome)
}

func TestEvaluateEmptyRequirementOnlyNeedsAToken(t *testing.T) {
	require.Equal(t, Authorized, Evaluate(fakeSession{token: "t"}, "/anywhere").Outcome)
	require.Equal(t, RedirectLogin, Evaluate(fakeSession{}, "/anywhere").Outcome)
}

func newGatedRouter(sess SessionReader, required ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	gated := router.Group("/employer", Protect(sess, required...))
	gated.GET("/jobs", func(c *gin.Context) {
		c.String(http.StatusOK, "jobs")
	})
	return router
}

func TestProtectRedirectsAnonymousToLogin(t *testing.T) {
	router := newGatedRouter(fakeSession{}, models.RoleEmployer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employer/jobs?page=2", nil))

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login?next=%2Femployer%2Fjobs%3Fpage%3D2", w.Header().Get("Location"))
}

func TestProtectRedirectsWrongRoleHome(t *testing.T) {
	sess := fakeSession{token: "t", roles: []models.Role{models.RoleJobSeeker}}
	router := newGatedRouter(sess, models.RoleEmployer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employer/jobs", nil))

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestProtectRendersForMatchingRole(t *testing.T) {
	sess := fakeSession{token: "t", roles: []models.Role{models.RoleEmployer, models.RoleJobSeeker}}
	router := newGatedRouter(sess, models.RoleEmployer)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employer/jobs", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "jobs", w.Body.String())
}

// The decision is evaluated fresh per navigation: the same router must
// answer differently once the session changes underneath it.
func TestProtectEvaluatesFreshPerRequest(t *testing.T) {
	sess := &fakeSession{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/employer/jobs", Protect(sess, models.RoleEmployer), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employer/jobs", nil))
	require.Equal(t, http.StatusFound, w.Code)

	sess.token = "t"
	sess.roles = []models.Role{models.RoleEmployer}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employer/jobs", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
