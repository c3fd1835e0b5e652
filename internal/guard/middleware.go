package guard

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"careerconnect/gateway/internal/models"
)

const (
	// LoginPath is the login destination; the original URL rides along
	// in the "next" query parameter so a successful login can return.
	LoginPath = "/login"
	// HomePath is where requesters with no matching role are sent.
	HomePath = "/"
)

// Protect gates a route group behind a required role set, translating
// decisions into real redirects.
func Protect(sess SessionReader, required ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := Evaluate(sess, c.Request.URL.RequestURI(), required...)

		switch decision.Outcome {
		case RedirectLogin:
			c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(decision.Next))
			c.Abort()
		case RedirectHome:
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
