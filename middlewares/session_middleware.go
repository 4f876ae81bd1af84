package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantea/teahouse-web/services"
	"github.com/verdantea/teahouse-web/session"
)

// SessionKey is where the loaded session sits on the gin context.
const SessionKey = "session"

// SessionLoader resolves the browser's session cookie into a server-side
// session, creating one when missing, and attaches it to both the gin
// context and the request context so the API client can see the token.
func SessionLoader(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session

		if id, err := c.Cookie(session.CookieName); err == nil {
			if found, ok := store.Get(id); ok {
				sess = found
			}
		}
		if sess == nil {
			sess = store.Create()
			c.SetCookie(session.CookieName, sess.ID, 0, "/", "", false, true)
		}

		store.Resolve(sess, services.UserFromToken)

		c.Set(SessionKey, sess)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))

		c.Next()
	}
}

// CurrentSession returns the session loaded for this request.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(SessionKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

// RequireAuth guards the admin routes at the routing layer. An
// unauthenticated session is redirected to the login page; a session
// whose state never resolved gets a holding page rather than content.
// This is UX gating only; the backend enforces authorization per call.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			c.Redirect(http.StatusFound, "/auth")
			c.Abort()
			return
		}

		switch sess.State {
		case session.StateAuthenticated:
			c.Next()
		case session.StateUnknown:
			c.HTML(http.StatusOK, "loading.tmpl", gin.H{"Title": "Loading"})
			c.Abort()
		default:
			c.Redirect(http.StatusFound, "/auth")
			c.Abort()
		}
	}
}
