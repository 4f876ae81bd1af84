package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantea/teahouse-web/middlewares"
	"github.com/verdantea/teahouse-web/services"
	"github.com/verdantea/teahouse-web/session"
	"github.com/verdantea/teahouse-web/utils"
)

type AuthController struct {
	Auth     *services.AuthService
	Sessions *session.Store
}

func NewAuthController(auth *services.AuthService, sessions *session.Store) *AuthController {
	return &AuthController{Auth: auth, Sessions: sessions}
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	if sess != nil && sess.State == session.StateAuthenticated {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "auth.tmpl", gin.H{"Title": "Admin Login", "Username": ""})
}

// Login exchanges the posted credentials for a token. Failure re-renders
// the form with the error and leaves the session untouched.
func (ac *AuthController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, user, err := ac.Auth.Login(c.Request.Context(), username, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "auth.tmpl", gin.H{
			"Title":    "Admin Login",
			"Error":    err.Error(),
			"Username": username,
		})
		return
	}

	sess := middlewares.CurrentSession(c)
	ac.Sessions.Login(sess, token, user)
	utils.InfoLogger.Printf("admin signed in: %s", user.Username)

	c.Redirect(http.StatusFound, "/admin")
}

func (ac *AuthController) Logout(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	if sess != nil {
		ac.Sessions.Logout(sess)
	}
	c.Redirect(http.StatusFound, "/auth")
}
