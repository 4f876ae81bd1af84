package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantea/teahouse-web/adminview"
)

// viewQuery reads the table view state from the URL.
func viewQuery(c *gin.Context) adminview.Query {
	dir := adminview.SortDir(c.Query("dir"))
	if dir != adminview.SortAsc && dir != adminview.SortDesc {
		dir = adminview.SortNone
	}
	return adminview.Query{
		Search:  c.Query("q"),
		SortKey: c.Query("sort"),
		SortDir: dir,
	}
}

// redirectIfUnauthorized applies the global 401 policy at the page
// layer: the API client has already dropped the token, the browser goes
// back to the login screen.
func redirectIfUnauthorized(c *gin.Context, status int) bool {
	if status == http.StatusUnauthorized {
		c.Redirect(http.StatusFound, "/auth")
		c.Abort()
		return true
	}
	return false
}
