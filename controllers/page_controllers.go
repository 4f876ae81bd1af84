package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verdantea/teahouse-web/models"
	"github.com/verdantea/teahouse-web/services"
	"github.com/verdantea/teahouse-web/utils"
)

type PageController struct {
	Menu *services.MenuService
}

func NewPageController(menu *services.MenuService) *PageController {
	return &PageController{Menu: menu}
}

// Home renders the landing page with the popular picks from the menu.
func (pc *PageController) Home(c *gin.Context) {
	resp := pc.Menu.GetPopular(c.Request.Context())

	var items []models.MenuItem
	loadErr := ""
	if resp.OK() && resp.Data != nil {
		items = *resp.Data
	} else {
		loadErr = "Our menu is taking a moment, please try again shortly."
		utils.ErrorLogger.Printf("popular menu fetch failed: %s (status %d)", resp.Err, resp.Status)
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Title":   "Verdantea",
		"Items":   items,
		"LoadErr": loadErr,
	})
}

// MenuPage renders the full menu.
func (pc *PageController) MenuPage(c *gin.Context) {
	resp := pc.Menu.GetAll(c.Request.Context())

	var items []models.MenuItem
	loadErr := ""
	if resp.OK() && resp.Data != nil {
		items = *resp.Data
	} else {
		loadErr = "Our menu is taking a moment, please try again shortly."
		utils.ErrorLogger.Printf("menu fetch failed: %s (status %d)", resp.Err, resp.Status)
	}

	c.HTML(http.StatusOK, "menu.tmpl", gin.H{
		"Title":   "Menu",
		"Items":   items,
		"LoadErr": loadErr,
	})
}

func (pc *PageController) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{"Title": "Not Found"})
}

func (pc *PageController) Health(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "ok", nil)
}
