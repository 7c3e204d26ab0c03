package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/methodhub/backend/services"
)

// AppController serves the banner and the database-info endpoint.
type AppController struct {
	app *services.AppService
}

func NewAppController(app *services.AppService) *AppController {
	return &AppController{app: app}
}

func (ctl *AppController) Banner(c *gin.Context) {
	c.String(http.StatusOK, ctl.app.Banner())
}

func (ctl *AppController) DatabaseInfo(c *gin.Context) {
	info, err := ctl.app.DatabaseInfo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
