package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/methodhub/backend/services"
)

type CreateThemeInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateThemeInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ThemeController serves the theme taxonomy. Writes are admin-only.
type ThemeController struct {
	themes *services.ThemesService
}

func NewThemeController(themes *services.ThemesService) *ThemeController {
	return &ThemeController{themes: themes}
}

func (ctl *ThemeController) FindAll(c *gin.Context) {
	themes, err := ctl.themes.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, themes)
}

func (ctl *ThemeController) FindOne(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	theme, err := ctl.themes.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (ctl *ThemeController) Create(c *gin.Context) {
	var input CreateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	theme, err := ctl.themes.Create(c.Request.Context(), services.CreateThemeInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, theme)
}

func (ctl *ThemeController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	theme, err := ctl.themes.Update(c.Request.Context(), id, services.UpdateThemeInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, theme)
}

func (ctl *ThemeController) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.themes.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Theme deleted successfully"})
}
