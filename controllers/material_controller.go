package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/methodhub/backend/middleware"
	"github.com/methodhub/backend/services"
)

type CreateMaterialInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Text        *string `json:"text"`
	Category    int     `json:"category" binding:"required,min=1"`
	Theme       int     `json:"theme" binding:"required,min=1"`
}

type UpdateMaterialInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Text        *string `json:"text"`
	Category    *int    `json:"category" binding:"omitempty,min=1"`
	Theme       *int    `json:"theme" binding:"omitempty,min=1"`
}

// MaterialController serves the materials CRUD and favorites.
type MaterialController struct {
	materials *services.MaterialsService
}

func NewMaterialController(materials *services.MaterialsService) *MaterialController {
	return &MaterialController{materials: materials}
}

func (ctl *MaterialController) Create(c *gin.Context) {
	var input CreateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	userID, _ := middleware.UserID(c)

	material, err := ctl.materials.Create(c.Request.Context(), services.CreateMaterialInput{
		Title:       input.Title,
		Description: input.Description,
		Text:        input.Text,
		Category:    input.Category,
		Theme:       input.Theme,
	}, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (ctl *MaterialController) FindAll(c *gin.Context) {
	materials, err := ctl.materials.FindAll(c.Request.Context(), middleware.OptionalUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (ctl *MaterialController) FindByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	materials, err := ctl.materials.FindByCategory(c.Request.Context(), categoryID, middleware.OptionalUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (ctl *MaterialController) FindByTheme(c *gin.Context) {
	themeID, ok := pathID(c, "themeId")
	if !ok {
		return
	}

	materials, err := ctl.materials.FindByTheme(c.Request.Context(), themeID, middleware.OptionalUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (ctl *MaterialController) FindFavorites(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	materials, err := ctl.materials.FindFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (ctl *MaterialController) FindOne(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	material, err := ctl.materials.FindOne(c.Request.Context(), id, middleware.OptionalUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (ctl *MaterialController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	userID, _ := middleware.UserID(c)

	material, err := ctl.materials.Update(c.Request.Context(), id, services.UpdateMaterialInput{
		Title:       input.Title,
		Description: input.Description,
		Text:        input.Text,
		Category:    input.Category,
		Theme:       input.Theme,
	}, userID, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (ctl *MaterialController) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := ctl.materials.Remove(c.Request.Context(), id, userID, middleware.IsAdmin(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}

func (ctl *MaterialController) ToggleFavorite(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	isFavorite, err := ctl.materials.ToggleFavorite(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// pathID parses a positive integer path parameter and answers 400 itself
// when the value is unusable.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}
