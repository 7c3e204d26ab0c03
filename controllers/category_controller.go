package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/methodhub/backend/services"
)

type CreateCategoryInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Theme       int     `json:"theme" binding:"required,min=1"`
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Theme       *int    `json:"theme" binding:"omitempty,min=1"`
}

// CategoryController serves categories. Writes are admin-only.
type CategoryController struct {
	categories *services.CategoriesService
}

func NewCategoryController(categories *services.CategoriesService) *CategoryController {
	return &CategoryController{categories: categories}
}

func (ctl *CategoryController) FindAll(c *gin.Context) {
	categories, err := ctl.categories.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctl *CategoryController) FindByTheme(c *gin.Context) {
	themeID, ok := pathID(c, "themeId")
	if !ok {
		return
	}

	categories, err := ctl.categories.FindByTheme(c.Request.Context(), themeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctl *CategoryController) FindOne(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := ctl.categories.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *CategoryController) Create(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	category, err := ctl.categories.Create(c.Request.Context(), services.CreateCategoryInput{
		Name:        input.Name,
		Description: input.Description,
		Theme:       input.Theme,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	category, err := ctl.categories.Update(c.Request.Context(), id, services.UpdateCategoryInput{
		Name:        input.Name,
		Description: input.Description,
		Theme:       input.Theme,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (ctl *CategoryController) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.categories.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
