package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/methodhub/backend/services"
)

type UpdateUserInput struct {
	IsAdmin  *bool `json:"isAdmin"`
	IsBanned *bool `json:"isBanned"`
}

// UserController is the admin-only account surface.
type UserController struct {
	users *services.UsersService
}

func NewUserController(users *services.UsersService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) FindAll(c *gin.Context) {
	users, err := ctl.users.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *UserController) FindOne(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := ctl.users.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	user, err := ctl.users.Update(c.Request.Context(), id, services.UpdateUserInput{
		IsAdmin:  input.IsAdmin,
		IsBanned: input.IsBanned,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
