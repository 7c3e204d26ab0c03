package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/methodhub/backend/controllers"
	"github.com/methodhub/backend/middleware"
	"github.com/methodhub/backend/services"
	"github.com/methodhub/backend/utils"
)

// Controllers bundles everything SetupRouter wires.
type Controllers struct {
	App        *controllers.AppController
	Auth       *controllers.AuthController
	Materials  *controllers.MaterialController
	Categories *controllers.CategoryController
	Themes     *controllers.ThemeController
	Users      *controllers.UserController
}

// SetupRouter registers every route under /api. Reads are open (with
// optional auth where favorite flags matter), writes need a token, and
// taxonomy/user administration needs the admin flag.
func SetupRouter(r *gin.Engine, ctl Controllers, tokens *utils.TokenManager, authSvc *services.AuthService) *gin.Engine {
	requireAuth := middleware.Auth(tokens, authSvc)
	optionalAuth := middleware.OptionalAuth(tokens, authSvc)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")

	api.GET("/", ctl.App.Banner)
	api.GET("/database-info", ctl.App.DatabaseInfo)

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
		auth.GET("/profile", requireAuth, ctl.Auth.Profile)
	}

	materials := api.Group("/materials")
	{
		materials.GET("", optionalAuth, ctl.Materials.FindAll)
		// The static favorites route must be registered before the :id ones.
		materials.GET("/favorites", requireAuth, ctl.Materials.FindFavorites)
		materials.GET("/category/:categoryId", optionalAuth, ctl.Materials.FindByCategory)
		materials.GET("/theme/:themeId", optionalAuth, ctl.Materials.FindByTheme)
		materials.GET("/:id", optionalAuth, ctl.Materials.FindOne)
		materials.POST("", requireAuth, ctl.Materials.Create)
		materials.PATCH("/:id", requireAuth, ctl.Materials.Update)
		materials.DELETE("/:id", requireAuth, ctl.Materials.Remove)
		materials.POST("/:id/favorite", requireAuth, ctl.Materials.ToggleFavorite)
	}

	themes := api.Group("/themes")
	{
		themes.GET("", ctl.Themes.FindAll)
		themes.GET("/:id", ctl.Themes.FindOne)
		themes.POST("", requireAuth, requireAdmin, ctl.Themes.Create)
		themes.PATCH("/:id", requireAuth, requireAdmin, ctl.Themes.Update)
		themes.DELETE("/:id", requireAuth, requireAdmin, ctl.Themes.Remove)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", ctl.Categories.FindAll)
		categories.GET("/theme/:themeId", ctl.Categories.FindByTheme)
		categories.GET("/:id", ctl.Categories.FindOne)
		categories.POST("", requireAuth, requireAdmin, ctl.Categories.Create)
		categories.PATCH("/:id", requireAuth, requireAdmin, ctl.Categories.Update)
		categories.DELETE("/:id", requireAuth, requireAdmin, ctl.Categories.Remove)
	}

	users := api.Group("/users")
	{
		users.Use(requireAuth, requireAdmin)
		users.GET("", ctl.Users.FindAll)
		users.GET("/:id", ctl.Users.FindOne)
		users.PATCH("/:id", ctl.Users.Update)
	}

	return r
}
