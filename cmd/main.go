package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/methodhub/backend/config"
	"github.com/methodhub/backend/controllers"
	"github.com/methodhub/backend/database"
	"github.com/methodhub/backend/repositories"
	"github.com/methodhub/backend/routes"
	"github.com/methodhub/backend/services"
	"github.com/methodhub/backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not apply schema")
	}

	userRepo := repositories.NewUserRepository(db)
	themeRepo := repositories.NewThemeRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	materialRepo := repositories.NewMaterialRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authSvc := services.NewAuthService(userRepo, tokens)
	materialsSvc := services.NewMaterialsService(materialRepo, favoriteRepo, userRepo, categoryRepo, themeRepo)
	categoriesSvc := services.NewCategoriesService(categoryRepo, themeRepo)
	themesSvc := services.NewThemesService(themeRepo)
	usersSvc := services.NewUsersService(userRepo)
	appSvc := services.NewAppService(db, userRepo, materialRepo)

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg)))

	routes.SetupRouter(r, routes.Controllers{
		App:        controllers.NewAppController(appSvc),
		Auth:       controllers.NewAuthController(authSvc),
		Materials:  controllers.NewMaterialController(materialsSvc),
		Categories: controllers.NewCategoryController(categoriesSvc),
		Themes:     controllers.NewThemeController(themesSvc),
		Users:      controllers.NewUserController(usersSvc),
	}, tokens, authSvc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

func corsConfig(cfg config.Config) cors.Config {
	origins := []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://localhost",
	}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
