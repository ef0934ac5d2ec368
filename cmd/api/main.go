package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/yummyrecipes/yummyrecipes-go/internal/config"
	"github.com/yummyrecipes/yummyrecipes-go/internal/email"
	"github.com/yummyrecipes/yummyrecipes-go/internal/handler"
	"github.com/yummyrecipes/yummyrecipes-go/internal/middleware"
	"github.com/yummyrecipes/yummyrecipes-go/internal/repository"
	"github.com/yummyrecipes/yummyrecipes-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg.Env)

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RunMigrations(db); err != nil {
		slog.Error("running migrations failed", "error", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(cfg.SMTP, cfg.BaseURL)
	if err != nil {
		slog.Error("mailer setup failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	ledger := repository.NewRevocationRepository(db)

	authService := service.NewAuthService(userRepo, ledger, mailer, cfg.JWTSecret, cfg.JWTExpiry, cfg.ResetExpiry)
	categoryService := service.NewCategoryService(categoryRepo)
	recipeService := service.NewRecipeService(categoryRepo, recipeRepo)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/reset-password", authHandler.HandleResetPassword)
		r.Post("/auth/new-password/{reset_token}", authHandler.HandleNewPassword)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, ledger))
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Route("/category", func(r chi.Router) {
			r.Get("/", categoryHandler.HandleList)
			r.Post("/", categoryHandler.HandleCreate)

			r.Route("/{category_id}", func(r chi.Router) {
				r.Get("/", categoryHandler.HandleGet)
				r.Put("/", categoryHandler.HandleUpdate)
				r.Delete("/", categoryHandler.HandleDelete)

				r.Route("/recipes", func(r chi.Router) {
					r.Get("/", recipeHandler.HandleList)
					r.Post("/", recipeHandler.HandleCreate)
					r.Get("/{recipe_id}", recipeHandler.HandleGet)
					r.Put("/{recipe_id}", recipeHandler.HandleUpdate)
					r.Delete("/{recipe_id}", recipeHandler.HandleDelete)
				})
			})
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// setupLogger configures the global slog logger: JSON in production,
// colorized text otherwise.
func setupLogger(env string) {
	var h slog.Handler
	if env == "production" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(h))
}
