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
	"github.com/graphql-go/handler"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/fitstore/fitstore-go/internal/config"
	graphqlapi "github.com/fitstore/fitstore-go/internal/graphql"
	"github.com/fitstore/fitstore-go/internal/mail"
	"github.com/fitstore/fitstore-go/internal/middleware"
	"github.com/fitstore/fitstore-go/internal/repository"
	"github.com/fitstore/fitstore-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := slog.Default()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mailer, err := mail.NewSMTPSender(mail.Config{
		Host:        cfg.Mail.Host,
		Port:        cfg.Mail.Port,
		Username:    cfg.Mail.Username,
		Password:    cfg.Mail.Password,
		From:        cfg.Mail.From,
		FrontendURL: cfg.FrontendURL,
	})
	if err != nil {
		slog.Error("mail client setup failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)

	authService := service.NewAuthService(userRepo, mailer, cfg.AppSecret, logger)
	itemService := service.NewItemService(itemRepo, logger)

	schema, err := graphqlapi.NewSchema(&graphqlapi.Resolver{
		Auth:  authService,
		Items: itemService,
		Users: userRepo,
	})
	if err != nil {
		slog.Error("building schema failed", "error", err)
		os.Exit(1)
	}

	gqlHandler := handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: true,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(corsHandler.Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(20, 40))
		r.Use(middleware.Session(userRepo, cfg.AppSecret, logger))
		r.Use(graphqlapi.WithResponseWriter)
		r.Handle("/graphql", gqlHandler)
		r.Handle("/playground", gqlHandler)
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
