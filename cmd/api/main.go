package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"concertify/config"
	_ "concertify/docs"
	"concertify/internal/adapters/auth"
	emailadapter "concertify/internal/adapters/email"
	"concertify/internal/adapters/storage"
	httpdelivery "concertify/internal/delivery/http"
	"concertify/internal/delivery/http/controllers"
	"concertify/internal/delivery/http/middleware"
	"concertify/internal/repository/postgres"
	"concertify/internal/services"
)

const tokenExpiry = 24 * time.Hour

// @title Concertify API
// @version 1.0
// @description Concert discovery backend: artists, concerts, favourites, and sessions.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	store, err := storage.NewObjectStore(storage.S3Config{
		Provider:        cfg.Storage.Provider,
		Bucket:          cfg.Storage.Bucket,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
	})
	if err != nil {
		log.Fatalf("failed to create object store: %v", err)
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.Region,
			AccessKeyID:     cfg.Email.AccessKeyID,
			SecretAccessKey: cfg.Email.SecretAccessKey,
		},
	})
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	artistRepo := postgres.NewArtistRepository(db)
	userRepo := postgres.NewUserRepository(db)
	concertRepo := postgres.NewConcertRepository(db)
	favouriteRepo := postgres.NewFavouriteRepository(db)

	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	artistSvc := services.NewArtistService(artistRepo, userRepo, store, emailSvc, logger)
	concertSvc := services.NewConcertService(concertRepo, store)
	favouriteSvc := services.NewFavouriteService(favouriteRepo, concertRepo)

	codec := auth.NewJWTCodec(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(12)
	userSvc := services.NewUserService(userRepo, hasher, codec, tokenExpiry, emailSvc, logger)

	secureCookies := cfg.Environment == "production"
	mux := httpdelivery.NewRouter(
		controllers.NewArtistController(logger, artistSvc),
		controllers.NewConcertController(logger, concertSvc),
		controllers.NewFavouriteController(logger, favouriteSvc),
		controllers.NewUserController(logger, userSvc, tokenExpiry, secureCookies),
		codec,
	)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
