package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"booknest/internal/config"
	apphttp "booknest/internal/http"
	"booknest/internal/logger"
	"booknest/internal/store"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	pool := mustOpenDB(log, cfg.DatabaseDSN)
	defer pool.Close()

	userRepo := store.NewUserPG(pool)
	authorRepo := store.NewAuthorPG(pool)
	genreRepo := store.NewGenrePG(pool)
	bookRepo := store.NewBookPG(pool)
	userBookRepo := store.NewUserBookPG(pool)
	shelfRepo := store.NewShelfPG(pool)
	statusRepo := store.NewReadingStatusPG(pool)
	reviewRepo := store.NewReviewPG(pool)
	commentRepo := store.NewCommentPG(pool)

	identity := usecase.NewIdentityUsecase(userRepo, shelfRepo)
	catalog := usecase.NewCatalogUsecase(authorRepo, genreRepo, bookRepo, userBookRepo, reviewRepo)
	library := usecase.NewLibraryUsecase(userBookRepo, shelfRepo, statusRepo, bookRepo)
	reviews := usecase.NewReviewUsecase(reviewRepo, commentRepo, userBookRepo, bookRepo, usecase.ReviewPolicy{
		RequireRead:   cfg.ReviewRequireRead,
		SinglePerBook: cfg.ReviewSinglePerBook,
	})

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour

	router := apphttp.NewRouter(apphttp.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, apphttp.Handlers{
		Users:     apphttp.NewUserHandler(identity, cfg.JWTSecret, tokenTTL),
		Authors:   apphttp.NewAuthorHandler(catalog),
		Genres:    apphttp.NewGenreHandler(catalog),
		Books:     apphttp.NewBookHandler(catalog),
		Bookshelf: apphttp.NewBookshelfHandler(library),
		Reviews:   apphttp.NewReviewHandler(reviews),
	}, pool, log)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

func mustOpenDB(log *logrus.Logger, dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Info("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
