package http

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger is what readiness needs from the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterConfig struct {
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Handlers struct {
	Users     *UserHandler
	Authors   *AuthorHandler
	Genres    *GenreHandler
	Books     *BookHandler
	Bookshelf *BookshelfHandler
	Reviews   *ReviewHandler
}

// NewRouter assembles the route table and the shared middleware chain.
// Catalog writes are admin only; the bookshelf and review surfaces require
// a valid token; reads of the shared catalog are open.
func NewRouter(cfg RouterConfig, h Handlers, db Pinger, log *logrus.Logger) http.Handler {
	mux := http.NewServeMux()

	authed := AuthMiddleware(cfg.JWTSecret)
	admin := func(next http.HandlerFunc) http.Handler {
		return authed(RequireAdmin(next))
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		JSONSuccess(w, map[string]string{"status": "ok"}, nil)
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			JSONError(w, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable", nil)
			return
		}
		JSONSuccess(w, map[string]string{"status": "ready"}, nil)
	})

	// Identity
	mux.HandleFunc("POST /api/users/register", h.Users.Register)
	mux.HandleFunc("POST /api/users/login", h.Users.Login)
	mux.Handle("GET /api/users/me", authed(http.HandlerFunc(h.Users.Me)))
	mux.Handle("PUT /api/users/profile", authed(http.HandlerFunc(h.Users.UpdateProfile)))
	mux.Handle("PUT /api/users/password", authed(http.HandlerFunc(h.Users.ChangePassword)))
	mux.Handle("DELETE /api/users/me", authed(http.HandlerFunc(h.Users.DeleteMe)))

	// Authors
	mux.HandleFunc("GET /api/authors", h.Authors.List)
	mux.HandleFunc("GET /api/authors/{id}", h.Authors.Get)
	mux.HandleFunc("GET /api/authors/{id}/books", h.Authors.Books)
	mux.Handle("POST /api/authors", admin(h.Authors.Create))
	mux.Handle("PUT /api/authors/{id}", admin(h.Authors.Update))
	mux.Handle("DELETE /api/authors/{id}", admin(h.Authors.Delete))

	// Genres
	mux.HandleFunc("GET /api/genres", h.Genres.List)
	mux.HandleFunc("GET /api/genres/{id}", h.Genres.Get)
	mux.Handle("POST /api/genres", admin(h.Genres.Create))
	mux.Handle("PUT /api/genres/{id}", admin(h.Genres.Update))
	mux.Handle("DELETE /api/genres/{id}", admin(h.Genres.Delete))

	// Books
	mux.HandleFunc("GET /api/books", h.Books.List)
	mux.HandleFunc("GET /api/books/{id}", h.Books.Get)
	mux.Handle("POST /api/books", admin(h.Books.Create))
	mux.Handle("PUT /api/books/{id}", admin(h.Books.Update))
	mux.Handle("DELETE /api/books/{id}", admin(h.Books.Delete))

	// Personal library
	mux.Handle("POST /api/bookshelf/add-book", authed(http.HandlerFunc(h.Bookshelf.AddBook)))
	mux.Handle("PUT /api/bookshelf/update-status", authed(http.HandlerFunc(h.Bookshelf.UpdateStatus)))
	mux.Handle("PUT /api/bookshelf/update-progress", authed(http.HandlerFunc(h.Bookshelf.UpdateProgress)))
	mux.Handle("DELETE /api/bookshelf/remove-book/{bookId}", authed(http.HandlerFunc(h.Bookshelf.RemoveBook)))
	mux.Handle("GET /api/bookshelf/my-books", authed(http.HandlerFunc(h.Bookshelf.MyBooks)))
	mux.Handle("GET /api/bookshelf/status/{statusId}", authed(http.HandlerFunc(h.Bookshelf.BooksByStatus)))
	mux.Handle("GET /api/bookshelf/shelf/{shelfId}", authed(http.HandlerFunc(h.Bookshelf.BooksByShelf)))
	mux.Handle("GET /api/bookshelf/book/{bookId}", authed(http.HandlerFunc(h.Bookshelf.GetBook)))
	mux.Handle("GET /api/bookshelf/check-book/{bookId}", authed(http.HandlerFunc(h.Bookshelf.CheckBook)))
	mux.Handle("POST /api/bookshelf/create-shelf", authed(http.HandlerFunc(h.Bookshelf.CreateShelf)))
	mux.Handle("PUT /api/bookshelf/update-shelf", authed(http.HandlerFunc(h.Bookshelf.UpdateShelf)))
	mux.Handle("DELETE /api/bookshelf/delete-shelf/{shelfId}", authed(http.HandlerFunc(h.Bookshelf.DeleteShelf)))
	mux.Handle("GET /api/bookshelf/my-shelves", authed(http.HandlerFunc(h.Bookshelf.MyShelves)))
	mux.Handle("PUT /api/bookshelf/move-book", authed(http.HandlerFunc(h.Bookshelf.MoveBook)))
	mux.HandleFunc("GET /api/bookshelf/reading-statuses", h.Bookshelf.ReadingStatuses)

	// Reviews and comments
	mux.Handle("POST /api/reviews", authed(http.HandlerFunc(h.Reviews.Create)))
	mux.Handle("PUT /api/reviews/{id}", authed(http.HandlerFunc(h.Reviews.Update)))
	mux.Handle("DELETE /api/reviews/{id}", authed(http.HandlerFunc(h.Reviews.Delete)))
	mux.Handle("GET /api/reviews/{id}", authed(http.HandlerFunc(h.Reviews.Get)))
	mux.HandleFunc("GET /api/reviews/book/{bookId}", h.Reviews.BookSummary)
	mux.Handle("GET /api/reviews/book/{bookId}/can-review", authed(http.HandlerFunc(h.Reviews.CanReview)))
	mux.Handle("GET /api/reviews/book/{bookId}/my-review", authed(http.HandlerFunc(h.Reviews.MyReviewForBook)))
	mux.Handle("GET /api/reviews/user/{userId}", authed(http.HandlerFunc(h.Reviews.UserReviews)))
	mux.Handle("GET /api/reviews/my-reviews", authed(http.HandlerFunc(h.Reviews.MyReviews)))
	mux.HandleFunc("GET /api/reviews/recent", h.Reviews.Recent)
	mux.Handle("POST /api/reviews/{reviewId}/comments", authed(http.HandlerFunc(h.Reviews.CreateComment)))
	mux.Handle("GET /api/reviews/{reviewId}/comments", authed(http.HandlerFunc(h.Reviews.ListComments)))
	mux.Handle("PUT /api/reviews/comments/{commentId}", authed(http.HandlerFunc(h.Reviews.UpdateComment)))
	mux.Handle("DELETE /api/reviews/comments/{commentId}", authed(http.HandlerFunc(h.Reviews.DeleteComment)))

	rl := NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = mux
	handler = rl.Middleware(handler)
	handler = CORSMiddleware(handler)
	handler = SecurityHeadersMiddleware(handler)
	handler = RecoveryMiddleware(log)(handler)
	handler = AccessLogMiddleware(log)(handler)
	handler = RequestIDMiddleware(handler)
	return handler
}
