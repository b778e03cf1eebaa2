package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booknest/internal/entity"
	"booknest/internal/testutil"
	"booknest/internal/usecase"
	"booknest/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type routerMocks struct {
	users     *mocks.MockUserRepository
	authors   *mocks.MockAuthorRepository
	genres    *mocks.MockGenreRepository
	books     *mocks.MockBookRepository
	userBooks *mocks.MockUserBookRepository
	shelves   *mocks.MockShelfRepository
	statuses  *mocks.MockReadingStatusRepository
	reviews   *mocks.MockReviewRepository
	comments  *mocks.MockCommentRepository
}

func newTestRouter(ctrl *gomock.Controller, ping pingerFunc) (http.Handler, routerMocks) {
	m := routerMocks{
		users:     mocks.NewMockUserRepository(ctrl),
		authors:   mocks.NewMockAuthorRepository(ctrl),
		genres:    mocks.NewMockGenreRepository(ctrl),
		books:     mocks.NewMockBookRepository(ctrl),
		userBooks: mocks.NewMockUserBookRepository(ctrl),
		shelves:   mocks.NewMockShelfRepository(ctrl),
		statuses:  mocks.NewMockReadingStatusRepository(ctrl),
		reviews:   mocks.NewMockReviewRepository(ctrl),
		comments:  mocks.NewMockCommentRepository(ctrl),
	}

	identity := usecase.NewIdentityUsecase(m.users, m.shelves)
	catalog := usecase.NewCatalogUsecase(m.authors, m.genres, m.books, m.userBooks, m.reviews)
	library := usecase.NewLibraryUsecase(m.userBooks, m.shelves, m.statuses, m.books)
	reviews := usecase.NewReviewUsecase(m.reviews, m.comments, m.userBooks, m.books,
		usecase.ReviewPolicy{RequireRead: true, SinglePerBook: true})

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := NewRouter(
		RouterConfig{JWTSecret: testSecret, RateLimitRPS: 100, RateLimitBurst: 100},
		Handlers{
			Users:     NewUserHandler(identity, testSecret, time.Hour),
			Authors:   NewAuthorHandler(catalog),
			Genres:    NewGenreHandler(catalog),
			Books:     NewBookHandler(catalog),
			Bookshelf: NewBookshelfHandler(library),
			Reviews:   NewReviewHandler(reviews),
		},
		ping,
		log,
	)
	return handler, m
}

func TestRouter_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("healthz is always ok", func(t *testing.T) {
		handler, _ := newTestRouter(ctrl, func(ctx context.Context) error { return nil })
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readyz reflects the database", func(t *testing.T) {
		handler, _ := newTestRouter(ctrl, func(ctx context.Context) error { return nil })
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		handler, _ = newTestRouter(ctrl, func(ctx context.Context) error { return errors.New("pool down") })
		w = httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRouter_CatalogWriteAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := map[string]string{"name": "Octavia Butler"}

	t.Run("anonymous write is unauthorized", func(t *testing.T) {
		handler, _ := newTestRouter(ctrl, func(ctx context.Context) error { return nil })
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/api/authors", body))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("reader write is forbidden", func(t *testing.T) {
		handler, _ := newTestRouter(ctrl, func(ctx context.Context) error { return nil })
		token := testutil.GenerateTestToken(testSecret, "user-1", entity.RoleReader)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/api/authors", body, token))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin write goes through", func(t *testing.T) {
		handler, m := newTestRouter(ctrl, func(ctx context.Context) error { return nil })
		m.authors.EXPECT().GetByNameFold(gomock.Any(), "Octavia Butler").Return(entity.Author{}, usecase.ErrNotFound)
		m.authors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		token := testutil.GenerateTestToken(testSecret, "admin-1", entity.RoleAdmin)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/api/authors", body, token))
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestRouter_PublicReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, m := newTestRouter(ctrl, func(ctx context.Context) error { return nil })
	m.books.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entity.Book{}, 0, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestRouter(ctrl, func(ctx context.Context) error { return nil })

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("propagated when supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		r.Header.Set("X-Request-Id", "req-42")
		handler.ServeHTTP(w, r)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-Id"))
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, _ := newTestRouter(ctrl, func(ctx context.Context) error { return nil })

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/books", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
