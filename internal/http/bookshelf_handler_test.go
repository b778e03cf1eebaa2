package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"booknest/internal/entity"
	"booknest/internal/testutil"
	"booknest/internal/usecase"
	"booknest/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestUserID  = "11111111-1111-4111-8111-111111111111"
	handlerTestBookID  = "22222222-2222-4222-8222-222222222222"
	handlerTestShelfID = "33333333-3333-4333-8333-333333333333"
)

type bookshelfHandlerMocks struct {
	userBooks *mocks.MockUserBookRepository
	shelves   *mocks.MockShelfRepository
	statuses  *mocks.MockReadingStatusRepository
	books     *mocks.MockBookRepository
}

func newBookshelfHandler(ctrl *gomock.Controller) (*BookshelfHandler, bookshelfHandlerMocks) {
	m := bookshelfHandlerMocks{
		userBooks: mocks.NewMockUserBookRepository(ctrl),
		shelves:   mocks.NewMockShelfRepository(ctrl),
		statuses:  mocks.NewMockReadingStatusRepository(ctrl),
		books:     mocks.NewMockBookRepository(ctrl),
	}
	library := usecase.NewLibraryUsecase(m.userBooks, m.shelves, m.statuses, m.books)
	return NewBookshelfHandler(library), m
}

// asUser injects the auth context the middleware would have set.
func asUser(r *http.Request, userID string, role entity.Role) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, roleKey, role)
	return r.WithContext(ctx)
}

func TestBookshelfHandler_AddBook(t *testing.T) {
	t.Run("creates a new entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, m := newBookshelfHandler(ctrl)
		m.books.EXPECT().GetByID(gomock.Any(), handlerTestBookID).Return(entity.Book{ID: handlerTestBookID}, nil)
		m.userBooks.EXPECT().GetByUserAndBook(gomock.Any(), handlerTestUserID, handlerTestBookID).
			Return(entity.UserBook{}, usecase.ErrNotFound)
		m.userBooks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodPost, "/api/bookshelf/books", map[string]any{
			"book_id":   handlerTestBookID,
			"status_id": entity.StatusWantToRead,
		}), handlerTestUserID, entity.RoleReader)
		handler.AddBook(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects an out-of-range status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, _ := newBookshelfHandler(ctrl)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodPost, "/api/bookshelf/books", map[string]any{
			"book_id":   handlerTestBookID,
			"status_id": 5,
		}), handlerTestUserID, entity.RoleReader)
		handler.AddBook(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed book id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, _ := newBookshelfHandler(ctrl)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodPost, "/api/bookshelf/books", map[string]any{
			"book_id":   "not-a-uuid",
			"status_id": entity.StatusWantToRead,
		}), handlerTestUserID, entity.RoleReader)
		handler.AddBook(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown book maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, m := newBookshelfHandler(ctrl)
		m.books.EXPECT().GetByID(gomock.Any(), handlerTestBookID).Return(entity.Book{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodPost, "/api/bookshelf/books", map[string]any{
			"book_id":   handlerTestBookID,
			"status_id": entity.StatusRead,
		}), handlerTestUserID, entity.RoleReader)
		handler.AddBook(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookshelfHandler_RemoveBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, m := newBookshelfHandler(ctrl)
	m.userBooks.EXPECT().GetByUserAndBook(gomock.Any(), handlerTestUserID, handlerTestBookID).
		Return(entity.UserBook{}, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	r := asUser(testutil.NewRequest(http.MethodDelete, "/api/bookshelf/books/"+handlerTestBookID, nil),
		handlerTestUserID, entity.RoleReader)
	r.SetPathValue("bookId", handlerTestBookID)
	handler.RemoveBook(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookshelfHandler_MyBooks(t *testing.T) {
	t.Run("passes the status filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, m := newBookshelfHandler(ctrl)
		statusID := entity.StatusCurrentlyReading
		m.userBooks.EXPECT().List(gomock.Any(), handlerTestUserID, &statusID, nil).
			Return([]entity.UserBook{{BookID: handlerTestBookID}}, nil)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodGet, "/api/bookshelf/my-books?status_id=2", nil),
			handlerTestUserID, entity.RoleReader)
		handler.MyBooks(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)

		meta, ok := resp.Body["meta"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), meta["count"])
	})

	t.Run("non-numeric status is a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, _ := newBookshelfHandler(ctrl)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodGet, "/api/bookshelf/my-books?status_id=abc", nil),
			handlerTestUserID, entity.RoleReader)
		handler.MyBooks(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookshelfHandler_CheckBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, m := newBookshelfHandler(ctrl)
	m.userBooks.EXPECT().Exists(gomock.Any(), handlerTestUserID, handlerTestBookID).Return(true, nil)

	w := httptest.NewRecorder()
	r := asUser(testutil.NewRequest(http.MethodGet, "/api/bookshelf/books/"+handlerTestBookID+"/check", nil),
		handlerTestUserID, entity.RoleReader)
	r.SetPathValue("bookId", handlerTestBookID)
	handler.CheckBook(w, r)

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)

	data, ok := resp.Body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["in_library"])
}

func TestBookshelfHandler_Shelves(t *testing.T) {
	t.Run("duplicate name conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, m := newBookshelfHandler(ctrl)
		m.shelves.EXPECT().GetByUserAndName(gomock.Any(), handlerTestUserID, "Favorites").
			Return(entity.Shelf{ID: handlerTestShelfID}, nil)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodPost, "/api/bookshelf/shelves", map[string]string{
			"name": "Favorites",
		}), handlerTestUserID, entity.RoleReader)
		handler.CreateShelf(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("deleting a default shelf is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, m := newBookshelfHandler(ctrl)
		m.shelves.EXPECT().GetByID(gomock.Any(), handlerTestShelfID).
			Return(entity.Shelf{ID: handlerTestShelfID, UserID: handlerTestUserID, IsDefault: true}, nil)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodDelete, "/api/bookshelf/shelves/"+handlerTestShelfID, nil),
			handlerTestUserID, entity.RoleReader)
		r.SetPathValue("shelfId", handlerTestShelfID)
		handler.DeleteShelf(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("another user's shelf reads as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, m := newBookshelfHandler(ctrl)
		m.shelves.EXPECT().GetByID(gomock.Any(), handlerTestShelfID).
			Return(entity.Shelf{ID: handlerTestShelfID, UserID: "someone-else"}, nil)

		w := httptest.NewRecorder()
		r := asUser(testutil.NewRequest(http.MethodDelete, "/api/bookshelf/shelves/"+handlerTestShelfID, nil),
			handlerTestUserID, entity.RoleReader)
		r.SetPathValue("shelfId", handlerTestShelfID)
		handler.DeleteShelf(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookshelfHandler_ReadingStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, m := newBookshelfHandler(ctrl)
	m.statuses.EXPECT().List(gomock.Any()).Return([]entity.ReadingStatus{
		{ID: entity.StatusWantToRead, Name: "Want to Read"},
		{ID: entity.StatusCurrentlyReading, Name: "Currently Reading"},
		{ID: entity.StatusRead, Name: "Read"},
	}, nil)

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodGet, "/api/bookshelf/reading-statuses", nil)
	handler.ReadingStatuses(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
