package usecase_test

import (
	"context"
	"testing"

	"booknest/internal/entity"
	"booknest/internal/usecase"
	"booknest/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAuthorID = "55555555-5555-4555-8555-555555555555"
	testGenreID  = "66666666-6666-4666-8666-666666666666"
	testISBN     = "9780306406157"
)

type catalogMocks struct {
	authors   *mocks.MockAuthorRepository
	genres    *mocks.MockGenreRepository
	books     *mocks.MockBookRepository
	userBooks *mocks.MockUserBookRepository
	reviews   *mocks.MockReviewRepository
}

func newCatalogUsecase(ctrl *gomock.Controller) (*usecase.CatalogUsecase, catalogMocks) {
	m := catalogMocks{
		authors:   mocks.NewMockAuthorRepository(ctrl),
		genres:    mocks.NewMockGenreRepository(ctrl),
		books:     mocks.NewMockBookRepository(ctrl),
		userBooks: mocks.NewMockUserBookRepository(ctrl),
		reviews:   mocks.NewMockReviewRepository(ctrl),
	}
	return usecase.NewCatalogUsecase(m.authors, m.genres, m.books, m.userBooks, m.reviews), m
}

func TestCatalogUsecase_CreateAuthor(t *testing.T) {
	t.Run("happy path trims the name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.authors.EXPECT().GetByNameFold(gomock.Any(), "Jane Austen").
			Return(entity.Author{}, usecase.ErrNotFound)
		m.authors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		author, err := u.CreateAuthor(context.Background(), "  Jane Austen  ")
		require.NoError(t, err)
		assert.Equal(t, "Jane Austen", author.Name)
	})

	t.Run("duplicate name conflicts regardless of case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.authors.EXPECT().GetByNameFold(gomock.Any(), "JANE AUSTEN").
			Return(entity.Author{ID: testAuthorID, Name: "Jane Austen"}, nil)

		_, err := u.CreateAuthor(context.Background(), "JANE AUSTEN")
		assert.ErrorIs(t, err, usecase.ErrConflict)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, _ := newCatalogUsecase(ctrl)
		_, err := u.CreateAuthor(context.Background(), "   ")
		assert.ErrorIs(t, err, usecase.ErrInvalid)
	})
}

func TestCatalogUsecase_UpdateAuthor_ExcludesSelfFromNameCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u, m := newCatalogUsecase(ctrl)
	existing := entity.Author{ID: testAuthorID, Name: "jane austen"}
	m.authors.EXPECT().GetByID(gomock.Any(), testAuthorID).Return(existing, nil)
	// Re-casing the author's own name only finds itself, which is fine.
	m.authors.EXPECT().GetByNameFold(gomock.Any(), "Jane Austen").Return(existing, nil)
	m.authors.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	author, err := u.UpdateAuthor(context.Background(), testAuthorID, "Jane Austen")
	require.NoError(t, err)
	assert.Equal(t, "Jane Austen", author.Name)
}

func TestCatalogUsecase_DeleteAuthor_GuardedByBooks(t *testing.T) {
	t.Run("author with books conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.authors.EXPECT().GetByID(gomock.Any(), testAuthorID).Return(entity.Author{ID: testAuthorID}, nil)
		m.books.EXPECT().CountByAuthor(gomock.Any(), testAuthorID).Return(3, nil)

		err := u.DeleteAuthor(context.Background(), testAuthorID)
		assert.ErrorIs(t, err, usecase.ErrConflict)
	})

	t.Run("author without books deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.authors.EXPECT().GetByID(gomock.Any(), testAuthorID).Return(entity.Author{ID: testAuthorID}, nil)
		m.books.EXPECT().CountByAuthor(gomock.Any(), testAuthorID).Return(0, nil)
		m.authors.EXPECT().Delete(gomock.Any(), testAuthorID).Return(nil)

		assert.NoError(t, u.DeleteAuthor(context.Background(), testAuthorID))
	})
}

func TestCatalogUsecase_DeleteGenre_GuardedByBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u, m := newCatalogUsecase(ctrl)
	m.genres.EXPECT().GetByID(gomock.Any(), testGenreID).Return(entity.Genre{ID: testGenreID}, nil)
	m.books.EXPECT().CountByGenre(gomock.Any(), testGenreID).Return(1, nil)

	err := u.DeleteGenre(context.Background(), testGenreID)
	assert.ErrorIs(t, err, usecase.ErrConflict)
}

func TestCatalogUsecase_CreateBook(t *testing.T) {
	params := usecase.BookParams{
		Title:    "Persuasion",
		ISBN13:   testISBN,
		AuthorID: testAuthorID,
	}

	t.Run("duplicate ISBN conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.books.EXPECT().GetByISBN(gomock.Any(), testISBN).Return(entity.Book{ID: testBookID}, nil)

		_, err := u.CreateBook(context.Background(), testUserID, params)
		assert.ErrorIs(t, err, usecase.ErrConflict)
	})

	t.Run("missing author is invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.books.EXPECT().GetByISBN(gomock.Any(), testISBN).Return(entity.Book{}, usecase.ErrNotFound)
		m.authors.EXPECT().GetByID(gomock.Any(), testAuthorID).Return(entity.Author{}, usecase.ErrNotFound)

		_, err := u.CreateBook(context.Background(), testUserID, params)
		assert.ErrorIs(t, err, usecase.ErrInvalid)
	})

	t.Run("happy path records the creator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.books.EXPECT().GetByISBN(gomock.Any(), testISBN).Return(entity.Book{}, usecase.ErrNotFound)
		m.authors.EXPECT().GetByID(gomock.Any(), testAuthorID).Return(entity.Author{ID: testAuthorID}, nil)
		m.books.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *entity.Book) error {
				require.NotNil(t, b.CreatedBy)
				assert.Equal(t, testUserID, *b.CreatedBy)
				b.ID = testBookID
				return nil
			})
		m.books.EXPECT().GetByID(gomock.Any(), testBookID).Return(entity.Book{ID: testBookID, Title: "Persuasion"}, nil)
		m.reviews.EXPECT().RatingAggregate(gomock.Any(), testBookID).Return(nil, 0, nil)

		book, err := u.CreateBook(context.Background(), testUserID, params)
		require.NoError(t, err)
		assert.Equal(t, testBookID, book.ID)
		assert.Nil(t, book.AverageRating)
	})
}

func TestCatalogUsecase_UpdateBook_ISBNRecheckOnlyOnChange(t *testing.T) {
	t.Run("same ISBN skips the uniqueness probe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.books.EXPECT().GetByID(gomock.Any(), testBookID).
			Return(entity.Book{ID: testBookID, ISBN13: testISBN, AuthorID: testAuthorID}, nil)
		// No GetByISBN expectation: probing it would fail the test.
		m.authors.EXPECT().GetByID(gomock.Any(), testAuthorID).Return(entity.Author{ID: testAuthorID}, nil)
		m.books.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.books.EXPECT().GetByID(gomock.Any(), testBookID).
			Return(entity.Book{ID: testBookID, Title: "New Title", ISBN13: testISBN}, nil)
		m.reviews.EXPECT().RatingAggregate(gomock.Any(), testBookID).Return(nil, 0, nil)

		_, err := u.UpdateBook(context.Background(), testBookID, usecase.BookParams{
			Title:    "New Title",
			ISBN13:   testISBN,
			AuthorID: testAuthorID,
		})
		assert.NoError(t, err)
	})

	t.Run("changed ISBN is rechecked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		u, m := newCatalogUsecase(ctrl)
		m.books.EXPECT().GetByID(gomock.Any(), testBookID).
			Return(entity.Book{ID: testBookID, ISBN13: testISBN, AuthorID: testAuthorID}, nil)
		m.books.EXPECT().GetByISBN(gomock.Any(), "9781861972712").
			Return(entity.Book{ID: "other-book"}, nil)

		_, err := u.UpdateBook(context.Background(), testBookID, usecase.BookParams{
			Title:    "New Title",
			ISBN13:   "9781861972712",
			AuthorID: testAuthorID,
		})
		assert.ErrorIs(t, err, usecase.ErrConflict)
	})
}

func TestCatalogUsecase_DeleteBook_Guards(t *testing.T) {
	tests := []struct {
		name    string
		entries int
		reviews int
		wantErr error
	}{
		{name: "library entries block deletion", entries: 2, wantErr: usecase.ErrConflict},
		{name: "reviews block deletion", reviews: 1, wantErr: usecase.ErrConflict},
		{name: "unreferenced book deletes", entries: 0, reviews: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			u, m := newCatalogUsecase(ctrl)
			m.books.EXPECT().GetByID(gomock.Any(), testBookID).Return(entity.Book{ID: testBookID}, nil)
			m.userBooks.EXPECT().CountByBook(gomock.Any(), testBookID).Return(tt.entries, nil)
			m.reviews.EXPECT().CountByBook(gomock.Any(), testBookID).Return(tt.reviews, nil)
			if tt.wantErr == nil {
				m.books.EXPECT().Delete(gomock.Any(), testBookID).Return(nil)
			}

			err := u.DeleteBook(context.Background(), testBookID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogUsecase_GetBook_MergesRatingAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	avg := 3.7
	u, m := newCatalogUsecase(ctrl)
	m.books.EXPECT().GetByID(gomock.Any(), testBookID).Return(entity.Book{ID: testBookID}, nil)
	m.reviews.EXPECT().RatingAggregate(gomock.Any(), testBookID).Return(&avg, 12, nil)

	book, err := u.GetBook(context.Background(), testBookID)
	require.NoError(t, err)
	require.NotNil(t, book.AverageRating)
	assert.Equal(t, 3.7, *book.AverageRating)
	assert.Equal(t, 12, book.ReviewCount)
}

func TestCatalogUsecase_ListBooks_ClampsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	u, m := newCatalogUsecase(ctrl)
	m.books.EXPECT().List(gomock.Any(), usecase.BookListParams{Limit: 20, Offset: 0}).Return(nil, 0, nil)

	_, _, err := u.ListBooks(context.Background(), usecase.BookListParams{Limit: 500, Offset: -1})
	assert.NoError(t, err)
}
