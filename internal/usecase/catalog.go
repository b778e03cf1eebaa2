package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booknest/internal/entity"
)

type AuthorRepository interface {
	Create(ctx context.Context, a *entity.Author) error
	GetByID(ctx context.Context, id string) (entity.Author, error)
	// GetByNameFold matches case-insensitively.
	GetByNameFold(ctx context.Context, name string) (entity.Author, error)
	List(ctx context.Context, q string) ([]entity.Author, error)
	Update(ctx context.Context, a *entity.Author) error
	Delete(ctx context.Context, id string) error
}

type GenreRepository interface {
	Create(ctx context.Context, g *entity.Genre) error
	GetByID(ctx context.Context, id string) (entity.Genre, error)
	GetByNameFold(ctx context.Context, name string) (entity.Genre, error)
	List(ctx context.Context, q string) ([]entity.Genre, error)
	Update(ctx context.Context, g *entity.Genre) error
	Delete(ctx context.Context, id string) error
}

type BookListParams struct {
	Q        string
	AuthorID string
	GenreID  string
	Sort     string // "recent", "popular", default title
	Limit    int
	Offset   int
}

type BookRepository interface {
	Create(ctx context.Context, b *entity.Book) error
	GetByID(ctx context.Context, id string) (entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (entity.Book, error)
	List(ctx context.Context, p BookListParams) ([]entity.Book, int, error)
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id string) error
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	CountByGenre(ctx context.Context, genreID string) (int, error)
}

// CatalogUsecase owns the shared catalog: authors, genres and books, with
// their uniqueness and referential deletion rules.
type CatalogUsecase struct {
	authors   AuthorRepository
	genres    GenreRepository
	books     BookRepository
	userBooks UserBookRepository
	reviews   ReviewRepository
}

func NewCatalogUsecase(authors AuthorRepository, genres GenreRepository, books BookRepository, userBooks UserBookRepository, reviews ReviewRepository) *CatalogUsecase {
	return &CatalogUsecase{
		authors:   authors,
		genres:    genres,
		books:     books,
		userBooks: userBooks,
		reviews:   reviews,
	}
}

// Authors

func (u *CatalogUsecase) ListAuthors(ctx context.Context, q string) ([]entity.Author, error) {
	return u.authors.List(ctx, strings.TrimSpace(q))
}

func (u *CatalogUsecase) GetAuthor(ctx context.Context, id string) (entity.Author, error) {
	return u.authors.GetByID(ctx, id)
}

func (u *CatalogUsecase) CreateAuthor(ctx context.Context, name string) (entity.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Author{}, fmt.Errorf("%w: author name is required", ErrInvalid)
	}
	if err := u.checkAuthorNameFree(ctx, name, ""); err != nil {
		return entity.Author{}, err
	}
	author := entity.Author{Name: name}
	if err := u.authors.Create(ctx, &author); err != nil {
		return entity.Author{}, err
	}
	return author, nil
}

func (u *CatalogUsecase) UpdateAuthor(ctx context.Context, id, name string) (entity.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Author{}, fmt.Errorf("%w: author name is required", ErrInvalid)
	}
	author, err := u.authors.GetByID(ctx, id)
	if err != nil {
		return entity.Author{}, err
	}
	if err := u.checkAuthorNameFree(ctx, name, id); err != nil {
		return entity.Author{}, err
	}
	author.Name = name
	if err := u.authors.Update(ctx, &author); err != nil {
		return entity.Author{}, err
	}
	return author, nil
}

func (u *CatalogUsecase) DeleteAuthor(ctx context.Context, id string) error {
	if _, err := u.authors.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := u.books.CountByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: author has published books", ErrConflict)
	}
	return u.authors.Delete(ctx, id)
}

func (u *CatalogUsecase) AuthorBooks(ctx context.Context, authorID string) ([]entity.Book, error) {
	if _, err := u.authors.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	books, _, err := u.books.List(ctx, BookListParams{AuthorID: authorID, Limit: 100})
	return books, err
}

func (u *CatalogUsecase) checkAuthorNameFree(ctx context.Context, name, excludeID string) error {
	existing, err := u.authors.GetByNameFold(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return fmt.Errorf("%w: an author with this name already exists", ErrConflict)
}

// Genres

func (u *CatalogUsecase) ListGenres(ctx context.Context, q string) ([]entity.Genre, error) {
	return u.genres.List(ctx, strings.TrimSpace(q))
}

func (u *CatalogUsecase) GetGenre(ctx context.Context, id string) (entity.Genre, error) {
	return u.genres.GetByID(ctx, id)
}

func (u *CatalogUsecase) CreateGenre(ctx context.Context, name, description string) (entity.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Genre{}, fmt.Errorf("%w: genre name is required", ErrInvalid)
	}
	if err := u.checkGenreNameFree(ctx, name, ""); err != nil {
		return entity.Genre{}, err
	}
	genre := entity.Genre{Name: name, Description: description}
	if err := u.genres.Create(ctx, &genre); err != nil {
		return entity.Genre{}, err
	}
	return genre, nil
}

func (u *CatalogUsecase) UpdateGenre(ctx context.Context, id, name, description string) (entity.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Genre{}, fmt.Errorf("%w: genre name is required", ErrInvalid)
	}
	genre, err := u.genres.GetByID(ctx, id)
	if err != nil {
		return entity.Genre{}, err
	}
	if err := u.checkGenreNameFree(ctx, name, id); err != nil {
		return entity.Genre{}, err
	}
	genre.Name = name
	genre.Description = description
	if err := u.genres.Update(ctx, &genre); err != nil {
		return entity.Genre{}, err
	}
	return genre, nil
}

func (u *CatalogUsecase) DeleteGenre(ctx context.Context, id string) error {
	if _, err := u.genres.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := u.books.CountByGenre(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: genre has books", ErrConflict)
	}
	return u.genres.Delete(ctx, id)
}

func (u *CatalogUsecase) checkGenreNameFree(ctx context.Context, name, excludeID string) error {
	existing, err := u.genres.GetByNameFold(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return fmt.Errorf("%w: a genre with this name already exists", ErrConflict)
}

// Books

func (u *CatalogUsecase) ListBooks(ctx context.Context, p BookListParams) ([]entity.Book, int, error) {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return u.books.List(ctx, p)
}

// GetBook returns the book with its public-review aggregate merged in.
func (u *CatalogUsecase) GetBook(ctx context.Context, id string) (entity.Book, error) {
	book, err := u.books.GetByID(ctx, id)
	if err != nil {
		return entity.Book{}, err
	}
	avg, count, err := u.reviews.RatingAggregate(ctx, id)
	if err != nil {
		return entity.Book{}, err
	}
	book.AverageRating = avg
	book.ReviewCount = count
	return book, nil
}

type BookParams struct {
	Title           string
	ISBN13          string
	AuthorID        string
	GenreID         *string
	Description     string
	CoverImageURL   string
	PublicationYear *int
	PageCount       *int
}

func (u *CatalogUsecase) CreateBook(ctx context.Context, creatorID string, p BookParams) (entity.Book, error) {
	if err := u.checkISBNFree(ctx, p.ISBN13); err != nil {
		return entity.Book{}, err
	}
	if _, err := u.authors.GetByID(ctx, p.AuthorID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return entity.Book{}, fmt.Errorf("%w: the specified author does not exist", ErrInvalid)
		}
		return entity.Book{}, err
	}
	if p.GenreID != nil {
		if _, err := u.genres.GetByID(ctx, *p.GenreID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return entity.Book{}, fmt.Errorf("%w: the specified genre does not exist", ErrInvalid)
			}
			return entity.Book{}, err
		}
	}

	book := entity.Book{
		Title:           strings.TrimSpace(p.Title),
		ISBN13:          p.ISBN13,
		AuthorID:        p.AuthorID,
		GenreID:         p.GenreID,
		Description:     p.Description,
		CoverImageURL:   p.CoverImageURL,
		PublicationYear: p.PublicationYear,
		PageCount:       p.PageCount,
		CreatedBy:       &creatorID,
	}
	if err := u.books.Create(ctx, &book); err != nil {
		return entity.Book{}, err
	}
	return u.GetBook(ctx, book.ID)
}

func (u *CatalogUsecase) UpdateBook(ctx context.Context, id string, p BookParams) (entity.Book, error) {
	book, err := u.books.GetByID(ctx, id)
	if err != nil {
		return entity.Book{}, err
	}
	// Re-check ISBN uniqueness only when the value actually changes.
	if p.ISBN13 != book.ISBN13 {
		if err := u.checkISBNFree(ctx, p.ISBN13); err != nil {
			return entity.Book{}, err
		}
	}
	if _, err := u.authors.GetByID(ctx, p.AuthorID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return entity.Book{}, fmt.Errorf("%w: the specified author does not exist", ErrInvalid)
		}
		return entity.Book{}, err
	}
	if p.GenreID != nil {
		if _, err := u.genres.GetByID(ctx, *p.GenreID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return entity.Book{}, fmt.Errorf("%w: the specified genre does not exist", ErrInvalid)
			}
			return entity.Book{}, err
		}
	}

	book.Title = strings.TrimSpace(p.Title)
	book.ISBN13 = p.ISBN13
	book.AuthorID = p.AuthorID
	book.GenreID = p.GenreID
	book.Description = p.Description
	book.CoverImageURL = p.CoverImageURL
	book.PublicationYear = p.PublicationYear
	book.PageCount = p.PageCount

	if err := u.books.Update(ctx, &book); err != nil {
		return entity.Book{}, err
	}
	return u.GetBook(ctx, id)
}

func (u *CatalogUsecase) DeleteBook(ctx context.Context, id string) error {
	if _, err := u.books.GetByID(ctx, id); err != nil {
		return err
	}
	entries, err := u.userBooks.CountByBook(ctx, id)
	if err != nil {
		return err
	}
	reviews, err := u.reviews.CountByBook(ctx, id)
	if err != nil {
		return err
	}
	if entries > 0 || reviews > 0 {
		return fmt.Errorf("%w: book has library entries or reviews", ErrConflict)
	}
	return u.books.Delete(ctx, id)
}

func (u *CatalogUsecase) checkISBNFree(ctx context.Context, isbn string) error {
	_, err := u.books.GetByISBN(ctx, isbn)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: a book with this ISBN already exists", ErrConflict)
}
