package store

import (
	"context"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

const bookSelect = `
	SELECT b.id, b.title, b.isbn13, b.author_id, a.name,
	       b.genre_id, COALESCE(g.name, ''), COALESCE(b.description, ''),
	       COALESCE(b.cover_image_url, ''), b.publication_year, b.page_count,
	       b.created_by, b.created_at, b.updated_at
	FROM books b
	JOIN authors a ON a.id = b.author_id
	LEFT JOIN genres g ON g.id = b.genre_id
`

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(&b.ID, &b.Title, &b.ISBN13, &b.AuthorID, &b.AuthorName,
		&b.GenreID, &b.GenreName, &b.Description,
		&b.CoverImageURL, &b.PublicationYear, &b.PageCount,
		&b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (id, title, isbn13, author_id, genre_id, description, cover_image_url, publication_year, page_count, created_by)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, b.Title, b.ISBN13, b.AuthorID, b.GenreID, b.Description, b.CoverImageURL, b.PublicationYear, b.PageCount, b.CreatedBy).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	const query = bookSelect + ` WHERE b.id = $1 LIMIT 1`
	return scanBook(r.db.QueryRow(ctx, query, id))
}

func (r *BookPG) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	const query = bookSelect + ` WHERE b.isbn13 = $1 LIMIT 1`
	return scanBook(r.db.QueryRow(ctx, query, isbn))
}

func (r *BookPG) List(ctx context.Context, p usecase.BookListParams) ([]entity.Book, int, error) {
	const countQuery = `
	SELECT COUNT(*)
	FROM books b
	JOIN authors a ON a.id = b.author_id
	WHERE ($1 = '' OR b.title ILIKE '%' || $1 || '%' OR b.description ILIKE '%' || $1 || '%'
	       OR b.isbn13 LIKE '%' || $1 || '%' OR a.name ILIKE '%' || $1 || '%')
	  AND ($2 = '' OR b.author_id::text = $2)
	  AND ($3 = '' OR b.genre_id::text = $3)
	`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, p.Q, p.AuthorID, p.GenreID).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := `b.title ASC`
	switch p.Sort {
	case "recent":
		orderBy = `b.created_at DESC`
	case "popular":
		orderBy = `(SELECT COUNT(*) FROM user_books ub WHERE ub.book_id = b.id) DESC, b.title ASC`
	}

	query := bookSelect + `
	WHERE ($1 = '' OR b.title ILIKE '%' || $1 || '%' OR b.description ILIKE '%' || $1 || '%'
	       OR b.isbn13 LIKE '%' || $1 || '%' OR a.name ILIKE '%' || $1 || '%')
	  AND ($2 = '' OR b.author_id::text = $2)
	  AND ($3 = '' OR b.genre_id::text = $3)
	ORDER BY ` + orderBy + `
	LIMIT $4 OFFSET $5
	`
	rows, err := r.db.Query(ctx, query, p.Q, p.AuthorID, p.GenreID, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, total, rows.Err()
}

func (r *BookPG) Update(ctx context.Context, b *entity.Book) error {
	const query = `
	UPDATE books
	SET title = $2, isbn13 = $3, author_id = $4, genre_id = $5, description = $6,
	    cover_image_url = $7, publication_year = $8, page_count = $9, updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, b.ID, b.Title, b.ISBN13, b.AuthorID, b.GenreID, b.Description, b.CoverImageURL, b.PublicationYear, b.PageCount).
		Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *BookPG) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM books WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *BookPG) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	const query = `SELECT COUNT(*) FROM books WHERE author_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, authorID).Scan(&count)
	return count, err
}

func (r *BookPG) CountByGenre(ctx context.Context, genreID string) (int, error) {
	const query = `SELECT COUNT(*) FROM books WHERE genre_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, genreID).Scan(&count)
	return count, err
}
