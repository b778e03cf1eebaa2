package store

import (
	"context"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserBookPG struct {
	db *pgxpool.Pool
}

func NewUserBookPG(db *pgxpool.Pool) *UserBookPG {
	return &UserBookPG{db: db}
}

const userBookSelect = `
	SELECT ub.id, ub.user_id, ub.book_id, ub.status_id, ub.shelf_id,
	       ub.date_added, ub.start_date, ub.finish_date, ub.current_page,
	       ub.reading_progress, COALESCE(ub.notes, ''),
	       b.title, b.isbn13, a.name, COALESCE(g.name, ''),
	       COALESCE(s.name, ''), rs.name
	FROM user_books ub
	JOIN books b ON b.id = ub.book_id
	JOIN authors a ON a.id = b.author_id
	LEFT JOIN genres g ON g.id = b.genre_id
	LEFT JOIN shelves s ON s.id = ub.shelf_id
	JOIN reading_statuses rs ON rs.id = ub.status_id
`

func scanUserBook(row pgx.Row) (entity.UserBook, error) {
	var ub entity.UserBook
	err := row.Scan(&ub.ID, &ub.UserID, &ub.BookID, &ub.StatusID, &ub.ShelfID,
		&ub.DateAdded, &ub.StartDate, &ub.FinishDate, &ub.CurrentPage,
		&ub.ReadingProgress, &ub.Notes,
		&ub.BookTitle, &ub.BookISBN13, &ub.AuthorName, &ub.GenreName,
		&ub.ShelfName, &ub.StatusName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.UserBook{}, usecase.ErrNotFound
		}
		return entity.UserBook{}, err
	}
	return ub, nil
}

func (r *UserBookPG) Create(ctx context.Context, ub *entity.UserBook) error {
	const query = `
	INSERT INTO user_books (id, user_id, book_id, status_id, shelf_id, date_added, start_date, finish_date, current_page, reading_progress, notes)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id
	`
	return r.db.QueryRow(ctx, query, ub.UserID, ub.BookID, ub.StatusID, ub.ShelfID, ub.DateAdded, ub.StartDate, ub.FinishDate, ub.CurrentPage, ub.ReadingProgress, ub.Notes).
		Scan(&ub.ID)
}

func (r *UserBookPG) GetByUserAndBook(ctx context.Context, userID, bookID string) (entity.UserBook, error) {
	const query = userBookSelect + ` WHERE ub.user_id = $1 AND ub.book_id = $2 LIMIT 1`
	return scanUserBook(r.db.QueryRow(ctx, query, userID, bookID))
}

func (r *UserBookPG) Update(ctx context.Context, ub *entity.UserBook) error {
	const query = `
	UPDATE user_books
	SET status_id = $2, shelf_id = $3, start_date = $4, finish_date = $5,
	    current_page = $6, reading_progress = $7, notes = $8
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, ub.ID, ub.StatusID, ub.ShelfID, ub.StartDate, ub.FinishDate, ub.CurrentPage, ub.ReadingProgress, ub.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *UserBookPG) Delete(ctx context.Context, userID, bookID string) error {
	const query = `DELETE FROM user_books WHERE user_id = $1 AND book_id = $2`
	tag, err := r.db.Exec(ctx, query, userID, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *UserBookPG) List(ctx context.Context, userID string, statusID *int, shelfID *string) ([]entity.UserBook, error) {
	query := userBookSelect + ` WHERE ub.user_id = $1`
	args := []any{userID}
	if statusID != nil {
		args = append(args, *statusID)
		query += ` AND ub.status_id = $2`
	}
	if shelfID != nil {
		args = append(args, *shelfID)
		if statusID != nil {
			query += ` AND ub.shelf_id = $3`
		} else {
			query += ` AND ub.shelf_id = $2`
		}
	}
	query += ` ORDER BY ub.date_added ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.UserBook
	for rows.Next() {
		ub, err := scanUserBook(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ub)
	}
	return items, rows.Err()
}

func (r *UserBookPG) Exists(ctx context.Context, userID, bookID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_books WHERE user_id = $1 AND book_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, bookID).Scan(&exists)
	return exists, err
}

func (r *UserBookPG) ExistsWithStatus(ctx context.Context, userID, bookID string, statusID int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_books WHERE user_id = $1 AND book_id = $2 AND status_id = $3)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, bookID, statusID).Scan(&exists)
	return exists, err
}

func (r *UserBookPG) CountByBook(ctx context.Context, bookID string) (int, error) {
	const query = `SELECT COUNT(*) FROM user_books WHERE book_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, bookID).Scan(&count)
	return count, err
}
