package store

import (
	"context"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

func (r *AuthorPG) Create(ctx context.Context, a *entity.Author) error {
	const query = `
	INSERT INTO authors (id, name)
	VALUES (gen_random_uuid(), $1)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, a.Name).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AuthorPG) GetByID(ctx context.Context, id string) (entity.Author, error) {
	const query = `
	SELECT a.id, a.name, COUNT(b.id), a.created_at, a.updated_at
	FROM authors a
	LEFT JOIN books b ON b.author_id = a.id
	WHERE a.id = $1
	GROUP BY a.id
	`
	var a entity.Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.BookCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *AuthorPG) GetByNameFold(ctx context.Context, name string) (entity.Author, error) {
	const query = `SELECT id, name, created_at, updated_at FROM authors WHERE LOWER(name) = LOWER($1) LIMIT 1`
	var a entity.Author
	err := r.db.QueryRow(ctx, query, name).Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *AuthorPG) List(ctx context.Context, q string) ([]entity.Author, error) {
	const query = `
	SELECT a.id, a.name, COUNT(b.id), a.created_at, a.updated_at
	FROM authors a
	LEFT JOIN books b ON b.author_id = a.id
	WHERE $1 = '' OR a.name ILIKE '%' || $1 || '%'
	GROUP BY a.id
	ORDER BY a.name ASC
	`
	rows, err := r.db.Query(ctx, query, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BookCount, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorPG) Update(ctx context.Context, a *entity.Author) error {
	const query = `UPDATE authors SET name = $2, updated_at = NOW() WHERE id = $1 RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, a.ID, a.Name).Scan(&a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *AuthorPG) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM authors WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
