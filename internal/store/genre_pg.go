package store

import (
	"context"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GenrePG struct {
	db *pgxpool.Pool
}

func NewGenrePG(db *pgxpool.Pool) *GenrePG {
	return &GenrePG{db: db}
}

func (r *GenrePG) Create(ctx context.Context, g *entity.Genre) error {
	const query = `
	INSERT INTO genres (id, name, description)
	VALUES (gen_random_uuid(), $1, $2)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, g.Name, g.Description).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GenrePG) GetByID(ctx context.Context, id string) (entity.Genre, error) {
	const query = `
	SELECT g.id, g.name, COALESCE(g.description, ''), COUNT(b.id), g.created_at, g.updated_at
	FROM genres g
	LEFT JOIN books b ON b.genre_id = g.id
	WHERE g.id = $1
	GROUP BY g.id
	`
	var g entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.Description, &g.BookCount, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Genre{}, usecase.ErrNotFound
		}
		return entity.Genre{}, err
	}
	return g, nil
}

func (r *GenrePG) GetByNameFold(ctx context.Context, name string) (entity.Genre, error) {
	const query = `SELECT id, name, COALESCE(description, ''), created_at, updated_at FROM genres WHERE LOWER(name) = LOWER($1) LIMIT 1`
	var g entity.Genre
	err := r.db.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Genre{}, usecase.ErrNotFound
		}
		return entity.Genre{}, err
	}
	return g, nil
}

func (r *GenrePG) List(ctx context.Context, q string) ([]entity.Genre, error) {
	const query = `
	SELECT g.id, g.name, COALESCE(g.description, ''), COUNT(b.id), g.created_at, g.updated_at
	FROM genres g
	LEFT JOIN books b ON b.genre_id = g.id
	WHERE $1 = '' OR g.name ILIKE '%' || $1 || '%'
	GROUP BY g.id
	ORDER BY g.name ASC
	`
	rows, err := r.db.Query(ctx, query, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var genres []entity.Genre
	for rows.Next() {
		var g entity.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.BookCount, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *GenrePG) Update(ctx context.Context, g *entity.Genre) error {
	const query = `UPDATE genres SET name = $2, description = $3, updated_at = NOW() WHERE id = $1 RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, g.ID, g.Name, g.Description).Scan(&g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *GenrePG) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM genres WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
