package store

import (
	"context"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShelfPG struct {
	db *pgxpool.Pool
}

func NewShelfPG(db *pgxpool.Pool) *ShelfPG {
	return &ShelfPG{db: db}
}

func scanShelf(row pgx.Row) (entity.Shelf, error) {
	var s entity.Shelf
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.IsDefault, &s.DisplayOrder, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Shelf{}, usecase.ErrNotFound
		}
		return entity.Shelf{}, err
	}
	return s, nil
}

const shelfColumns = `id, user_id, name, COALESCE(description, ''), is_default, display_order, created_at`

func (r *ShelfPG) Create(ctx context.Context, s *entity.Shelf) error {
	const query = `
	INSERT INTO shelves (id, user_id, name, description, is_default, display_order)
	VALUES (gen_random_uuid(), $1, $2, $3, false, $4)
	RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query, s.UserID, s.Name, s.Description, s.DisplayOrder).Scan(&s.ID, &s.CreatedAt)
}

// CreateDefaults seeds the three system shelves mirroring the reading
// statuses. They are immutable afterwards.
func (r *ShelfPG) CreateDefaults(ctx context.Context, userID string) error {
	const query = `
	INSERT INTO shelves (id, user_id, name, description, is_default, display_order)
	SELECT gen_random_uuid(), $1, rs.name, rs.description, true, rs.display_order
	FROM reading_statuses rs
	ORDER BY rs.display_order
	`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *ShelfPG) GetByID(ctx context.Context, id string) (entity.Shelf, error) {
	const query = `SELECT ` + shelfColumns + ` FROM shelves WHERE id = $1 LIMIT 1`
	return scanShelf(r.db.QueryRow(ctx, query, id))
}

func (r *ShelfPG) GetByUserAndName(ctx context.Context, userID, name string) (entity.Shelf, error) {
	const query = `SELECT ` + shelfColumns + ` FROM shelves WHERE user_id = $1 AND LOWER(name) = LOWER($2) LIMIT 1`
	return scanShelf(r.db.QueryRow(ctx, query, userID, name))
}

func (r *ShelfPG) ListByUser(ctx context.Context, userID string) ([]entity.Shelf, error) {
	const query = `SELECT ` + shelfColumns + ` FROM shelves WHERE user_id = $1 ORDER BY is_default DESC, display_order ASC, name ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shelves []entity.Shelf
	for rows.Next() {
		s, err := scanShelf(rows)
		if err != nil {
			return nil, err
		}
		shelves = append(shelves, s)
	}
	return shelves, rows.Err()
}

func (r *ShelfPG) Update(ctx context.Context, s *entity.Shelf) error {
	const query = `UPDATE shelves SET name = $2, description = $3, display_order = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Description, s.DisplayOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

// DeleteAndDetach clears shelf_id on referencing library entries before
// deleting the shelf row, in one transaction. Entries are never deleted.
func (r *ShelfPG) DeleteAndDetach(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE user_books SET shelf_id = NULL WHERE shelf_id = $1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM shelves WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return tx.Commit(ctx)
}

type ReadingStatusPG struct {
	db *pgxpool.Pool
}

func NewReadingStatusPG(db *pgxpool.Pool) *ReadingStatusPG {
	return &ReadingStatusPG{db: db}
}

func (r *ReadingStatusPG) List(ctx context.Context) ([]entity.ReadingStatus, error) {
	const query = `SELECT id, name, COALESCE(description, ''), display_order FROM reading_statuses ORDER BY display_order ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []entity.ReadingStatus
	for rows.Next() {
		var s entity.ReadingStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.DisplayOrder); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r *ReadingStatusPG) GetByID(ctx context.Context, id int) (entity.ReadingStatus, error) {
	const query = `SELECT id, name, COALESCE(description, ''), display_order FROM reading_statuses WHERE id = $1 LIMIT 1`
	var s entity.ReadingStatus
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Description, &s.DisplayOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ReadingStatus{}, usecase.ErrNotFound
		}
		return entity.ReadingStatus{}, err
	}
	return s, nil
}
