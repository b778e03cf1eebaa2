package store

import (
	"context"
	"database/sql"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

const reviewSelect = `
	SELECT r.id, r.user_id, u.username, r.book_id, b.title,
	       r.review_text, r.rating, r.is_public, r.date_reviewed, r.updated_at,
	       (SELECT COUNT(*) FROM comments c WHERE c.review_id = r.id)
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN books b ON b.id = r.book_id
`

func scanReview(row pgx.Row) (entity.Review, error) {
	var rv entity.Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.Username, &rv.BookID, &rv.BookTitle,
		&rv.ReviewText, &rv.Rating, &rv.IsPublic, &rv.DateReviewed, &rv.UpdatedAt,
		&rv.CommentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Review{}, usecase.ErrNotFound
		}
		return entity.Review{}, err
	}
	return rv, nil
}

func (r *ReviewPG) Create(ctx context.Context, rv *entity.Review) error {
	const query = `
	INSERT INTO reviews (id, user_id, book_id, review_text, rating, is_public)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
	RETURNING id, date_reviewed, updated_at
	`
	return r.db.QueryRow(ctx, query, rv.UserID, rv.BookID, rv.ReviewText, rv.Rating, rv.IsPublic).
		Scan(&rv.ID, &rv.DateReviewed, &rv.UpdatedAt)
}

func (r *ReviewPG) GetByID(ctx context.Context, id string) (entity.Review, error) {
	const query = reviewSelect + ` WHERE r.id = $1 LIMIT 1`
	return scanReview(r.db.QueryRow(ctx, query, id))
}

func (r *ReviewPG) GetByUserAndBook(ctx context.Context, userID, bookID string) (entity.Review, error) {
	const query = reviewSelect + ` WHERE r.user_id = $1 AND r.book_id = $2 LIMIT 1`
	return scanReview(r.db.QueryRow(ctx, query, userID, bookID))
}

func (r *ReviewPG) Update(ctx context.Context, rv *entity.Review) error {
	const query = `
	UPDATE reviews SET review_text = $2, rating = $3, is_public = $4, updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, rv.ID, rv.ReviewText, rv.Rating, rv.IsPublic).Scan(&rv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

// Delete removes the review row; comments go with it via the cascading
// foreign key.
func (r *ReviewPG) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ReviewPG) ListByBook(ctx context.Context, bookID string, publicOnly bool) ([]entity.Review, error) {
	const query = reviewSelect + ` WHERE r.book_id = $1 AND (NOT $2 OR r.is_public) ORDER BY r.date_reviewed DESC`
	return r.list(ctx, query, bookID, publicOnly)
}

func (r *ReviewPG) ListByUser(ctx context.Context, userID string, publicOnly bool) ([]entity.Review, error) {
	const query = reviewSelect + ` WHERE r.user_id = $1 AND (NOT $2 OR r.is_public) ORDER BY r.date_reviewed DESC`
	return r.list(ctx, query, userID, publicOnly)
}

func (r *ReviewPG) ListRecent(ctx context.Context, limit int) ([]entity.Review, error) {
	const query = reviewSelect + ` WHERE r.is_public ORDER BY r.date_reviewed DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *ReviewPG) list(ctx context.Context, query string, args ...any) ([]entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewPG) CountByBook(ctx context.Context, bookID string) (int, error) {
	const query = `SELECT COUNT(*) FROM reviews WHERE book_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, bookID).Scan(&count)
	return count, err
}

// RatingAggregate averages public reviews only. The average is nil, not
// zero, when the book has no public reviews.
func (r *ReviewPG) RatingAggregate(ctx context.Context, bookID string) (*float64, int, error) {
	const query = `SELECT AVG(rating)::FLOAT, COUNT(*) FROM reviews WHERE book_id = $1 AND is_public`
	var avg sql.NullFloat64
	var count int
	if err := r.db.QueryRow(ctx, query, bookID).Scan(&avg, &count); err != nil {
		return nil, 0, err
	}
	if !avg.Valid {
		return nil, 0, nil
	}
	return &avg.Float64, count, nil
}

// RatingDistribution always returns all five star keys.
func (r *ReviewPG) RatingDistribution(ctx context.Context, bookID string) (map[int]int, error) {
	const query = `SELECT rating, COUNT(*) FROM reviews WHERE book_id = $1 AND is_public GROUP BY rating`
	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for rows.Next() {
		var star, count int
		if err := rows.Scan(&star, &count); err != nil {
			return nil, err
		}
		dist[star] = count
	}
	return dist, rows.Err()
}
