package store

import (
	"context"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentPG struct {
	db *pgxpool.Pool
}

func NewCommentPG(db *pgxpool.Pool) *CommentPG {
	return &CommentPG{db: db}
}

const commentSelect = `
	SELECT c.id, c.review_id, c.user_id, u.username, c.comment_text,
	       c.date_commented, c.is_edited, c.edited_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
`

func scanComment(row pgx.Row) (entity.Comment, error) {
	var c entity.Comment
	err := row.Scan(&c.ID, &c.ReviewID, &c.UserID, &c.Username, &c.CommentText,
		&c.DateCommented, &c.IsEdited, &c.EditedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Comment{}, usecase.ErrNotFound
		}
		return entity.Comment{}, err
	}
	return c, nil
}

func (r *CommentPG) Create(ctx context.Context, c *entity.Comment) error {
	const query = `
	INSERT INTO comments (id, review_id, user_id, comment_text)
	VALUES (gen_random_uuid(), $1, $2, $3)
	RETURNING id, date_commented
	`
	return r.db.QueryRow(ctx, query, c.ReviewID, c.UserID, c.CommentText).Scan(&c.ID, &c.DateCommented)
}

func (r *CommentPG) GetByID(ctx context.Context, id string) (entity.Comment, error) {
	const query = commentSelect + ` WHERE c.id = $1 LIMIT 1`
	return scanComment(r.db.QueryRow(ctx, query, id))
}

func (r *CommentPG) Update(ctx context.Context, c *entity.Comment) error {
	const query = `UPDATE comments SET comment_text = $2, is_edited = $3, edited_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, c.ID, c.CommentText, c.IsEdited, c.EditedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *CommentPG) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM comments WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *CommentPG) ListByReview(ctx context.Context, reviewID string) ([]entity.Comment, error) {
	const query = commentSelect + ` WHERE c.review_id = $1 ORDER BY c.date_commented ASC`
	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []entity.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
