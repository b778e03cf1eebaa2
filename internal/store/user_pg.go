package store

import (
	"context"
	"errors"

	"booknest/internal/entity"
	"booknest/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

const userColumns = `id, email, username, password, role, first_name, last_name, profile_picture_url, is_active, registration_date, last_login_date, created_at, updated_at`

func scanUser(row pgx.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.Role, &u.FirstName, &u.LastName, &u.ProfilePictureURL, &u.IsActive, &u.RegistrationDate, &u.LastLoginDate, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}

func (r *UserPG) Create(ctx context.Context, user *entity.User) error {
	const query = `
	INSERT INTO users (id, email, username, password, role, first_name, last_name, is_active)
	VALUES (gen_random_uuid(), $1, $2, $3, COALESCE(NULLIF($4, ''), 'READER'), $5, $6, $7)
	RETURNING id, role, registration_date, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.Email, user.Username, user.Password, string(user.Role), user.FirstName, user.LastName, user.IsActive).
		Scan(&user.ID, &user.Role, &user.RegistrationDate, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserPG) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserPG) Update(ctx context.Context, user *entity.User) error {
	const query = `
	UPDATE users
	SET email = $2, username = $3, password = $4, first_name = $5, last_name = $6,
	    profile_picture_url = $7, is_active = $8, updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, user.ID, user.Email, user.Username, user.Password, user.FirstName, user.LastName, user.ProfilePictureURL, user.IsActive).
		Scan(&user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *UserPG) UpdateLastLogin(ctx context.Context, id string) error {
	const query = `UPDATE users SET last_login_date = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *UserPG) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
