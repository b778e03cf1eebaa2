package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"booknest/internal/auth"
	"booknest/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	GetByUsername(ctx context.Context, username string) (entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdateLastLogin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type IdentityUsecase struct {
	users   UserRepository
	shelves ShelfRepository
}

func NewIdentityUsecase(users UserRepository, shelves ShelfRepository) *IdentityUsecase {
	return &IdentityUsecase{users: users, shelves: shelves}
}

type RegisterParams struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a reader account and seeds its three default shelves.
func (u *IdentityUsecase) Register(ctx context.Context, p RegisterParams) (entity.User, error) {
	p.Email = strings.TrimSpace(p.Email)
	p.Username = strings.TrimSpace(p.Username)

	if err := u.checkEmailFree(ctx, p.Email, ""); err != nil {
		return entity.User{}, err
	}
	if err := u.checkUsernameFree(ctx, p.Username, ""); err != nil {
		return entity.User{}, err
	}

	hashed, err := auth.HashPassword(p.Password)
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		Email:     p.Email,
		Username:  p.Username,
		Password:  hashed,
		Role:      entity.RoleReader,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		IsActive:  true,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		return entity.User{}, err
	}
	if err := u.shelves.CreateDefaults(ctx, user.ID); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Authenticate verifies credentials and stamps the last-login date. It
// returns ErrNotFound for unknown, inactive, or mismatched credentials so
// the handler can answer with one generic unauthorized message.
func (u *IdentityUsecase) Authenticate(ctx context.Context, email, password string) (entity.User, error) {
	user, err := u.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return entity.User{}, err
	}
	if !user.IsActive || !auth.VerifyPassword(user.Password, password) {
		return entity.User{}, ErrNotFound
	}
	if err := u.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

func (u *IdentityUsecase) GetUser(ctx context.Context, id string) (entity.User, error) {
	return u.users.GetByID(ctx, id)
}

type UpdateProfileParams struct {
	Username          *string
	Email             *string
	FirstName         *string
	LastName          *string
	ProfilePictureURL *string
	IsActive          *bool
}

// UpdateProfile applies only the supplied fields, re-checking email and
// username uniqueness when either changes.
func (u *IdentityUsecase) UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (entity.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entity.User{}, err
	}

	if p.Email != nil {
		email := strings.TrimSpace(*p.Email)
		if email != user.Email {
			if err := u.checkEmailFree(ctx, email, userID); err != nil {
				return entity.User{}, err
			}
		}
		user.Email = email
	}
	if p.Username != nil {
		username := strings.TrimSpace(*p.Username)
		if username != user.Username {
			if err := u.checkUsernameFree(ctx, username, userID); err != nil {
				return entity.User{}, err
			}
		}
		user.Username = username
	}
	if p.FirstName != nil {
		user.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		user.LastName = *p.LastName
	}
	if p.ProfilePictureURL != nil {
		user.ProfilePictureURL = *p.ProfilePictureURL
	}
	if p.IsActive != nil {
		user.IsActive = *p.IsActive
	}

	if err := u.users.Update(ctx, &user); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

func (u *IdentityUsecase) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(user.Password, current) {
		return fmt.Errorf("%w: current password is incorrect", ErrForbidden)
	}
	hashed, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hashed
	return u.users.Update(ctx, &user)
}

func (u *IdentityUsecase) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return u.users.Delete(ctx, userID)
}

func (u *IdentityUsecase) checkEmailFree(ctx context.Context, email, excludeID string) error {
	existing, err := u.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return fmt.Errorf("%w: email already registered", ErrConflict)
}

func (u *IdentityUsecase) checkUsernameFree(ctx context.Context, username, excludeID string) error {
	existing, err := u.users.GetByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return fmt.Errorf("%w: username already taken", ErrConflict)
}
