package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"booknest/internal/entity"
)

type UserBookRepository interface {
	Create(ctx context.Context, ub *entity.UserBook) error
	GetByUserAndBook(ctx context.Context, userID, bookID string) (entity.UserBook, error)
	Update(ctx context.Context, ub *entity.UserBook) error
	Delete(ctx context.Context, userID, bookID string) error
	// List filters by status and/or shelf when non-nil, ordered by date added.
	List(ctx context.Context, userID string, statusID *int, shelfID *string) ([]entity.UserBook, error)
	Exists(ctx context.Context, userID, bookID string) (bool, error)
	ExistsWithStatus(ctx context.Context, userID, bookID string, statusID int) (bool, error)
	CountByBook(ctx context.Context, bookID string) (int, error)
}

type ShelfRepository interface {
	Create(ctx context.Context, s *entity.Shelf) error
	// CreateDefaults seeds the three immutable system shelves for a new user.
	CreateDefaults(ctx context.Context, userID string) error
	GetByID(ctx context.Context, id string) (entity.Shelf, error)
	// GetByUserAndName matches the shelf name case-insensitively.
	GetByUserAndName(ctx context.Context, userID, name string) (entity.Shelf, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Shelf, error)
	Update(ctx context.Context, s *entity.Shelf) error
	// DeleteAndDetach nulls shelf_id on every referencing library entry and
	// deletes the shelf, in one transaction. Entries are never deleted.
	DeleteAndDetach(ctx context.Context, id string) error
}

type ReadingStatusRepository interface {
	List(ctx context.Context) ([]entity.ReadingStatus, error)
	GetByID(ctx context.Context, id int) (entity.ReadingStatus, error)
}

// LibraryUsecase owns the per-user reading lifecycle: one UserBook per
// (user, book) moving through Want to Read / Currently Reading / Read,
// plus custom shelf bookkeeping.
type LibraryUsecase struct {
	userBooks UserBookRepository
	shelves   ShelfRepository
	statuses  ReadingStatusRepository
	books     BookRepository
}

func NewLibraryUsecase(userBooks UserBookRepository, shelves ShelfRepository, statuses ReadingStatusRepository, books BookRepository) *LibraryUsecase {
	return &LibraryUsecase{
		userBooks: userBooks,
		shelves:   shelves,
		statuses:  statuses,
		books:     books,
	}
}

// applyStatusTransition stamps dates for a status change. Dates are sticky
// history: moving back to Want to Read clears nothing.
func applyStatusTransition(ub *entity.UserBook, newStatusID int, now time.Time) {
	ub.StatusID = newStatusID
	switch newStatusID {
	case entity.StatusCurrentlyReading:
		if ub.StartDate == nil {
			ub.StartDate = &now
		}
		ub.FinishDate = nil
	case entity.StatusRead:
		if ub.StartDate == nil {
			ub.StartDate = &now
		}
		ub.FinishDate = &now
		ub.ReadingProgress = 100
	case entity.StatusWantToRead:
	}
}

// AddBook upserts the (user, book) library entry: absent creates it,
// present applies the status transition and optional shelf move instead of
// failing.
func (u *LibraryUsecase) AddBook(ctx context.Context, userID, bookID string, statusID int, shelfID *string) (entity.UserBook, error) {
	if !entity.ValidReadingStatus(statusID) {
		return entity.UserBook{}, fmt.Errorf("%w: unknown reading status %d", ErrInvalid, statusID)
	}
	if _, err := u.books.GetByID(ctx, bookID); err != nil {
		return entity.UserBook{}, err
	}
	if shelfID != nil {
		if err := u.requireOwnShelf(ctx, userID, *shelfID); err != nil {
			return entity.UserBook{}, err
		}
	}

	now := time.Now().UTC()

	existing, err := u.userBooks.GetByUserAndBook(ctx, userID, bookID)
	if err == nil {
		applyStatusTransition(&existing, statusID, now)
		if shelfID != nil {
			existing.ShelfID = shelfID
		}
		if err := u.userBooks.Update(ctx, &existing); err != nil {
			return entity.UserBook{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return entity.UserBook{}, err
	}

	ub := entity.UserBook{
		UserID:    userID,
		BookID:    bookID,
		ShelfID:   shelfID,
		DateAdded: now,
	}
	applyStatusTransition(&ub, statusID, now)
	if err := u.userBooks.Create(ctx, &ub); err != nil {
		return entity.UserBook{}, err
	}
	return ub, nil
}

func (u *LibraryUsecase) UpdateStatus(ctx context.Context, userID, bookID string, newStatusID int) (entity.UserBook, error) {
	if !entity.ValidReadingStatus(newStatusID) {
		return entity.UserBook{}, fmt.Errorf("%w: unknown reading status %d", ErrInvalid, newStatusID)
	}
	ub, err := u.userBooks.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return entity.UserBook{}, err
	}
	applyStatusTransition(&ub, newStatusID, time.Now().UTC())
	if err := u.userBooks.Update(ctx, &ub); err != nil {
		return entity.UserBook{}, err
	}
	return ub, nil
}

type ProgressUpdate struct {
	CurrentPage     *int
	ReadingProgress *float64
	Notes           *string
}

// UpdateProgress applies only the supplied fields. Reaching 100% when the
// entry is not yet Read promotes it and stamps the finish date; anything
// below 100 never touches the status.
func (u *LibraryUsecase) UpdateProgress(ctx context.Context, userID, bookID string, p ProgressUpdate) (entity.UserBook, error) {
	if p.ReadingProgress != nil && (*p.ReadingProgress < 0 || *p.ReadingProgress > 100) {
		return entity.UserBook{}, fmt.Errorf("%w: reading progress must be between 0 and 100", ErrInvalid)
	}
	if p.CurrentPage != nil && *p.CurrentPage < 0 {
		return entity.UserBook{}, fmt.Errorf("%w: current page cannot be negative", ErrInvalid)
	}

	ub, err := u.userBooks.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return entity.UserBook{}, err
	}

	if p.CurrentPage != nil {
		ub.CurrentPage = p.CurrentPage
	}
	if p.ReadingProgress != nil {
		ub.ReadingProgress = *p.ReadingProgress
	}
	if p.Notes != nil {
		ub.Notes = *p.Notes
	}

	if p.ReadingProgress != nil && *p.ReadingProgress >= 100 && ub.StatusID != entity.StatusRead {
		now := time.Now().UTC()
		ub.StatusID = entity.StatusRead
		ub.FinishDate = &now
	}

	if err := u.userBooks.Update(ctx, &ub); err != nil {
		return entity.UserBook{}, err
	}
	return ub, nil
}

func (u *LibraryUsecase) RemoveBook(ctx context.Context, userID, bookID string) error {
	if _, err := u.userBooks.GetByUserAndBook(ctx, userID, bookID); err != nil {
		return err
	}
	return u.userBooks.Delete(ctx, userID, bookID)
}

func (u *LibraryUsecase) GetUserBook(ctx context.Context, userID, bookID string) (entity.UserBook, error) {
	return u.userBooks.GetByUserAndBook(ctx, userID, bookID)
}

func (u *LibraryUsecase) InLibrary(ctx context.Context, userID, bookID string) (bool, error) {
	return u.userBooks.Exists(ctx, userID, bookID)
}

func (u *LibraryUsecase) ListBooks(ctx context.Context, userID string, statusID *int, shelfID *string) ([]entity.UserBook, error) {
	if statusID != nil && !entity.ValidReadingStatus(*statusID) {
		return nil, fmt.Errorf("%w: unknown reading status %d", ErrInvalid, *statusID)
	}
	return u.userBooks.List(ctx, userID, statusID, shelfID)
}

func (u *LibraryUsecase) ListStatuses(ctx context.Context) ([]entity.ReadingStatus, error) {
	return u.statuses.List(ctx)
}

// Shelves

func (u *LibraryUsecase) CreateShelf(ctx context.Context, userID, name, description string) (entity.Shelf, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Shelf{}, fmt.Errorf("%w: shelf name is required", ErrInvalid)
	}
	if err := u.checkShelfNameFree(ctx, userID, name, ""); err != nil {
		return entity.Shelf{}, err
	}
	shelf := entity.Shelf{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := u.shelves.Create(ctx, &shelf); err != nil {
		return entity.Shelf{}, err
	}
	return shelf, nil
}

func (u *LibraryUsecase) UpdateShelf(ctx context.Context, userID, shelfID, name, description string, displayOrder *int) (entity.Shelf, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Shelf{}, fmt.Errorf("%w: shelf name is required", ErrInvalid)
	}
	shelf, err := u.shelves.GetByID(ctx, shelfID)
	if err != nil {
		return entity.Shelf{}, err
	}
	if shelf.UserID != userID {
		return entity.Shelf{}, ErrNotFound
	}
	if shelf.IsDefault {
		return entity.Shelf{}, fmt.Errorf("%w: default shelves cannot be modified", ErrForbidden)
	}
	if err := u.checkShelfNameFree(ctx, userID, name, shelfID); err != nil {
		return entity.Shelf{}, err
	}
	shelf.Name = name
	shelf.Description = description
	if displayOrder != nil {
		shelf.DisplayOrder = *displayOrder
	}
	if err := u.shelves.Update(ctx, &shelf); err != nil {
		return entity.Shelf{}, err
	}
	return shelf, nil
}

// DeleteShelf detaches every library entry pointing at the shelf before
// removing it; entries themselves survive.
func (u *LibraryUsecase) DeleteShelf(ctx context.Context, userID, shelfID string) error {
	shelf, err := u.shelves.GetByID(ctx, shelfID)
	if err != nil {
		return err
	}
	if shelf.UserID != userID {
		return ErrNotFound
	}
	if shelf.IsDefault {
		return fmt.Errorf("%w: default shelves cannot be deleted", ErrForbidden)
	}
	return u.shelves.DeleteAndDetach(ctx, shelfID)
}

func (u *LibraryUsecase) ListShelves(ctx context.Context, userID string) ([]entity.Shelf, error) {
	return u.shelves.ListByUser(ctx, userID)
}

// MoveBook reassigns the (nullable) shelf of an existing library entry. A
// target shelf must belong to the caller.
func (u *LibraryUsecase) MoveBook(ctx context.Context, userID, bookID string, shelfID *string) (entity.UserBook, error) {
	ub, err := u.userBooks.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return entity.UserBook{}, err
	}
	if shelfID != nil {
		if err := u.requireOwnShelf(ctx, userID, *shelfID); err != nil {
			return entity.UserBook{}, err
		}
	}
	ub.ShelfID = shelfID
	if err := u.userBooks.Update(ctx, &ub); err != nil {
		return entity.UserBook{}, err
	}
	return ub, nil
}

func (u *LibraryUsecase) requireOwnShelf(ctx context.Context, userID, shelfID string) error {
	shelf, err := u.shelves.GetByID(ctx, shelfID)
	if err != nil {
		return err
	}
	if shelf.UserID != userID {
		return ErrNotFound
	}
	return nil
}

func (u *LibraryUsecase) checkShelfNameFree(ctx context.Context, userID, name, excludeID string) error {
	existing, err := u.shelves.GetByUserAndName(ctx, userID, name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return fmt.Errorf("%w: a shelf with this name already exists", ErrConflict)
}
