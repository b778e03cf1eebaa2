package entity

import "time"

// Fixed reading-status reference set. The IDs are stable and seeded by
// migration; status transitions key off them.
const (
	StatusWantToRead       = 1
	StatusCurrentlyReading = 2
	StatusRead             = 3
)

func ValidReadingStatus(id int) bool {
	switch id {
	case StatusWantToRead, StatusCurrentlyReading, StatusRead:
		return true
	default:
		return false
	}
}

type ReadingStatus struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

type Shelf struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	IsDefault    bool      `json:"is_default"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserBook is the per-(user, book) library record: reading status, shelf
// placement, dates and progress. At most one exists per pair.
type UserBook struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	BookID          string     `json:"book_id"`
	StatusID        int        `json:"status_id"`
	ShelfID         *string    `json:"shelf_id,omitempty"`
	DateAdded       time.Time  `json:"date_added"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	FinishDate      *time.Time `json:"finish_date,omitempty"`
	CurrentPage     *int       `json:"current_page,omitempty"`
	ReadingProgress float64    `json:"reading_progress"`
	Notes           string     `json:"notes,omitempty"`

	// Denormalized book fields for listings.
	BookTitle  string `json:"book_title,omitempty"`
	BookISBN13 string `json:"book_isbn13,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	GenreName  string `json:"genre_name,omitempty"`
	ShelfName  string `json:"shelf_name,omitempty"`
	StatusName string `json:"status_name,omitempty"`
}
