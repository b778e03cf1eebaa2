package entity

import "time"

type Review struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username,omitempty"`
	BookID       string    `json:"book_id"`
	BookTitle    string    `json:"book_title,omitempty"`
	ReviewText   string    `json:"review_text"`
	Rating       int       `json:"rating"`
	IsPublic     bool      `json:"is_public"`
	DateReviewed time.Time `json:"date_reviewed"`
	UpdatedAt    time.Time `json:"updated_at"`
	CommentCount int       `json:"comment_count"`
}

type Comment struct {
	ID            string     `json:"id"`
	ReviewID      string     `json:"review_id"`
	UserID        string     `json:"user_id"`
	Username      string     `json:"username,omitempty"`
	CommentText   string     `json:"comment_text"`
	DateCommented time.Time  `json:"date_commented"`
	IsEdited      bool       `json:"is_edited"`
	EditedAt      *time.Time `json:"edited_at,omitempty"`
}

// BookReviewSummary merges the public reviews of a book with its rating
// aggregates. AverageRating is nil when the book has no public reviews,
// so "no rating" stays distinguishable from an average of zero.
type BookReviewSummary struct {
	BookID        string      `json:"book_id"`
	Reviews       []Review    `json:"reviews"`
	AverageRating *float64    `json:"average_rating"`
	ReviewCount   int         `json:"review_count"`
	Distribution  map[int]int `json:"rating_distribution"`
}
