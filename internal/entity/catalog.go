package entity

import "time"

type Author struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BookCount int       `json:"book_count,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Genre struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BookCount   int       `json:"book_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ISBN13          string    `json:"isbn13"`
	AuthorID        string    `json:"author_id"`
	AuthorName      string    `json:"author_name,omitempty"`
	GenreID         *string   `json:"genre_id,omitempty"`
	GenreName       string    `json:"genre_name,omitempty"`
	Description     string    `json:"description,omitempty"`
	CoverImageURL   string    `json:"cover_image_url,omitempty"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	PageCount       *int      `json:"page_count,omitempty"`
	CreatedBy       *string   `json:"created_by,omitempty"`
	AverageRating   *float64  `json:"average_rating,omitempty"`
	ReviewCount     int       `json:"review_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
