package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"booknest/internal/usecase"
)

type BookHandler struct {
	catalog *usecase.CatalogUsecase
}

func NewBookHandler(catalog *usecase.CatalogUsecase) *BookHandler {
	return &BookHandler{catalog: catalog}
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := defaultPageSize
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		limit = min(v, maxPageSize)
	}
	page := 1
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}

	books, total, err := h.catalog.ListBooks(r.Context(), usecase.BookListParams{
		Q:        q.Get("q"),
		AuthorID: q.Get("author_id"),
		GenreID:  q.Get("genre_id"),
		Sort:     q.Get("sort"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}

	JSONSuccess(w, books, map[string]any{
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.catalog.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, book, nil)
}

type bookReq struct {
	Title           string  `json:"title" validate:"required,min=1,max=500"`
	ISBN13          string  `json:"isbn13" validate:"required,isbn13"`
	AuthorID        string  `json:"author_id" validate:"required,uuid4"`
	GenreID         *string `json:"genre_id" validate:"omitempty,uuid4"`
	Description     string  `json:"description" validate:"max=5000"`
	CoverImageURL   string  `json:"cover_image_url" validate:"omitempty,url"`
	PublicationYear *int    `json:"publication_year" validate:"omitempty,min=1,max=2100"`
	PageCount       *int    `json:"page_count" validate:"omitempty,min=1"`
}

func (r bookReq) params() usecase.BookParams {
	return usecase.BookParams{
		Title:           r.Title,
		ISBN13:          r.ISBN13,
		AuthorID:        r.AuthorID,
		GenreID:         r.GenreID,
		Description:     r.Description,
		CoverImageURL:   r.CoverImageURL,
		PublicationYear: r.PublicationYear,
		PageCount:       r.PageCount,
	}
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.catalog.CreateBook(r.Context(), UserIDFrom(r), req.params())
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessCreated(w, book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.catalog.UpdateBook(r.Context(), r.PathValue("id"), req.params())
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, book, nil)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteBook(r.Context(), r.PathValue("id")); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}
