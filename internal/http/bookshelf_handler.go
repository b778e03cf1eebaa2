package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"booknest/internal/usecase"
)

type BookshelfHandler struct {
	library *usecase.LibraryUsecase
}

func NewBookshelfHandler(library *usecase.LibraryUsecase) *BookshelfHandler {
	return &BookshelfHandler{library: library}
}

type addBookReq struct {
	BookID   string  `json:"book_id" validate:"required,uuid4"`
	StatusID int     `json:"status_id" validate:"required,min=1,max=3"`
	ShelfID  *string `json:"shelf_id" validate:"omitempty,uuid4"`
}

// AddBook upserts a library entry; re-adding an owned book updates it.
func (h *BookshelfHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	ub, err := h.library.AddBook(r.Context(), UserIDFrom(r), req.BookID, req.StatusID, req.ShelfID)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessCreated(w, ub)
}

type updateStatusReq struct {
	BookID   string `json:"book_id" validate:"required,uuid4"`
	StatusID int    `json:"status_id" validate:"required,min=1,max=3"`
}

func (h *BookshelfHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	ub, err := h.library.UpdateStatus(r.Context(), UserIDFrom(r), req.BookID, req.StatusID)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, ub, nil)
}

type updateProgressReq struct {
	BookID          string   `json:"book_id" validate:"required,uuid4"`
	CurrentPage     *int     `json:"current_page" validate:"omitempty,min=0"`
	ReadingProgress *float64 `json:"reading_progress" validate:"omitempty,min=0,max=100"`
	Notes           *string  `json:"notes" validate:"omitempty,max=5000"`
}

func (h *BookshelfHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req updateProgressReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	ub, err := h.library.UpdateProgress(r.Context(), UserIDFrom(r), req.BookID, usecase.ProgressUpdate{
		CurrentPage:     req.CurrentPage,
		ReadingProgress: req.ReadingProgress,
		Notes:           req.Notes,
	})
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, ub, nil)
}

func (h *BookshelfHandler) RemoveBook(w http.ResponseWriter, r *http.Request) {
	if err := h.library.RemoveBook(r.Context(), UserIDFrom(r), r.PathValue("bookId")); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}

// MyBooks lists the caller's library, optionally filtered by status and/or
// shelf query params.
func (h *BookshelfHandler) MyBooks(w http.ResponseWriter, r *http.Request) {
	var statusID *int
	if v := r.URL.Query().Get("status_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "status_id must be an integer", nil)
			return
		}
		statusID = &id
	}
	var shelfID *string
	if v := r.URL.Query().Get("shelf_id"); v != "" {
		shelfID = &v
	}

	books, err := h.library.ListBooks(r.Context(), UserIDFrom(r), statusID, shelfID)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, books, map[string]int{"count": len(books)})
}

func (h *BookshelfHandler) BooksByStatus(w http.ResponseWriter, r *http.Request) {
	statusID, err := strconv.Atoi(r.PathValue("statusId"))
	if err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "statusId must be an integer", nil)
		return
	}
	books, err := h.library.ListBooks(r.Context(), UserIDFrom(r), &statusID, nil)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, books, map[string]int{"count": len(books)})
}

func (h *BookshelfHandler) BooksByShelf(w http.ResponseWriter, r *http.Request) {
	shelfID := r.PathValue("shelfId")
	books, err := h.library.ListBooks(r.Context(), UserIDFrom(r), nil, &shelfID)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, books, map[string]int{"count": len(books)})
}

func (h *BookshelfHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	ub, err := h.library.GetUserBook(r.Context(), UserIDFrom(r), r.PathValue("bookId"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, ub, nil)
}

func (h *BookshelfHandler) CheckBook(w http.ResponseWriter, r *http.Request) {
	exists, err := h.library.InLibrary(r.Context(), UserIDFrom(r), r.PathValue("bookId"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, map[string]bool{"in_library": exists}, nil)
}

type createShelfReq struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

func (h *BookshelfHandler) CreateShelf(w http.ResponseWriter, r *http.Request) {
	var req createShelfReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	shelf, err := h.library.CreateShelf(r.Context(), UserIDFrom(r), req.Name, req.Description)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessCreated(w, shelf)
}

type updateShelfReq struct {
	ShelfID      string `json:"shelf_id" validate:"required,uuid4"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Description  string `json:"description" validate:"max=1000"`
	DisplayOrder *int   `json:"display_order" validate:"omitempty,min=0"`
}

func (h *BookshelfHandler) UpdateShelf(w http.ResponseWriter, r *http.Request) {
	var req updateShelfReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	shelf, err := h.library.UpdateShelf(r.Context(), UserIDFrom(r), req.ShelfID, req.Name, req.Description, req.DisplayOrder)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, shelf, nil)
}

func (h *BookshelfHandler) DeleteShelf(w http.ResponseWriter, r *http.Request) {
	if err := h.library.DeleteShelf(r.Context(), UserIDFrom(r), r.PathValue("shelfId")); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}

func (h *BookshelfHandler) MyShelves(w http.ResponseWriter, r *http.Request) {
	shelves, err := h.library.ListShelves(r.Context(), UserIDFrom(r))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, shelves, nil)
}

type moveBookReq struct {
	BookID  string  `json:"book_id" validate:"required,uuid4"`
	ShelfID *string `json:"shelf_id" validate:"omitempty,uuid4"`
}

// MoveBook reassigns the shelf of a library entry; a null shelf_id
// unshelves the book.
func (h *BookshelfHandler) MoveBook(w http.ResponseWriter, r *http.Request) {
	var req moveBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	ub, err := h.library.MoveBook(r.Context(), UserIDFrom(r), req.BookID, req.ShelfID)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, ub, nil)
}

func (h *BookshelfHandler) ReadingStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.library.ListStatuses(r.Context())
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, statuses, nil)
}
