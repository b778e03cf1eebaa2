package http

import (
	"encoding/json"
	"net/http"

	"booknest/internal/usecase"
)

type AuthorHandler struct {
	catalog *usecase.CatalogUsecase
}

func NewAuthorHandler(catalog *usecase.CatalogUsecase) *AuthorHandler {
	return &AuthorHandler{catalog: catalog}
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.catalog.ListAuthors(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, authors, nil)
}

func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	author, err := h.catalog.GetAuthor(r.Context(), r.PathValue("id"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, author, nil)
}

func (h *AuthorHandler) Books(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.AuthorBooks(r.Context(), r.PathValue("id"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, books, nil)
}

type authorReq struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author, err := h.catalog.CreateAuthor(r.Context(), req.Name)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessCreated(w, author)
}

func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req authorReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author, err := h.catalog.UpdateAuthor(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, author, nil)
}

func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteAuthor(r.Context(), r.PathValue("id")); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}
