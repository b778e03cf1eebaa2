package http

import (
	"encoding/json"
	"net/http"

	"booknest/internal/usecase"
)

type GenreHandler struct {
	catalog *usecase.CatalogUsecase
}

func NewGenreHandler(catalog *usecase.CatalogUsecase) *GenreHandler {
	return &GenreHandler{catalog: catalog}
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.ListGenres(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, genres, nil)
}

func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	genre, err := h.catalog.GetGenre(r.Context(), r.PathValue("id"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, genre, nil)
}

type genreReq struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req genreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	genre, err := h.catalog.CreateGenre(r.Context(), req.Name, req.Description)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessCreated(w, genre)
}

func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req genreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	genre, err := h.catalog.UpdateGenre(r.Context(), r.PathValue("id"), req.Name, req.Description)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, genre, nil)
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteGenre(r.Context(), r.PathValue("id")); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}
