package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"booknest/internal/usecase"
)

type ReviewHandler struct {
	reviews *usecase.ReviewUsecase
}

func NewReviewHandler(reviews *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewReq struct {
	BookID     string `json:"book_id" validate:"required,uuid4"`
	ReviewText string `json:"review_text" validate:"required,min=1,max=10000"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	IsPublic   *bool  `json:"is_public"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	review, err := h.reviews.Create(r.Context(), UserIDFrom(r), req.BookID, req.ReviewText, req.Rating, isPublic)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessCreated(w, review)
}

type updateReviewReq struct {
	ReviewText string `json:"review_text" validate:"required,min=1,max=10000"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	IsPublic   *bool  `json:"is_public"`
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	review, err := h.reviews.Update(r.Context(), UserIDFrom(r), r.PathValue("id"), req.ReviewText, req.Rating, isPublic)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, review, nil)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reviews.Delete(r.Context(), r.PathValue("id"), UserIDFrom(r), RoleFrom(r).IsAdmin()); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.Get(r.Context(), r.PathValue("id"), UserIDFrom(r), RoleFrom(r).IsAdmin())
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, review, nil)
}

// BookSummary returns a book's public reviews with rating aggregates.
func (h *ReviewHandler) BookSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reviews.BookSummary(r.Context(), r.PathValue("bookId"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, summary, nil)
}

func (h *ReviewHandler) CanReview(w http.ResponseWriter, r *http.Request) {
	ok, err := h.reviews.CanReview(r.Context(), UserIDFrom(r), r.PathValue("bookId"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, map[string]bool{"can_review": ok}, nil)
}

func (h *ReviewHandler) MyReviewForBook(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.UserReviewForBook(r.Context(), UserIDFrom(r), r.PathValue("bookId"))
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, review, nil)
}

func (h *ReviewHandler) UserReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.UserReviews(r.Context(), r.PathValue("userId"), UserIDFrom(r), RoleFrom(r).IsAdmin())
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, reviews, nil)
}

func (h *ReviewHandler) MyReviews(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFrom(r)
	reviews, err := h.reviews.UserReviews(r.Context(), userID, userID, false)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, reviews, nil)
}

func (h *ReviewHandler) Recent(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	reviews, err := h.reviews.RecentReviews(r.Context(), count)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, reviews, nil)
}

// Comments

type commentReq struct {
	CommentText string `json:"comment_text" validate:"required,min=1,max=2000"`
}

func (h *ReviewHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req commentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	comment, err := h.reviews.CreateComment(r.Context(), UserIDFrom(r), r.PathValue("reviewId"), req.CommentText)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessCreated(w, comment)
}

func (h *ReviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.reviews.ReviewComments(r.Context(), r.PathValue("reviewId"), UserIDFrom(r), RoleFrom(r).IsAdmin())
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, comments, nil)
}

func (h *ReviewHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req commentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	comment, err := h.reviews.UpdateComment(r.Context(), UserIDFrom(r), r.PathValue("commentId"), req.CommentText)
	if err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccess(w, comment, nil)
}

func (h *ReviewHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.reviews.DeleteComment(r.Context(), r.PathValue("commentId"), UserIDFrom(r), RoleFrom(r).IsAdmin()); err != nil {
		JSONUsecaseError(w, err)
		return
	}
	JSONSuccessNoContent(w)
}
