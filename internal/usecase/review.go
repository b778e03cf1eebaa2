package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"booknest/internal/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (entity.Review, error)
	GetByUserAndBook(ctx context.Context, userID, bookID string) (entity.Review, error)
	Update(ctx context.Context, r *entity.Review) error
	// Delete removes the review; its comments go with it.
	Delete(ctx context.Context, id string) error
	ListByBook(ctx context.Context, bookID string, publicOnly bool) ([]entity.Review, error)
	ListByUser(ctx context.Context, userID string, publicOnly bool) ([]entity.Review, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Review, error)
	// CountByBook counts all reviews, public or not (deletion guard).
	CountByBook(ctx context.Context, bookID string) (int, error)
	// RatingAggregate averages public reviews; avg is nil when none exist.
	RatingAggregate(ctx context.Context, bookID string) (avg *float64, count int, err error)
	// RatingDistribution counts public reviews per star, all five keys present.
	RatingDistribution(ctx context.Context, bookID string) (map[int]int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (entity.Comment, error)
	Update(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id string) error
	ListByReview(ctx context.Context, reviewID string) ([]entity.Comment, error)
}

// ReviewPolicy carries the configurable creation guards. Both default on;
// the single-review rule is additionally backed by a unique index.
type ReviewPolicy struct {
	RequireRead   bool
	SinglePerBook bool
}

type ReviewUsecase struct {
	reviews   ReviewRepository
	comments  CommentRepository
	userBooks UserBookRepository
	books     BookRepository
	policy    ReviewPolicy
}

func NewReviewUsecase(reviews ReviewRepository, comments CommentRepository, userBooks UserBookRepository, books BookRepository, policy ReviewPolicy) *ReviewUsecase {
	return &ReviewUsecase{
		reviews:   reviews,
		comments:  comments,
		userBooks: userBooks,
		books:     books,
		policy:    policy,
	}
}

func (u *ReviewUsecase) Create(ctx context.Context, userID, bookID, text string, rating int, isPublic bool) (entity.Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Review{}, fmt.Errorf("%w: review text is required", ErrInvalid)
	}
	if rating < 1 || rating > 5 {
		return entity.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}
	if _, err := u.books.GetByID(ctx, bookID); err != nil {
		return entity.Review{}, err
	}

	if u.policy.RequireRead {
		read, err := u.userBooks.ExistsWithStatus(ctx, userID, bookID, entity.StatusRead)
		if err != nil {
			return entity.Review{}, err
		}
		if !read {
			return entity.Review{}, fmt.Errorf("%w: you can only review books you have marked as read", ErrForbidden)
		}
	}
	if u.policy.SinglePerBook {
		_, err := u.reviews.GetByUserAndBook(ctx, userID, bookID)
		if err == nil {
			return entity.Review{}, fmt.Errorf("%w: you have already reviewed this book", ErrConflict)
		}
		if !errors.Is(err, ErrNotFound) {
			return entity.Review{}, err
		}
	}

	review := entity.Review{
		UserID:     userID,
		BookID:     bookID,
		ReviewText: text,
		Rating:     rating,
		IsPublic:   isPublic,
	}
	if err := u.reviews.Create(ctx, &review); err != nil {
		return entity.Review{}, err
	}
	return review, nil
}

func (u *ReviewUsecase) Update(ctx context.Context, userID, reviewID, text string, rating int, isPublic bool) (entity.Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Review{}, fmt.Errorf("%w: review text is required", ErrInvalid)
	}
	if rating < 1 || rating > 5 {
		return entity.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return entity.Review{}, err
	}
	if review.UserID != userID {
		return entity.Review{}, fmt.Errorf("%w: you can only edit your own reviews", ErrForbidden)
	}
	review.ReviewText = text
	review.Rating = rating
	review.IsPublic = isPublic
	if err := u.reviews.Update(ctx, &review); err != nil {
		return entity.Review{}, err
	}
	return review, nil
}

func (u *ReviewUsecase) Delete(ctx context.Context, reviewID, callerID string, isAdmin bool) error {
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !isAdmin && review.UserID != callerID {
		return fmt.Errorf("%w: you can only delete your own reviews", ErrForbidden)
	}
	return u.reviews.Delete(ctx, reviewID)
}

// Get enforces the visibility rule: a private review is not-found for
// anyone but its author or an admin, indistinguishable from non-existence.
func (u *ReviewUsecase) Get(ctx context.Context, reviewID, viewerID string, isAdmin bool) (entity.Review, error) {
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return entity.Review{}, err
	}
	if !review.IsPublic && review.UserID != viewerID && !isAdmin {
		return entity.Review{}, ErrNotFound
	}
	return review, nil
}

// BookSummary lists the public reviews of a book with its rating
// aggregates.
func (u *ReviewUsecase) BookSummary(ctx context.Context, bookID string) (entity.BookReviewSummary, error) {
	if _, err := u.books.GetByID(ctx, bookID); err != nil {
		return entity.BookReviewSummary{}, err
	}
	reviews, err := u.reviews.ListByBook(ctx, bookID, true)
	if err != nil {
		return entity.BookReviewSummary{}, err
	}
	avg, count, err := u.reviews.RatingAggregate(ctx, bookID)
	if err != nil {
		return entity.BookReviewSummary{}, err
	}
	dist, err := u.reviews.RatingDistribution(ctx, bookID)
	if err != nil {
		return entity.BookReviewSummary{}, err
	}
	return entity.BookReviewSummary{
		BookID:        bookID,
		Reviews:       reviews,
		AverageRating: avg,
		ReviewCount:   count,
		Distribution:  dist,
	}, nil
}

// CanReview reports whether the active policy would let the user review
// the book right now.
func (u *ReviewUsecase) CanReview(ctx context.Context, userID, bookID string) (bool, error) {
	if u.policy.RequireRead {
		read, err := u.userBooks.ExistsWithStatus(ctx, userID, bookID, entity.StatusRead)
		if err != nil {
			return false, err
		}
		if !read {
			return false, nil
		}
	}
	if u.policy.SinglePerBook {
		_, err := u.reviews.GetByUserAndBook(ctx, userID, bookID)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return false, err
		}
	}
	return true, nil
}

func (u *ReviewUsecase) UserReviewForBook(ctx context.Context, userID, bookID string) (entity.Review, error) {
	return u.reviews.GetByUserAndBook(ctx, userID, bookID)
}

// UserReviews returns a user's reviews, hiding private ones from everyone
// but the user themselves and admins.
func (u *ReviewUsecase) UserReviews(ctx context.Context, targetUserID, viewerID string, isAdmin bool) ([]entity.Review, error) {
	publicOnly := targetUserID != viewerID && !isAdmin
	return u.reviews.ListByUser(ctx, targetUserID, publicOnly)
}

func (u *ReviewUsecase) RecentReviews(ctx context.Context, count int) ([]entity.Review, error) {
	if count <= 0 || count > 50 {
		count = 10
	}
	return u.reviews.ListRecent(ctx, count)
}

// Comments

func (u *ReviewUsecase) CreateComment(ctx context.Context, userID, reviewID, text string) (entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Comment{}, fmt.Errorf("%w: comment text is required", ErrInvalid)
	}
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return entity.Comment{}, err
	}
	if !review.IsPublic {
		// A private review stays invisible to third parties even here.
		if review.UserID != userID {
			return entity.Comment{}, ErrNotFound
		}
		return entity.Comment{}, fmt.Errorf("%w: cannot comment on private reviews", ErrForbidden)
	}

	comment := entity.Comment{
		ReviewID:    reviewID,
		UserID:      userID,
		CommentText: text,
	}
	if err := u.comments.Create(ctx, &comment); err != nil {
		return entity.Comment{}, err
	}
	return comment, nil
}

func (u *ReviewUsecase) UpdateComment(ctx context.Context, userID, commentID, text string) (entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Comment{}, fmt.Errorf("%w: comment text is required", ErrInvalid)
	}
	comment, err := u.comments.GetByID(ctx, commentID)
	if err != nil {
		return entity.Comment{}, err
	}
	if comment.UserID != userID {
		return entity.Comment{}, fmt.Errorf("%w: you can only edit your own comments", ErrForbidden)
	}
	now := time.Now().UTC()
	comment.CommentText = text
	comment.IsEdited = true
	comment.EditedAt = &now
	if err := u.comments.Update(ctx, &comment); err != nil {
		return entity.Comment{}, err
	}
	return comment, nil
}

func (u *ReviewUsecase) DeleteComment(ctx context.Context, commentID, callerID string, isAdmin bool) error {
	comment, err := u.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !isAdmin && comment.UserID != callerID {
		return fmt.Errorf("%w: you can only delete your own comments", ErrForbidden)
	}
	return u.comments.Delete(ctx, commentID)
}

// ReviewComments lists a review's comments, oldest first, after the same
// visibility check as Get.
func (u *ReviewUsecase) ReviewComments(ctx context.Context, reviewID, viewerID string, isAdmin bool) ([]entity.Comment, error) {
	if _, err := u.Get(ctx, reviewID, viewerID, isAdmin); err != nil {
		return nil, err
	}
	return u.comments.ListByReview(ctx, reviewID)
}
