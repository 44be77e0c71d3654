package service

import (
	"context"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

// SubmitBookRating upserts the rater's rating for a book and returns the
// recomputed average. The rating value arrives range-checked from the
// validated request.
func (s *Service) SubmitBookRating(ctx context.Context, bookID, raterID, rating int, review string) (float64, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return 0, err
	}
	return s.repo.UpsertBookRating(ctx, model.BookRating{
		BookID: bookID,
		UserID: raterID,
		Rating: rating,
		Review: review,
	})
}

// SubmitLenderRating upserts the rater's rating of a lender. Only someone who
// has actually borrowed from the lender may rate them.
func (s *Service) SubmitLenderRating(ctx context.Context, lenderID, raterID, rating int, review string) (float64, error) {
	borrowed, err := s.repo.HasBorrowed(ctx, lenderID, raterID)
	if err != nil {
		return 0, err
	}
	if !borrowed {
		return 0, errs.ErrNotBorrowed
	}
	return s.repo.UpsertLenderRating(ctx, model.LenderRating{
		LenderID: lenderID,
		RaterID:  raterID,
		Rating:   rating,
		Review:   review,
	})
}
