package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/service"
)

func TestService_SubmitBookRating(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewService(repo, &fakeCatalog{}, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.SubmitBookRating(ctx, 1, 10, 5, "great")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, repo.CreateBook(ctx, bookFixture("/works/OL1W")))

	avg, err := svc.SubmitBookRating(ctx, 1, 10, 5, "great")
	require.NoError(t, err)
	require.Equal(t, 5.0, avg)

	avg, err = svc.SubmitBookRating(ctx, 1, 11, 2, "meh")
	require.NoError(t, err)
	require.Equal(t, 3.5, avg)

	// same rater again replaces, not appends
	avg, err = svc.SubmitBookRating(ctx, 1, 11, 4, "better on reread")
	require.NoError(t, err)
	require.Equal(t, 4.5, avg)
	require.Len(t, repo.bookRatings, 2)

	book, err := repo.GetBook(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4.5, book.AvgRating)
}

func TestService_SubmitBookRating_RoundsToTenth(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewService(repo, &fakeCatalog{}, nil, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, repo.CreateBook(ctx, bookFixture("/works/OL1W")))

	for rater, rating := range map[int]int{10: 5, 11: 4, 12: 4} {
		_, err := svc.SubmitBookRating(ctx, 1, rater, rating, "")
		require.NoError(t, err)
	}
	book, err := repo.GetBook(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4.3, book.AvgRating)
}

func TestService_SubmitLenderRating(t *testing.T) {
	repo, svc := lendingFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitLenderRating(ctx, ownerID, borrowerID, 5, "fast")
	require.ErrorIs(t, err, errs.ErrNotBorrowed)

	require.NoError(t, svc.RequestBook(ctx, 1, ownerID, borrowerID))
	require.NoError(t, svc.ApproveRequest(ctx, 1, ownerID))

	avg, err := svc.SubmitLenderRating(ctx, ownerID, borrowerID, 5, "fast")
	require.NoError(t, err)
	require.Equal(t, 5.0, avg)
	require.Len(t, repo.lenderRatings, 1)

	// having borrowed from one lender grants nothing toward another
	_, err = svc.SubmitLenderRating(ctx, 99, borrowerID, 5, "")
	require.ErrorIs(t, err, errs.ErrNotBorrowed)
}
