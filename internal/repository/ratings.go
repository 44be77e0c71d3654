package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/booklandia/lending-service/internal/model"
)

// UpsertBookRating writes the (rater, book) rating row, then recomputes and
// persists the book's denormalized average inside the same transaction. A
// second submission by the same rater updates in place.
func (r *repository) UpsertBookRating(ctx context.Context, br model.BookRating) (float64, error) {
	var avg float64
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		const upsert = `
	insert into book_ratings (book_id, user_id, rating, review)
	values ($1, $2, $3, $4)
	on conflict (book_id, user_id) do update
	    set rating = excluded.rating, review = excluded.review`
		if _, err := tx.ExecContext(ctx, upsert, br.BookID, br.UserID, br.Rating, br.Review); err != nil {
			return err
		}

		var err error
		avg, err = recomputeBookAverage(ctx, tx, br.BookID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *repository) UpsertLenderRating(ctx context.Context, lr model.LenderRating) (float64, error) {
	var avg float64
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		const upsert = `
	insert into lender_ratings (lender_id, rater_id, rating, review)
	values ($1, $2, $3, $4)
	on conflict (lender_id, rater_id) do update
	    set rating = excluded.rating, review = excluded.review`
		if _, err := tx.ExecContext(ctx, upsert, lr.LenderID, lr.RaterID, lr.Rating, lr.Review); err != nil {
			return err
		}

		var err error
		avg, err = recomputeLenderAverage(ctx, tx, lr.LenderID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return avg, nil
}

// recomputeBookAverage refreshes books.avg_rating from all ratings for the
// book: round(mean, 1), the field's only source of truth.
func recomputeBookAverage(ctx context.Context, tx *sqlx.Tx, bookID int) (float64, error) {
	const q = `
	update books
	    set avg_rating = (select round(avg(rating)::numeric, 1)
	                      from book_ratings where book_id = $1)
	where book_id = $1
	returning avg_rating`
	var avg float64
	if err := tx.QueryRowContext(ctx, q, bookID).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func recomputeLenderAverage(ctx context.Context, tx *sqlx.Tx, lenderID int) (float64, error) {
	const q = `
	update users
	    set avg_rating = (select round(avg(rating)::numeric, 1)
	                      from lender_ratings where lender_id = $1)
	where user_id = $1
	returning avg_rating`
	var avg float64
	if err := tx.QueryRowContext(ctx, q, lenderID).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *repository) ListBookRatings(ctx context.Context, bookID int) ([]model.BookRating, error) {
	query, args, err := qb.Select("book_id", "user_id", "rating", "review").
		From(bookRatingsTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.BookRating, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
