package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

// AddToShelf creates the (book, owner) status row. Re-adding the same book to
// the same shelf is a no-op rather than a duplicate.
func (r *repository) AddToShelf(ctx context.Context, bookID, userID int) error {
	query, args, err := qb.Insert(statusesTableName).
		Columns("book_id", "user_id").
		Values(bookID, userID).
		Suffix("on conflict (book_id, user_id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) GetStatus(ctx context.Context, bookID, ownerID int) (model.ShelfStatus, error) {
	query, args, err := qb.Select("book_id", "user_id", "location", "condition", "created_at").
		From(statusesTableName).
		Where(sq.Eq{"book_id": bookID, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return model.ShelfStatus{}, err
	}

	var st model.ShelfStatus
	if err := r.db.GetContext(ctx, &st, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ShelfStatus{}, errs.ErrNotFound
		}
		return model.ShelfStatus{}, err
	}
	return st, nil
}

func (r *repository) ListStatuses(ctx context.Context, bookID int) ([]model.ShelfStatus, error) {
	query, args, err := qb.Select("book_id", "user_id", "location", "condition", "created_at").
		From(statusesTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.ShelfStatus, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListShelf(ctx context.Context, userID int) ([]model.ShelfItem, error) {
	query, args, err := qb.Select("s.book_id", "s.user_id", "s.location", "s.condition", "s.created_at",
		"b.key", "b.title", "b.author", "b.avg_rating").
		From(statusesTableName + " s").
		Join(fmt.Sprintf("%s b on b.book_id = s.book_id", booksTableName)).
		Where(sq.Eq{"s.user_id": userID}).
		OrderBy("s.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.ShelfItem, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus is the owner's manual override path: any location/condition
// value the form allows, no transition rules applied. Moving the copy out of
// the lending flow marks the open borrow record resolved in the same
// transaction, so the copy can be requested again while the record stays
// behind as borrow history.
func (r *repository) UpdateStatus(ctx context.Context, bookID, ownerID int, loc model.Location, cond model.Condition) error {
	query, args, err := qb.Update(statusesTableName).
		Set("location", loc).
		Set("condition", cond).
		Where(sq.Eq{"book_id": bookID, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotFound
		}

		if loc == model.LocationOnShelf || loc == model.LocationOffShelf {
			const resolve = `
		update borrowers set resolved = true
		where book_id = $1 and owner_id = $2 and not resolved`
			if _, err := tx.ExecContext(ctx, resolve, bookID, ownerID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) DeleteStatus(ctx context.Context, bookID, ownerID int) error {
	query, args, err := qb.Delete(statusesTableName).
		Where(sq.Eq{"book_id": bookID, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return err
	}

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotFound
		}

		const resolve = `
	update borrowers set resolved = true
	where book_id = $1 and owner_id = $2 and not resolved`
		_, err = tx.ExecContext(ctx, resolve, bookID, ownerID)
		return err
	})
}
