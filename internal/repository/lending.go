package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

// CreateRequest moves the copy On Shelf -> Requested and records the borrow,
// as one transaction.
func (r *repository) CreateRequest(ctx context.Context, bookID, ownerID, borrowerID int) (model.BorrowRecord, error) {
	var rec model.BorrowRecord
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		const q = `
	update statuses set location = 'Requested'
	where book_id = $1 and user_id = $2 and location = 'On Shelf'`
		res, err := tx.ExecContext(ctx, q, bookID, ownerID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return r.statusMiss(ctx, tx, bookID, ownerID)
		}

		const ins = `
	insert into borrowers (record_uid, book_id, owner_id, borrower_id)
	values ($1, $2, $3, $4)
	returning id, record_uid, book_id, owner_id, borrower_id, resolved`
		if err := tx.GetContext(ctx, &rec, ins, uuid.New().String(), bookID, ownerID, borrowerID); err != nil {
			r.log.Error("CreateRequest insert", zap.Int("book", bookID), zap.Int("owner", ownerID))
			return err
		}
		return nil
	})
	if err != nil {
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// ApproveRequest moves the copy Requested -> Checked Out. The borrow record
// stays untouched as the audit trail of who holds the copy.
func (r *repository) ApproveRequest(ctx context.Context, bookID, ownerID int) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		const q = `
	update statuses set location = 'Checked Out'
	where book_id = $1 and user_id = $2 and location = 'Requested'`
		res, err := tx.ExecContext(ctx, q, bookID, ownerID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return r.statusMiss(ctx, tx, bookID, ownerID)
		}
		return nil
	})
}

// RejectRequest puts the copy back On Shelf and deletes the unresolved borrow
// record in the same transaction, so the pair of writes is never observable
// half done. A status row saying Requested with no unresolved borrow record is
// an inconsistency and is surfaced as not found, not silently patched.
func (r *repository) RejectRequest(ctx context.Context, bookID, ownerID int) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		const upd = `
	update statuses set location = 'On Shelf'
	where book_id = $1 and user_id = $2`
		res, err := tx.ExecContext(ctx, upd, bookID, ownerID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotFound
		}

		const del = `
	delete from borrowers
	where book_id = $1 and owner_id = $2 and not resolved
	returning id`
		var id int
		if err := tx.QueryRowContext(ctx, del, bookID, ownerID).Scan(&id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		return nil
	})
}

// statusMiss distinguishes a missing (book, owner) row from one in the wrong
// location for the attempted transition.
func (r *repository) statusMiss(ctx context.Context, tx *sqlx.Tx, bookID, ownerID int) error {
	const q = `select count(*) from statuses where book_id = $1 and user_id = $2`
	var count int
	if err := tx.QueryRowContext(ctx, q, bookID, ownerID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return errs.ErrNotFound
	}
	return errs.ErrConflict
}

func (r *repository) RequestsFor(ctx context.Context, userID int) (model.RequestsView, error) {
	const statusesQ = `
	select s.book_id, s.user_id, s.location, s.condition, s.created_at,
	       b.key, b.title, b.author, b.avg_rating
	from statuses s
	join books b on b.book_id = s.book_id
	where s.location in ('Requested', 'Checked Out')
	  and (s.user_id = $1
	       or (s.book_id, s.user_id) in
	          (select book_id, owner_id from borrowers
	           where borrower_id = $1 and not resolved))`

	view := model.RequestsView{
		Statuses: make([]model.ShelfItem, 0),
		Borrows:  make([]model.BorrowRecord, 0),
	}
	if err := r.db.SelectContext(ctx, &view.Statuses, statusesQ, userID); err != nil {
		return model.RequestsView{}, err
	}

	const borrowsQ = `
	select id, record_uid, book_id, owner_id, borrower_id, resolved
	from borrowers
	where (borrower_id = $1 or owner_id = $1) and not resolved`
	if err := r.db.SelectContext(ctx, &view.Borrows, borrowsQ, userID); err != nil {
		return model.RequestsView{}, err
	}
	return view, nil
}

func (r *repository) HasBorrowed(ctx context.Context, lenderID, borrowerID int) (bool, error) {
	const q = `
	select count(*) from borrowers
	where owner_id = $1 and borrower_id = $2`
	var count int
	if err := r.db.QueryRowContext(ctx, q, lenderID, borrowerID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
