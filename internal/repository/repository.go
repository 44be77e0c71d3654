package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/model"
)

type Repository interface {
	// catalog
	CreateBook(ctx context.Context, b model.Book) error
	GetBook(ctx context.Context, bookID int) (model.Book, error)
	GetBookByKey(ctx context.Context, key string) (model.Book, error)
	SearchBooks(ctx context.Context, term string, limit int) ([]model.ShelfItem, error)

	// shelf
	AddToShelf(ctx context.Context, bookID, userID int) error
	GetStatus(ctx context.Context, bookID, ownerID int) (model.ShelfStatus, error)
	ListStatuses(ctx context.Context, bookID int) ([]model.ShelfStatus, error)
	ListShelf(ctx context.Context, userID int) ([]model.ShelfItem, error)
	UpdateStatus(ctx context.Context, bookID, ownerID int, loc model.Location, cond model.Condition) error
	DeleteStatus(ctx context.Context, bookID, ownerID int) error

	// lending
	CreateRequest(ctx context.Context, bookID, ownerID, borrowerID int) (model.BorrowRecord, error)
	ApproveRequest(ctx context.Context, bookID, ownerID int) error
	RejectRequest(ctx context.Context, bookID, ownerID int) error
	RequestsFor(ctx context.Context, userID int) (model.RequestsView, error)
	HasBorrowed(ctx context.Context, lenderID, borrowerID int) (bool, error)

	// ratings
	UpsertBookRating(ctx context.Context, br model.BookRating) (float64, error)
	UpsertLenderRating(ctx context.Context, lr model.LenderRating) (float64, error)
	ListBookRatings(ctx context.Context, bookID int) ([]model.BookRating, error)

	// users
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, userID int) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	UpdateUser(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName         = `users`
	booksTableName         = `books`
	statusesTableName      = `statuses`
	borrowersTableName     = `borrowers`
	bookRatingsTableName   = `book_ratings`
	lenderRatingsTableName = `lender_ratings`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// inTx runs fn in a transaction, rolling back on error.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
