package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

// CreateBook persists a catalog entry. A duplicate external key is skipped
// silently; ingestion is the only writer and must stay idempotent.
func (r *repository) CreateBook(ctx context.Context, b model.Book) error {
	query, args, err := qb.Insert(booksTableName).
		Columns("key", "title", "author", "description", "subjects",
			"cover_img_url_m", "cover_img_url_s", "published_year").
		Values(b.Key, b.Title, b.Author, b.Description, b.Subjects,
			b.CoverImgURLM, b.CoverImgURLS, b.PublishedYear).
		Suffix("on conflict (key) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) GetBook(ctx context.Context, bookID int) (model.Book, error) {
	query, args, err := qb.Select("book_id", "key", "title", "author", "description", "subjects",
		"cover_img_url_m", "cover_img_url_s", "published_year", "avg_rating").
		From(booksTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByKey(ctx context.Context, key string) (model.Book, error) {
	query, args, err := qb.Select("book_id", "key", "title", "author", "description", "subjects",
		"cover_img_url_m", "cover_img_url_s", "published_year", "avg_rating").
		From(booksTableName).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// SearchBooks matches title, author or description against term and returns
// the shelf rows for the matching books.
func (r *repository) SearchBooks(ctx context.Context, term string, limit int) ([]model.ShelfItem, error) {
	pattern := fmt.Sprintf("%%%s%%", term)
	query, args, err := qb.Select("s.book_id", "s.user_id", "s.location", "s.condition", "s.created_at",
		"b.key", "b.title", "b.author", "b.avg_rating").
		From(statusesTableName + " s").
		Join(fmt.Sprintf("%s b on b.book_id = s.book_id", booksTableName)).
		Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.author": pattern},
			sq.ILike{"b.description": pattern},
		}).
		OrderBy("b.title desc").
		Limit(uint64(limit)).
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
