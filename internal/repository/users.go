package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/booklandia/lending-service/internal/errs"
	"github.com/booklandia/lending-service/internal/model"
)

const userColumns = `user_id, username, password, first_name, last_name,
	address1, address2, town, state, zip, phone, email, profile, fav_book, fav_author, avg_rating`

func (r *repository) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("username", "password", "first_name", "last_name",
			"address1", "address2", "town", "state", "zip", "phone",
			"email", "profile", "fav_book", "fav_author").
		Values(u.Username, u.Password, u.FirstName, u.LastName,
			u.Address1, u.Address2, u.Town, u.State, u.Zip, u.Phone,
			u.Email, u.Profile, u.FavBook, u.FavAuthor).
		Suffix("returning " + userColumns).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrUserExists
		}
		r.log.Error("CreateUser", zap.String("username", u.Username), zap.Error(err))
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, userID int) (model.User, error) {
	query, args, err := qb.Select(userColumns).
		From(usersTableName).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var u model.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// UpdateUser rewrites the editable profile attributes and returns the updated
// row. Username and password are not touched here.
func (r *repository) UpdateUser(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		Set("email", req.Email).
		Set("first_name", req.FirstName).
		Set("last_name", req.LastName).
		Set("address1", req.Address1).
		Set("address2", req.Address2).
		Set("town", req.Town).
		Set("state", req.State).
		Set("zip", req.Zip).
		Set("phone", req.Phone).
		Set("profile", req.Profile).
		Set("fav_book", req.FavBook).
		Set("fav_author", req.FavAuthor).
		Where(sq.Eq{"user_id": userID}).
		Suffix("returning " + userColumns).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var updated model.User
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrEmailExists
		}
		r.log.Error("UpdateUser", zap.Int("user", userID), zap.Error(err))
		return model.User{}, err
	}
	return updated, nil
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select(userColumns).
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var u model.User
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select(userColumns).
		From(usersTableName).
		OrderBy("username").
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
