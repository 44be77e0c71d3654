package handler

import (
	"context"

	"github.com/booklandia/lending-service/internal/model"
)

//go:generate mockgen -destination=mocks/mock.go -package=mocks github.com/booklandia/lending-service/internal/handler Service

type CatalogService interface {
	SearchCatalog(ctx context.Context, title, author string) ([]model.CatalogEntry, error)
	AddToShelf(ctx context.Context, key string, userID int) error
	Shelf(ctx context.Context, userID int) ([]model.ShelfItem, error)
	SearchShelves(ctx context.Context, term string) ([]model.ShelfItem, error)
	BookInfo(ctx context.Context, bookID int) (model.BookInfo, error)
}

type LendingService interface {
	RequestBook(ctx context.Context, bookID, ownerID, borrowerID int) error
	ApproveRequest(ctx context.Context, bookID, ownerID int) error
	RejectRequest(ctx context.Context, bookID, ownerID int) error
	UpdateStatus(ctx context.Context, bookID, ownerID int, loc model.Location, cond model.Condition) error
	RemoveFromShelf(ctx context.Context, bookID, ownerID int) error
	Requests(ctx context.Context, userID int) (model.RequestsView, error)
}

type RatingService interface {
	SubmitBookRating(ctx context.Context, bookID, raterID, rating int, review string) (float64, error)
	SubmitLenderRating(ctx context.Context, lenderID, raterID, rating int, review string) (float64, error)
}

type UserService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Authenticate(ctx context.Context, username, password string) (model.User, error)
	Profile(ctx context.Context, userID int) (model.User, error)
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// Service is the full surface the router wires up.
type Service interface {
	CatalogService
	LendingService
	RatingService
	UserService
}
