package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/booklandia/lending-service/pkg/middleware"
	"github.com/booklandia/lending-service/pkg/validate"
)

type Handler struct {
	svc Service
	log *zap.Logger
}

func New(svc Service, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/register", h.Register)
	api.POST("/authorize", h.Authorize)

	authed := api.Group("", md.JwtAuthentication)

	authed.GET("/catalog/search", h.SearchCatalog)

	authed.POST("/shelf", h.AddToShelf)
	authed.GET("/shelf", h.Shelf)
	authed.PATCH("/shelf/:bookID", h.UpdateStatus)
	authed.DELETE("/shelf/:bookID", h.RemoveFromShelf)

	authed.GET("/books", h.SearchShelves)
	authed.GET("/books/:bookID", h.BookInfo)
	authed.POST("/books/:bookID/owners/:ownerID/request", h.RequestBook)
	authed.POST("/books/:bookID/owners/:ownerID/approve", h.ApproveRequest)
	authed.POST("/books/:bookID/owners/:ownerID/reject", h.RejectRequest)
	authed.GET("/requests", h.Requests)

	authed.POST("/books/:bookID/rating", h.RateBook)
	authed.POST("/lenders/:lenderID/rating", h.RateLender)

	authed.GET("/users", h.ListUsers)
	authed.GET("/users/me", h.Me)
	authed.PATCH("/users/me", h.UpdateMe)
	authed.GET("/users/:userID", h.UserProfile)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
