package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
)

var JWTKey = jwtKey()

func jwtKey() []byte {
	if k := os.Getenv("JWT_KEY"); k != "" {
		return []byte(k)
	}
	return []byte("booklandia-dev-key")
}

type Claims struct {
	Profile struct {
		UserID   int    `json:"userId"`
		Username string `json:"username"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

// Identity is the authenticated actor, passed explicitly into every core
// operation. There is no ambient current user anywhere below the handlers.
type Identity struct {
	UserID   int
	Username string
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
