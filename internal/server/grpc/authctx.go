package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"

	"github.com/projeli/wiki-service/internal/service"
)

type ctxKey string

const userIDKey ctxKey = "wiki.userID"

// WithUserID stores the authenticated user id in context.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx fetches the user id from context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// actorFromCtx returns the calling user, or an anonymous actor that can only
// read published wikis.
func actorFromCtx(ctx context.Context) service.Actor {
	id, _ := UserIDFromCtx(ctx)
	return service.User(id)
}

var errNoToken = errors.New("no bearer token")

// subjectFromToken verifies an HS256 token and returns its subject.
func subjectFromToken(tok string, key []byte) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return "", errors.New("token expired or not valid yet")
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" || sub == service.SystemUserID {
		return "", errors.New("bad subject")
	}
	return sub, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errNoToken
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errNoToken
}
