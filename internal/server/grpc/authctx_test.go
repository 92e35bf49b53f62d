package grpcserver

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	_, ok := UserIDFromCtx(context.Background())
	require.False(t, ok)

	got, ok := UserIDFromCtx(WithUserID(context.Background(), "user_2x"))
	require.True(t, ok)
	require.Equal(t, "user_2x", got)

	_, ok = UserIDFromCtx(WithUserID(context.Background(), ""))
	require.False(t, ok)
	require.Equal(t, "", actorFromCtx(context.Background()).UserID)
}

func Test_bearerTokenFromMD(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", got)

	for _, v := range []string{"Basic foo", "Bearer   "} {
		ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", v))
		_, err = bearerTokenFromMD(ctx)
		require.ErrorIs(t, err, errNoToken, v)
	}
	_, err = bearerTokenFromMD(context.Background())
	require.ErrorIs(t, err, errNoToken)
}

func Test_subjectFromToken(t *testing.T) {
	t.Parallel()
	key := []byte("secret")
	now := time.Now().UTC()

	sub, err := subjectFromToken(makeJWT(t, "user_2x", key, jwt.SigningMethodHS256, now.Add(-time.Minute), 10*time.Minute), key)
	require.NoError(t, err)
	require.Equal(t, "user_2x", sub)

	cases := map[string]string{
		"expired":     makeJWT(t, "user_2x", key, jwt.SigningMethodHS256, now.Add(-2*time.Hour), -time.Hour),
		"wrong alg":   makeJWT(t, "user_2x", key, jwt.SigningMethodHS384, now, time.Hour),
		"wrong key":   makeJWT(t, "user_2x", []byte("other"), jwt.SigningMethodHS256, now, time.Hour),
		"empty sub":   makeJWT(t, "", key, jwt.SigningMethodHS256, now, time.Hour),
		"system sub":  makeJWT(t, "system", key, jwt.SigningMethodHS256, now, time.Hour),
		"not a token": "this-is-not-a-jwt",
	}
	for name, tok := range cases {
		_, err := subjectFromToken(tok, key)
		require.Error(t, err, name)
	}
}
