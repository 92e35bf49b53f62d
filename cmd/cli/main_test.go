package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, err := loadToken()
	require.Error(t, err)

	require.NoError(t, saveToken("abc", time.Now().Add(time.Hour)))
	tok, err := loadToken()
	require.NoError(t, err)
	require.Equal(t, "abc", tok)

	fi, err := os.Stat(filepath.Join(dir, "wikictl", "token.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	require.NoError(t, saveToken("old", time.Now().Add(-time.Minute)))
	_, err = loadToken()
	require.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.True(t, tokenExpiry(tok).Equal(exp))

	fallback := tokenExpiry("not-a-jwt")
	require.True(t, fallback.After(time.Now()))
}

func TestRun_LocalCommands(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errOut bytes.Buffer

	require.Equal(t, 0, run([]string{"version"}, &out, &errOut))
	require.Contains(t, out.String(), "wikictl")

	out.Reset()
	require.Equal(t, 0, run([]string{"login", "--token", "t1"}, &out, &errOut))
	tok, err := loadToken()
	require.NoError(t, err)
	require.Equal(t, "t1", tok)

	out.Reset()
	require.Equal(t, 0, run([]string{"perms"}, &out, &errOut))
	require.Contains(t, out.String(), "PublishWikiPages")

	require.Equal(t, 1, run([]string{"login"}, &out, &errOut))
	require.Equal(t, 2, run(nil, &out, &errOut))
	require.Equal(t, 2, run([]string{"nope"}, &out, &errOut))
}

func TestTransportCreds(t *testing.T) {
	c, err := transportCreds(dialOptions{plaintext: true})
	require.NoError(t, err)
	require.Equal(t, "insecure", c.Info().SecurityProtocol)

	c, err = transportCreds(dialOptions{skipCheck: true})
	require.NoError(t, err)
	require.Equal(t, "tls", c.Info().SecurityProtocol)

	bad := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(bad, []byte("junk"), 0o600))
	_, err = transportCreds(dialOptions{caPath: bad})
	require.Error(t, err)
}
