// Command wikictl is an operator CLI for the wiki service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/projeli/wiki-service/gen/go/wiki/v1"
)

// ---- token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "wikictl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wikictl")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(tokenFile{AccessToken: tok, ExpiresAt: exp}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(tokenPath(), b, 0o600)
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// tokenExpiry reads exp without verifying the signature; the server does that.
func tokenExpiry(tok string) time.Time {
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(tok, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Now().Add(15 * time.Minute)
	}
	return claims.ExpiresAt.Time
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

type dialOptions struct {
	addr      string
	caPath    string
	skipCheck bool
	plaintext bool
	token     string
}

func transportCreds(o dialOptions) (credentials.TransportCredentials, error) {
	switch {
	case o.plaintext:
		return insecure.NewCredentials(), nil
	case o.skipCheck:
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil //nolint:gosec // dev only
	case o.caPath == "":
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(o.caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}), nil
}

func dial(o dialOptions) (*grpc.ClientConn, pb.WikiServiceClient, error) {
	creds, err := transportCreds(o)
	if err != nil {
		return nil, nil, err
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if o.token != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: o.token, secure: !o.plaintext}))
	}
	cc, err := grpc.NewClient(o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewWikiServiceClient(cc), nil
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

const usageText = `wikictl
Usage:
  wikictl [--addr HOST:PORT] [--cacert file | --insecure | --plaintext] [--token JWT] <cmd> [flags]

Commands:
  version
  login        --token <jwt>                         (saves token)
  perms                                              (list permission names)
  wiki         --id <wiki> | --project <project>
  events       --wiki <id> [--page N] [--size N] [--user ID]... [--type KIND]... [--forward]
  wiki-status  --wiki <id> --status Published|Archived
  page-status  --wiki <id> --page <id> --status Published|Archived
  transfer     --wiki <id> --to <user> [--keep PERMS]
  permissions  --wiki <id> --member <id> --set PERMS  (names separated by ',' or '|', or a number)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses global flags, dials when the command needs the server and
// dispatches. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("wikictl", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usageText) }
	var o dialOptions
	fs.StringVar(&o.addr, "addr", "localhost:8443", "server addr")
	fs.StringVar(&o.caPath, "cacert", "", "CA cert (PEM)")
	fs.BoolVar(&o.skipCheck, "insecure", false, "skip cert verify (dev)")
	fs.BoolVar(&o.plaintext, "plaintext", false, "no TLS (dev)")
	fs.StringVar(&o.token, "token", os.Getenv("WIKI_TOKEN"), "bearer token; defaults to the saved one")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "version":
		fmt.Fprintf(stdout, "wikictl %s (%s)\n", version, buildDate)
		return 0
	case "login":
		return report(stderr, cmdLogin(rest, stdout))
	case "perms":
		return report(stderr, cmdPerms(stdout))
	}

	h, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}
	if o.token == "" {
		if tok, err := loadToken(); err == nil {
			o.token = tok
		}
	}
	conn, cli, err := dial(o)
	if err != nil {
		return report(stderr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return report(stderr, h(ctx, cli, rest, stdout))
}

func cmdLogin(args []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	tok := fs.String("token", "", "bearer token")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tok == "" {
		return errors.New("need --token")
	}
	if err := saveToken(*tok, tokenExpiry(*tok)); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "ok")
	return nil
}

func report(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, pflag.ErrHelp) {
		return 2
	}
	fmt.Fprintln(stderr, "error:", describe(err))
	return 1
}
