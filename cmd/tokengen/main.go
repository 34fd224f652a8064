// Command tokengen mints a bearer token for the wallet endpoint when the
// server runs with AUTH_SECRET set.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/baharkarakas/airdrop-scanner/internal/auth"
	"github.com/baharkarakas/airdrop-scanner/internal/config"
)

func main() {
	subject := flag.String("sub", "operator", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to AUTH_TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.Auth.Secret == "" {
		fmt.Fprintln(os.Stderr, "AUTH_SECRET is not set")
		os.Exit(1)
	}
	if *ttl <= 0 {
		*ttl = cfg.Auth.TTL
	}

	tok, exp, err := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, *ttl).Issue(*subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(tok)
	fmt.Fprintf(os.Stderr, "expires %s\n", exp.Format(time.RFC3339))
}
