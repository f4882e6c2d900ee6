package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the client flags from args.
//
// Flags:
//
//	-timeout        outbound request timeout (e.g. "15s")
//	-insecure       skip API server certificate verification (development only)
//	-token          pre-issued Auth0 access token
//	-cert, -key     TLS pair for an https callback listener
//	-login-timeout  how long to wait for the login redirect (e.g. "5m")
//	-log            log file path
//
// Positional arguments left after the flags are stored in ClientConfig.Args.
func parseFlags(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("coffee-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "outbound request timeout")
	fs.BoolVar(&cfg.Adapter.InsecureTLS, "insecure", false, "skip API server certificate verification")
	fs.StringVar(&cfg.Auth.AccessToken, "token", "", "pre-issued access token")
	fs.StringVar(&cfg.Auth.CertFile, "cert", "", "callback listener TLS certificate")
	fs.StringVar(&cfg.Auth.KeyFile, "key", "", "callback listener TLS key")
	fs.DurationVar(&cfg.Auth.LoginTimeout, "login-timeout", 0, "login redirect wait timeout")
	fs.StringVar(&cfg.Log.FilePath, "log", "", "log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Args = fs.Args()

	return cfg, nil
}
