package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is a listen address given as [host]:port. It implements
// flag.Value. Host may be empty (all interfaces), a name or an IP literal;
// IPv6 literals must be bracketed.
type NetAddress struct {
	Host string
	Port int
}

// parseFlagSet parses args with fs into a partial config. Flags that are
// not given leave their fields at the zero value.
//
// Flags:
//
//	-a                     listen address [host]:port
//	-d                     database DSN
//	-c, -config            JSON config file path
//	-service-name          logger role and token issuer
//	-token-sign-key        token signing secret
//	-token-sign-algorithm  HS256, HS384 or HS512
//	-token-duration        token lifetime, e.g. 30m
//	-password-hash-cost    bcrypt cost
//	-log-level             debug, info, warn or error
//	-route-prefix          prefix for /auth and /notes, e.g. /api/v1
//	-request-timeout       per-request timeout, e.g. 30s
func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var address NetAddress

	fs.Var(&address, "a", "listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")
	fs.StringVar(&cfg.App.ServiceName, "service-name", "", "service name")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "token signing secret")
	fs.StringVar(&cfg.App.TokenSignAlgorithm, "token-sign-algorithm", "", "HS256, HS384 or HS512")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "token lifetime")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&cfg.Server.RoutePrefix, "route-prefix", "", "route prefix for /auth and /notes")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", time.Duration(0), "per-request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = address.String()
	return cfg, nil
}

// String returns the address in host:port form, or "" when unset so that an
// absent -a flag does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form [host]:port: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return errors.New("port must be an integer between 1 and 65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
