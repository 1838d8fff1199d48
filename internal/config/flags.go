package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-engine router engine (chi or gin)
//	-metrics-path path of the Prometheus endpoint
//	-r/-routes routes file path (.json or .toml)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g. "30s")
//	-parse-body read request bodies in the adapter
//	-include-request attach the raw request to actions
//	-include-response attach the raw response to actions
//	-max-body body size limit (e.g. "1MB")
//	-bus remote bus address
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "1h")
//	-hash-key integrity middleware HMAC key
//	-log-level zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("action-web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var engine, metricsPath, routesPath, jsonConfigPath, busAddress string
	var tokenSignKey, tokenIssuer, hashKey, logLevel string
	var requestTimeout, tokenDuration time.Duration
	var parseBody, includeRequest, includeResponse optionalBool
	var maxBody ByteSize

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&engine, "engine", "", "Router engine: chi or gin")
	fs.StringVar(&metricsPath, "metrics-path", "", "Prometheus metrics path")
	fs.StringVar(&routesPath, "r", "", "Routes file path")
	fs.StringVar(&routesPath, "routes", "", "Routes file path (alias)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&parseBody, "parse-body", "Read request bodies in the adapter")
	fs.Var(&includeRequest, "include-request", "Attach the raw request to actions")
	fs.Var(&includeResponse, "include-response", "Attach the raw response to actions")
	fs.Var(&maxBody, "max-body", "Body size limit (e.g., 512KB, 1MB)")
	fs.StringVar(&busAddress, "bus", "", "Remote action bus address")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&hashKey, "hash-key", "", "Integrity HMAC key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			HashKey:  hashKey,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			Engine:         engine,
			MetricsPath:    metricsPath,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			ParseBody:       parseBody.value,
			IncludeRequest:  includeRequest.value,
			IncludeResponse: includeResponse.value,
			MaxBodyBytes:    maxBody,
		},
		Bus: Bus{
			RemoteAddress: busAddress,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		RoutesFilePath: routesPath,
		JSONFilePath:   jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// optionalBool is a boolean flag that remembers whether it was set.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets the flag be given without a value ("-parse-body").
func (b *optionalBool) IsBoolFlag() bool { return true }
