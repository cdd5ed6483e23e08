// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// NetAddress holds a host:port pair and implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command line shared by both binaries.
//
// Flags:
//
//	-a                 server listen address host:port
//	-d                 server database DSN
//	-c / -config       JSON config file path
//	-token-sign-key    token signing key
//	-token-issuer      token issuer
//	-token-duration    token lifetime, e.g. 24h
//	-issue-token       print a token for the given user id and exit
//	-request-timeout   server request timeout, e.g. 30s
//	-server            server URL used by the client
//	-token             bearer token used by the client
//	-local-db          client SQLite file
//	-refresh-interval  client background refresh interval, e.g. 1m
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-pickup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer, issueTokenFor string
	var tokenDuration, requestTimeout time.Duration
	var adapterAddress, adapterToken, localDSN string
	var refreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&issueTokenFor, "issue-token", "", "Print a token for this user id and exit")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&adapterAddress, "server", "", "Server URL used by the client")
	fs.StringVar(&adapterToken, "token", "", "Bearer token used by the client")
	fs.StringVar(&localDSN, "local-db", "", "Client SQLite database file")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			IssueTokenFor: issueTokenFor,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Local: Local{DSN: localDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			Token:       adapterToken,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address, "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, rawPort, ok := strings.Cut(s, ":")
	if !ok {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
