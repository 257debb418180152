// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container of the server.
// It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// Storage holds the PostgreSQL connection settings.
	Storage Storage

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"POSTGRESQL_"`
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// Host is the address of the database server.
	// Env: POSTGRESQL_HOST_ADDR
	Host string `env:"HOST_ADDR" envDefault:"127.0.0.1"`

	// Port is the TCP port of the database server.
	// Env: POSTGRESQL_HOST_PORT
	Port int `env:"HOST_PORT" envDefault:"5432"`

	// User is the database role.
	// Env: POSTGRESQL_USER
	User string `env:"USER" envDefault:"test"`

	// Password is the password of User.
	// Env: POSTGRESQL_PWD
	Password string `env:"PWD" envDefault:"test"`

	// Name is the database name.
	// Env: POSTGRESQL_DB
	Name string `env:"DB" envDefault:"test"`

	// SSLMode is passed as the sslmode connection parameter.
	// Env: POSTGRESQL_SSL_MODE
	SSLMode string `env:"SSL_MODE" envDefault:"disable"`
}

// DSN returns the PostgreSQL connection URL for the settings.
func (d DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}

	return u.String()
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"0.0.0.0:8080"`

	// ReadTimeout bounds reading of a whole request including the body.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`

	// WriteTimeout bounds writing of a response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`

	// IdleTimeout bounds keep-alive connections between requests.
	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`

	// ShutdownTimeout is how long in-flight requests may take to finish
	// after a termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
