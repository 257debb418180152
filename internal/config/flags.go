// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-db-host, -db-port, -db-user, -db-password, -db-name, -db-ssl-mode
//	-read-timeout, -write-timeout, -idle-timeout, -shutdown-timeout (e.g. "5s")
//	-log-level zerolog level name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var db DB
	var server Server
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("adv-board-server", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&db.Host, "db-host", "", "Database host")
	fs.IntVar(&db.Port, "db-port", 0, "Database port")
	fs.StringVar(&db.User, "db-user", "", "Database user")
	fs.StringVar(&db.Password, "db-password", "", "Database password")
	fs.StringVar(&db.Name, "db-name", "", "Database name")
	fs.StringVar(&db.SSLMode, "db-ssl-mode", "", "Database sslmode")
	fs.DurationVar(&server.ReadTimeout, "read-timeout", 0, "Request read timeout (e.g., 5s)")
	fs.DurationVar(&server.WriteTimeout, "write-timeout", 0, "Response write timeout (e.g., 10s)")
	fs.DurationVar(&server.IdleTimeout, "idle-timeout", 0, "Keep-alive idle timeout (e.g., 1m)")
	fs.DurationVar(&server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	server.HTTPAddress = serverAddress.String()

	return &StructuredConfig{
		Storage:      Storage{DB: db},
		Server:       server,
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost"
// or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
