// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the application server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully. It returns early if serving fails.
	RunServer() error

	// Shutdown stops the server, waiting for in-flight requests up to the
	// configured shutdown timeout.
	Shutdown() error
}
