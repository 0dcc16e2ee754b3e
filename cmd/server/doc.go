// Package main is the entry point for the distance API server.
//
// The server fronts the distance worker (gRPC) with a REST API,
// proxies CSV downloads from the worker's file port, and optionally
// exposes read-only location queries against Postgres.
//
// Configuration comes from environment variables (12-factor); a .env
// file is loaded when present for local development.
//
// Signals:
//   - SIGINT, SIGTERM: graceful shutdown
package main
