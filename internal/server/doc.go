// Package server assembles the HTTP service: configuration, logging,
// tracing, metrics, the distance worker client, the optional Postgres
// pool, sandboxed file storage, middleware, and the route table.
package server
