// Package api contains the client-side building blocks for talking to the
// Health App backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the backend: Login/Register, GetCurrentUser, UpdateUserProfile,
//     catalog reads (courses, modules, groups) and a liveness probe.
//  2. A concrete HTTP implementation (see HTTPClient) that manages a shared
//     http.Client, injects the bearer access token and a per-request id,
//     decodes the backend's JSON error envelope and maps HTTP status codes
//     to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden,
// ErrNotFound, ErrValidation, ErrServer.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
