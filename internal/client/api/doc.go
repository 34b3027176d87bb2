// Package api contains the client-side contract for the QKart backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the storefront backend: Products/SearchProducts for the catalog,
//     Login/Register for authentication, and Cart/PostCart for the
//     server-authoritative cart.
//  2. A concrete REST implementation (see RESTClient) that issues JSON
//     requests over HTTP, attaches the bearer token on cart operations,
//     enforces a transport timeout, and maps failures to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable (network unreachable or malformed
// response), ErrUnauthorized, ErrValidation, ErrDuplicateCartEntry.
// Well-formed non-2xx rejections carry the backend's message as a
// *ServerError.
//
// Concurrency & Contexts
//
// RESTClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
