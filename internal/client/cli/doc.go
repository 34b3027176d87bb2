// Package cli implements the interactive QKart storefront client: a
// line-based loop that lets the user browse and search the catalog,
// authenticate, and manage a cart synchronized with the backend.
//
// The command set depends on the session state. Anonymous users get
// register/login plus read-only catalog commands; an authenticated
// session adds the cart commands. Every failure is surfaced as a
// printed advisory and never aborts the loop.
package cli
