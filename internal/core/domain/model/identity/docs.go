// Package identity holds the read-only user snapshot consumed by the core.
//
// User records are owned by an external identity store; the marketplace only
// reads role, verification status, and vehicle type to authorize operations
// and gate bid eligibility. The core never mutates a user.
package identity
