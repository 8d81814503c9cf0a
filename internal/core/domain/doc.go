// Package domain contains the core business entities for Studium:
// topics, concepts, and match results. It has no dependencies on
// other packages and defines the invariants the rest of the system
// relies on.
package domain
