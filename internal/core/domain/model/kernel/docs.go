// Package kernel contains shared domain primitives used across aggregates.
//
// The package currently provides the UUID value object, which wraps
// github.com/google/uuid to give identifiers domain-specific construction
// and validation rules. Zero values are always invalid; identifiers must be
// created through NewUUID, UUIDFromString, or UUIDFromBytes.
package kernel
