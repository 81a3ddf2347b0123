// Package services contains stateless domain services that do not belong to
// a single aggregate.
//
// The package currently provides the RoleGate, the pure authorization
// predicate that guards mutating order operations.
package services
