package services

// Role is the caller-supplied role signal carried with mutating requests.
// It is advisory only: the value arrives on an unauthenticated header and is
// trusted as-is, so the gate is a policy check, not a security boundary.
type Role string

const (
	// RoleStaff is the role required for order creation and status updates.
	RoleStaff Role = "staff"
)

// RoleGate is a domain service that evaluates a caller-supplied role signal
// against a required-role policy.
//
// Business rules:
//   - The supplied role must equal the required role exactly (case-sensitive)
//   - An absent (empty) supplied role is always denied
//
// RoleGate is a pure predicate with no side effects, so the policy can later
// be swapped for a token/claims-based check without touching the command
// handlers that call it.
type RoleGate struct{}

// NewRoleGate creates a new RoleGate instance.
func NewRoleGate() RoleGate {
	return RoleGate{}
}

// Authorize reports whether the supplied role satisfies the required role.
func (g RoleGate) Authorize(required, supplied Role) bool {
	if supplied == "" {
		return false
	}
	return supplied == required
}
