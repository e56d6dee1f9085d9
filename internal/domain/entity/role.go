// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// The enumeration is closed: the persistence layer rejects any other value
// at write time, so code past the store boundary may treat it as total.
type Role string

const (
	// RoleAdmin indicates a system administrator.
	RoleAdmin Role = "admin"
	// RoleQA indicates a quality-assurance reviewer.
	RoleQA Role = "qa"
	// RoleOperator indicates a production-line operator.
	RoleOperator Role = "operator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleQA, RoleOperator:
		return true
	default:
		return false
	}
}

// CapabilitySet is the fixed set of boolean permissions derived from a Role.
// Authorization checks consume these predicates instead of branching on the
// role string directly.
type CapabilitySet struct {
	CanModifySites        bool
	CanModifyBatches      bool
	CanAccessAuditLogs    bool
	CanApproveInspections bool
	CanManageUsers        bool
}

// Capabilities maps a Role to its CapabilitySet. Extend by adding a case,
// never by matching on free-text role strings elsewhere.
func (r Role) Capabilities() CapabilitySet {
	switch r {
	case RoleAdmin:
		return CapabilitySet{
			CanModifySites:        true,
			CanModifyBatches:      true,
			CanAccessAuditLogs:    true,
			CanApproveInspections: true,
			CanManageUsers:        true,
		}
	case RoleQA:
		return CapabilitySet{
			CanAccessAuditLogs:    true,
			CanApproveInspections: true,
		}
	case RoleOperator:
		return CapabilitySet{
			CanModifyBatches: true,
		}
	default:
		// Unknown roles never reach here given the store invariant;
		// an empty set denies everything regardless.
		return CapabilitySet{}
	}
}
