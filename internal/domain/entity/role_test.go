package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleQA.IsValid())
	assert.True(t, RoleOperator.IsValid())

	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("Admin").IsValid())
}

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want CapabilitySet
	}{
		{
			name: "admin has every capability",
			role: RoleAdmin,
			want: CapabilitySet{
				CanModifySites:        true,
				CanModifyBatches:      true,
				CanAccessAuditLogs:    true,
				CanApproveInspections: true,
				CanManageUsers:        true,
			},
		},
		{
			name: "qa reviews and audits but does not modify sites or batches",
			role: RoleQA,
			want: CapabilitySet{
				CanAccessAuditLogs:    true,
				CanApproveInspections: true,
			},
		},
		{
			name: "operator only modifies batches",
			role: RoleOperator,
			want: CapabilitySet{
				CanModifyBatches: true,
			},
		},
		{
			name: "unknown role denies everything",
			role: Role("ghost"),
			want: CapabilitySet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Capabilities())
		})
	}
}

func TestRole_CapabilityScenarios(t *testing.T) {
	assert.False(t, RoleOperator.Capabilities().CanAccessAuditLogs)
	assert.True(t, RoleQA.Capabilities().CanAccessAuditLogs)
	assert.False(t, RoleQA.Capabilities().CanModifyBatches)
	assert.True(t, RoleAdmin.Capabilities().CanManageUsers)
}

func TestUser_FullName(t *testing.T) {
	u := &User{Username: "jdoe", FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", u.FullName())

	u = &User{Username: "jdoe", FirstName: "Jane"}
	assert.Equal(t, "Jane", u.FullName())

	u = &User{Username: "jdoe"}
	assert.Equal(t, "jdoe", u.FullName())
}
