package rbac_test

import (
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"
	"github.com/SirTuppy/route-setter-scheduler/internal/rbac"
	"github.com/SirTuppy/route-setter-scheduler/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	e, err := infra.NewEnforcer()
	require.NoError(t, err)
	svc, err := rbac.NewService(e)
	require.NoError(t, err)
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"setter reads schedule", domain.RoleSetter, "schedule", "read", true},
		{"setter cannot write schedule", domain.RoleSetter, "schedule", "write", false},
		{"setter requests time off", domain.RoleSetter, "timeoff", "create", true},
		{"head setter writes schedule", domain.RoleHeadSetter, "schedule", "write", true},
		{"head setter inherits setter read", domain.RoleHeadSetter, "gym", "read", true},
		{"head setter cannot edit gyms", domain.RoleHeadSetter, "gym", "write", false},
		{"setter cannot print yellow page", domain.RoleSetter, "yellow_page", "read", false},
		{"head setter prints yellow page", domain.RoleHeadSetter, "yellow_page", "read", true},
		{"admin approves time off", domain.RoleAdmin, "timeoff", "approve", true},
		{"admin edits gyms", domain.RoleAdmin, "gym", "write", true},
		{"unknown role", "guest", "schedule", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				UserID:   "u-1",
				Role:     tc.role,
				Resource: tc.resource,
				Action:   tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}
}

func TestService_Permissions(t *testing.T) {
	svc := newService(t)

	setter, err := svc.Permissions(domain.RoleSetter)
	require.NoError(t, err)
	admin, err := svc.Permissions(domain.RoleAdmin)
	require.NoError(t, err)

	assert.Len(t, setter, len(rbac.DefaultPolicy[domain.RoleSetter]))
	assert.Greater(t, len(admin), len(setter))
}
