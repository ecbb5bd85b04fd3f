package kernel_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses the valid role names", func(t *testing.T) {
		operator, err := kernel.RoleFromString("Operator")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleOperator, operator)

		admin, err := kernel.RoleFromString("Admin")
		require.NoError(t, err)
		assert.Equal(t, kernel.RoleAdmin, admin)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "operator", "Supervisor", "Unknown"} {
			_, err := kernel.RoleFromString(name)
			require.Error(t, err, name)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("accepts operator and admin", func(t *testing.T) {
		require.NoError(t, kernel.RoleOperator.Validate())
		require.NoError(t, kernel.RoleAdmin.Validate())
	})

	t.Run("rejects the zero value and out-of-range values", func(t *testing.T) {
		require.Error(t, kernel.RoleUnknown.Validate())
		require.Error(t, kernel.Role(99).Validate())
	})
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, kernel.RoleAdmin.IsAdmin())
	assert.False(t, kernel.RoleOperator.IsAdmin())
	assert.False(t, kernel.RoleUnknown.IsAdmin())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Operator", kernel.RoleOperator.String())
	assert.Equal(t, "Admin", kernel.RoleAdmin.String())
	assert.Equal(t, "Unknown", kernel.Role(42).String())
}
