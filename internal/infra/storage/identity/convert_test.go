package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

func TestRoleScanner(t *testing.T) {
	var role domain.Role

	require.NoError(t, roleScanner{&role}.Scan([]byte("provider")))
	assert.Equal(t, domain.RoleProvider, role)

	require.NoError(t, roleScanner{&role}.Scan("customer"))
	assert.Equal(t, domain.RoleCustomer, role)

	assert.Error(t, roleScanner{&role}.Scan("superuser"))
	assert.Error(t, roleScanner{&role}.Scan(42))
}

func TestFinishUser_RejectsUnknownRole(t *testing.T) {
	assert.Error(t, finishUser(&domain.User{ID: "u1"}))
	assert.NoError(t, finishUser(&domain.User{ID: "u1", Role: domain.RoleAdmin}))
}
