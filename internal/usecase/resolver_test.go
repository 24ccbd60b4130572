package usecase

import (
	"context"
	"errors"
	"testing"

	"project-portal/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolverPriority(t *testing.T) {
	phone := strPtr("5551234567")
	admin := newFakeStore(entity.RoleAdmin, true, newIdentity(t, entity.RoleAdmin, "shared@example.com", phone, "a"))
	user := newFakeStore(entity.RoleUser, true, newIdentity(t, entity.RoleUser, "shared@example.com", phone, "u"))
	employee := newFakeStore(entity.RoleEmployee, false, newIdentity(t, entity.RoleEmployee, "shared@example.com", phone, "e"))

	resolver := NewIdentityResolver(zap.NewNop(), admin, user, employee)

	identity, err := resolver.Resolve(context.Background(), entity.EmailContact("shared@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
	assert.Equal(t, 0, user.lookups, "search stops at the first hit")

	identity, err = resolver.Resolve(context.Background(), entity.PhoneContact("5551234567"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
}

func TestResolverUserBeforeEmployee(t *testing.T) {
	admin := newFakeStore(entity.RoleAdmin, true)
	user := newFakeStore(entity.RoleUser, true, newIdentity(t, entity.RoleUser, "both@example.com", nil, "u"))
	employee := newFakeStore(entity.RoleEmployee, false, newIdentity(t, entity.RoleEmployee, "both@example.com", nil, "e"))

	resolver := NewIdentityResolver(zap.NewNop(), admin, user, employee)

	identity, err := resolver.Resolve(context.Background(), entity.EmailContact("both@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, identity.Role)
	assert.Equal(t, 0, employee.lookups)
}

func TestResolverEmployeeByEmailOnly(t *testing.T) {
	phone := strPtr("5559990000")
	employee := newFakeStore(entity.RoleEmployee, false, newIdentity(t, entity.RoleEmployee, "emp@example.com", phone, "e"))
	resolver := NewIdentityResolver(zap.NewNop(),
		newFakeStore(entity.RoleAdmin, true),
		newFakeStore(entity.RoleUser, true),
		employee,
	)

	identity, err := resolver.Resolve(context.Background(), entity.EmailContact("emp@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, identity.Role)

	lookupsBefore := employee.lookups
	_, err = resolver.Resolve(context.Background(), entity.PhoneContact("5559990000"))
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, lookupsBefore, employee.lookups, "employee store is never asked for phones")
}

func TestResolverStoreError(t *testing.T) {
	admin := newFakeStore(entity.RoleAdmin, true)
	admin.findErr = errors.New("db down")
	resolver := NewIdentityResolver(zap.NewNop(), admin, newFakeStore(entity.RoleUser, true))

	_, err := resolver.Resolve(context.Background(), entity.EmailContact("a@example.com"))
	assert.True(t, IsKind(err, KindInternal))
	assert.ErrorIs(t, err, admin.findErr)
}

func TestResolverStoreFor(t *testing.T) {
	admin := newFakeStore(entity.RoleAdmin, true)
	user := newFakeStore(entity.RoleUser, true)
	resolver := NewIdentityResolver(zap.NewNop(), admin, user)

	store, ok := resolver.StoreFor(entity.RoleUser)
	assert.True(t, ok)
	assert.Same(t, user, store)

	_, ok = resolver.StoreFor(entity.RoleEmployee)
	assert.False(t, ok)
}
