package auth

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgestack/atlas-backend/internal/model"
)

func TestRolePermissions(t *testing.T) {
	t.Run("super admin has everything", func(t *testing.T) {
		perms := RolePermissions(model.RoleSuperAdmin)
		assert.Len(t, perms, len(AllPermissions))
		assert.Contains(t, perms, PermManageRoles)
	})

	t.Run("admin lacks role management only", func(t *testing.T) {
		perms := RolePermissions(model.RoleAdmin)
		assert.Len(t, perms, len(AllPermissions)-1)
		assert.NotContains(t, perms, PermManageRoles)
		assert.Contains(t, perms, PermDeleteUsers)
	})

	t.Run("editor cannot delete content except testimonials", func(t *testing.T) {
		perms := RolePermissions(model.RoleEditor)
		assert.Contains(t, perms, PermDeleteTestimonials)
		assert.NotContains(t, perms, PermDeleteServices)
		assert.NotContains(t, perms, PermDeletePortfolio)
		assert.NotContains(t, perms, PermViewUsers)
		assert.NotContains(t, perms, PermEditSettings)
	})

	t.Run("client is read only", func(t *testing.T) {
		perms := RolePermissions(model.RoleClient)
		assert.ElementsMatch(t, []Permission{PermViewDashboard, PermViewServices, PermViewPortfolio}, perms)
	})

	t.Run("unknown role gets nothing", func(t *testing.T) {
		assert.Empty(t, RolePermissions(model.Role("ghost")))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		perms := RolePermissions(model.RoleClient)
		perms[0] = "TAMPERED"
		assert.NotContains(t, RolePermissions(model.RoleClient), Permission("TAMPERED"))
	})
}

func TestEffectivePermissions(t *testing.T) {
	t.Run("custom grants are additive", func(t *testing.T) {
		perms := EffectivePermissions(model.RoleClient, []string{string(PermEditServices)})
		assert.Contains(t, perms, string(PermViewServices))
		assert.Contains(t, perms, string(PermEditServices))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		perms := EffectivePermissions(model.RoleClient, []string{string(PermViewServices), string(PermViewServices)})
		count := 0
		for _, p := range perms {
			if p == string(PermViewServices) {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("sorted for stable output", func(t *testing.T) {
		perms := EffectivePermissions(model.RoleEditor, []string{"ZEBRA", "ALPHA"})
		assert.True(t, sort.StringsAreSorted(perms))
	})

	t.Run("empty custom entries ignored", func(t *testing.T) {
		perms := EffectivePermissions(model.RoleClient, []string{""})
		assert.NotContains(t, perms, "")
	})
}

func TestHasAll(t *testing.T) {
	granted := []string{string(PermViewServices), string(PermEditServices)}
	assert.True(t, HasAll(granted, PermViewServices))
	assert.True(t, HasAll(granted, PermViewServices, PermEditServices))
	assert.False(t, HasAll(granted, PermViewServices, PermDeleteServices))
	assert.True(t, HasAll(granted))
}

func TestHasAny(t *testing.T) {
	granted := []string{string(PermViewServices)}
	assert.True(t, HasAny(granted, PermDeleteServices, PermViewServices))
	assert.False(t, HasAny(granted, PermDeleteServices))
	assert.False(t, HasAny(nil, PermViewServices))
}
