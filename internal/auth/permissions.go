// Package auth holds the permission model and the token service. The role
// defaults are static tables; per-user grants are additive on top, never
// subtractive.
package auth

import (
	"sort"

	"github.com/forgestack/atlas-backend/internal/model"
)

// Permission is a closed enum of dashboard capabilities.
type Permission string

const (
	PermViewDashboard Permission = "VIEW_DASHBOARD"

	PermViewServices   Permission = "VIEW_SERVICES"
	PermCreateServices Permission = "CREATE_SERVICES"
	PermEditServices   Permission = "EDIT_SERVICES"
	PermDeleteServices Permission = "DELETE_SERVICES"

	PermViewPortfolio   Permission = "VIEW_PORTFOLIO"
	PermCreatePortfolio Permission = "CREATE_PORTFOLIO"
	PermEditPortfolio   Permission = "EDIT_PORTFOLIO"
	PermDeletePortfolio Permission = "DELETE_PORTFOLIO"

	PermViewTechnologies   Permission = "VIEW_TECHNOLOGIES"
	PermCreateTechnologies Permission = "CREATE_TECHNOLOGIES"
	PermEditTechnologies   Permission = "EDIT_TECHNOLOGIES"
	PermDeleteTechnologies Permission = "DELETE_TECHNOLOGIES"

	PermViewTestimonials   Permission = "VIEW_TESTIMONIALS"
	PermCreateTestimonials Permission = "CREATE_TESTIMONIALS"
	PermEditTestimonials   Permission = "EDIT_TESTIMONIALS"
	PermDeleteTestimonials Permission = "DELETE_TESTIMONIALS"

	PermViewCareers   Permission = "VIEW_CAREERS"
	PermCreateCareers Permission = "CREATE_CAREERS"
	PermEditCareers   Permission = "EDIT_CAREERS"
	PermDeleteCareers Permission = "DELETE_CAREERS"

	PermViewCMS   Permission = "VIEW_CMS"
	PermCreateCMS Permission = "CREATE_CMS"
	PermEditCMS   Permission = "EDIT_CMS"
	PermDeleteCMS Permission = "DELETE_CMS"

	PermViewUsers   Permission = "VIEW_USERS"
	PermCreateUsers Permission = "CREATE_USERS"
	PermEditUsers   Permission = "EDIT_USERS"
	PermDeleteUsers Permission = "DELETE_USERS"
	PermManageRoles Permission = "MANAGE_ROLES"

	PermViewSettings Permission = "VIEW_SETTINGS"
	PermEditSettings Permission = "EDIT_SETTINGS"
)

// AllPermissions enumerates every defined permission.
var AllPermissions = []Permission{
	PermViewDashboard,
	PermViewServices, PermCreateServices, PermEditServices, PermDeleteServices,
	PermViewPortfolio, PermCreatePortfolio, PermEditPortfolio, PermDeletePortfolio,
	PermViewTechnologies, PermCreateTechnologies, PermEditTechnologies, PermDeleteTechnologies,
	PermViewTestimonials, PermCreateTestimonials, PermEditTestimonials, PermDeleteTestimonials,
	PermViewCareers, PermCreateCareers, PermEditCareers, PermDeleteCareers,
	PermViewCMS, PermCreateCMS, PermEditCMS, PermDeleteCMS,
	PermViewUsers, PermCreateUsers, PermEditUsers, PermDeleteUsers, PermManageRoles,
	PermViewSettings, PermEditSettings,
}

// rolePermissions is the static role -> default permission table.
//   - super_admin: everything
//   - admin: everything except role management
//   - editor: content view/create/edit, delete only on testimonials; no
//     user or settings access
//   - client: read-only dashboard/services/portfolio
var rolePermissions = map[model.Role][]Permission{
	model.RoleSuperAdmin: AllPermissions,
	model.RoleAdmin:      adminPermissions(),
	model.RoleEditor: {
		PermViewDashboard,
		PermViewServices, PermCreateServices, PermEditServices,
		PermViewPortfolio, PermCreatePortfolio, PermEditPortfolio,
		PermViewTechnologies, PermCreateTechnologies, PermEditTechnologies,
		PermViewTestimonials, PermCreateTestimonials, PermEditTestimonials, PermDeleteTestimonials,
		PermViewCareers, PermCreateCareers, PermEditCareers,
		PermViewCMS, PermCreateCMS, PermEditCMS,
	},
	model.RoleClient: {
		PermViewDashboard,
		PermViewServices,
		PermViewPortfolio,
	},
}

func adminPermissions() []Permission {
	out := make([]Permission, 0, len(AllPermissions)-1)
	for _, p := range AllPermissions {
		if p == PermManageRoles {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RolePermissions returns the default permission set for a role. Unknown
// roles get nothing.
func RolePermissions(role model.Role) []Permission {
	defaults := rolePermissions[role]
	out := make([]Permission, len(defaults))
	copy(out, defaults)
	return out
}

// EffectivePermissions is the deduplicated union of role defaults and the
// user's custom grants, sorted for stable token payloads.
func EffectivePermissions(role model.Role, custom []string) []string {
	seen := map[string]struct{}{}
	for _, p := range rolePermissions[role] {
		seen[string(p)] = struct{}{}
	}
	for _, p := range custom {
		if p != "" {
			seen[p] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// HasAll reports whether granted covers every required permission.
func HasAll(granted []string, required ...Permission) bool {
	set := toSet(granted)
	for _, p := range required {
		if _, ok := set[string(p)]; !ok {
			return false
		}
	}
	return true
}

// HasAny reports whether granted covers at least one required permission.
func HasAny(granted []string, required ...Permission) bool {
	set := toSet(granted)
	for _, p := range required {
		if _, ok := set[string(p)]; ok {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
