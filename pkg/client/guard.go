package client

import "strings"

// Access is what the route guard decided for a navigation attempt.
type Access int

const (
	// AccessRender means the requested page may be shown.
	AccessRender Access = iota
	// AccessRedirect means the caller must navigate to Decision.Target
	// instead. The guard never produces an error page.
	AccessRedirect
)

// Decision is the outcome of a guard check.
type Decision struct {
	Access Access
	Target string
}

// RouteRequirement describes who may see a route. A nil Role with
// Public false means any signed-in identity.
type RouteRequirement struct {
	Public bool
	Role   Role
}

// Routes is the navigable surface. Prefix entries gate everything
// under them; the catch-all is handled by Guard.Check for paths that
// match no entry.
var routes = map[string]RouteRequirement{
	"/":      {Public: true},
	"/login": {Public: true},

	"/admin":          {Role: RoleAdmin},
	"/admin/rooms":    {Role: RoleAdmin},
	"/admin/tenants":  {Role: RoleAdmin},
	"/admin/payments": {Role: RoleAdmin},
	"/admin/requests": {Role: RoleAdmin},
	"/admin/notices":  {Role: RoleAdmin},

	"/tenant":           {Role: RoleTenant},
	"/tenant/profile":   {Role: RoleTenant},
	"/tenant/room":      {Role: RoleTenant},
	"/tenant/requests":  {Role: RoleTenant},
	"/tenant/notices":   {Role: RoleTenant},
	"/tenant/documents": {Role: RoleTenant},
}

// NotFoundPath is where unmatched paths land.
const NotFoundPath = "/not-found"

// Landing returns the home page for a role. The switch is exhaustive
// over valid roles; an invalid role falls back to the login page.
func Landing(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleTenant:
		return "/tenant"
	default:
		return "/login"
	}
}

// Decide is the pure guard rule for a single route requirement.
// No identity on a gated route goes to the login page. A signed-in
// identity with the wrong role goes to its own landing page, never an
// error page. Otherwise the page renders.
func Decide(ident *Identity, req RouteRequirement) Decision {
	if req.Public {
		return Decision{Access: AccessRender}
	}
	if ident == nil {
		return Decision{Access: AccessRedirect, Target: "/login"}
	}
	if req.Role != "" && ident.Role != req.Role {
		return Decision{Access: AccessRedirect, Target: Landing(ident.Role)}
	}
	return Decision{Access: AccessRender}
}

// Check resolves a concrete path against the route table and applies
// Decide. Unknown paths render the not-found page for everyone.
func Check(ident *Identity, path string) Decision {
	path = normalize(path)
	req, ok := routes[path]
	if !ok {
		return Decision{Access: AccessRedirect, Target: NotFoundPath}
	}
	return Decide(ident, req)
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
