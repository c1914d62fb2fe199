package auth

import "strings"

// Role is a closed permission tier. It is decoded once at login from the
// user's profile description and carried opaquely in the session afterwards.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleUser    Role = "User"
)

// Action names a guarded operation.
type Action string

const (
	ActionViewProduct   Action = "view-product"
	ActionCreateProduct Action = "create-product"
	ActionEditProduct   Action = "edit-product"
	ActionDeleteProduct Action = "delete-product"
)

// permissions is the static rule table for product mutations.
var permissions = map[Action]map[Role]bool{
	ActionViewProduct:   {RoleAdmin: true, RoleManager: true, RoleUser: true},
	ActionCreateProduct: {RoleAdmin: true, RoleManager: true},
	ActionEditProduct:   {RoleAdmin: true, RoleManager: true},
	ActionDeleteProduct: {RoleAdmin: true},
}

// CanPerform reports whether role may execute action. Unknown actions and
// unknown roles are always denied.
func CanPerform(action Action, role Role) bool {
	return permissions[action][role]
}

// roleNames maps profile descriptions to roles. The seed data ships
// Portuguese descriptions; English names are accepted as well.
var roleNames = map[string]Role{
	"admin":         RoleAdmin,
	"administrador": RoleAdmin,
	"manager":       RoleManager,
	"gerente":       RoleManager,
	"user":          RoleUser,
	"usuário":       RoleUser,
	"usuario":       RoleUser,
}

// ParseRole resolves a free-text profile description to a Role,
// case-insensitively. ok is false for anything outside the closed set.
func ParseRole(description string) (Role, bool) {
	role, ok := roleNames[strings.ToLower(strings.TrimSpace(description))]
	return role, ok
}

// Context is the authentication context derived from a validated session.
type Context struct {
	Name string
	Role Role
}
