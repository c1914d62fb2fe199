package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		role    Role
		allowed bool
	}{
		{"admin views products", ActionViewProduct, RoleAdmin, true},
		{"manager views products", ActionViewProduct, RoleManager, true},
		{"user views products", ActionViewProduct, RoleUser, true},
		{"admin creates products", ActionCreateProduct, RoleAdmin, true},
		{"manager creates products", ActionCreateProduct, RoleManager, true},
		{"user cannot create products", ActionCreateProduct, RoleUser, false},
		{"manager edits products", ActionEditProduct, RoleManager, true},
		{"user cannot edit products", ActionEditProduct, RoleUser, false},
		{"admin deletes products", ActionDeleteProduct, RoleAdmin, true},
		{"manager cannot delete products", ActionDeleteProduct, RoleManager, false},
		{"user cannot delete products", ActionDeleteProduct, RoleUser, false},
		{"unknown action is denied", Action("drop-table"), RoleAdmin, false},
		{"unknown role is denied", ActionViewProduct, Role("Root"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanPerform(tt.action, tt.role))
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		description string
		role        Role
		ok          bool
	}{
		{"Administrador", RoleAdmin, true},
		{"administrador", RoleAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{"Gerente", RoleManager, true},
		{"manager", RoleManager, true},
		{"Usuário", RoleUser, true},
		{"usuario", RoleUser, true},
		{"  user  ", RoleUser, true},
		{"Supervisor", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		role, ok := ParseRole(tt.description)
		assert.Equal(t, tt.ok, ok, "description %q", tt.description)
		if tt.ok {
			assert.Equal(t, tt.role, role, "description %q", tt.description)
		}
	}
}
