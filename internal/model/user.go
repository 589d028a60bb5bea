package model

import (
	"slices"
	"strings"
	"time"
)

// Permission labels a user can hold. A user with ADMIN passes every
// permission check regardless of what else is required.
const (
	PermissionAdmin            = "ADMIN"
	PermissionUser             = "USER"
	PermissionItemCreate       = "ITEMCREATE"
	PermissionItemUpdate       = "ITEMUPDATE"
	PermissionItemDelete       = "ITEMDELETE"
	PermissionPermissionUpdate = "PERMISSIONUPDATE"
)

// AllPermissions lists every recognized permission label.
var AllPermissions = []string{
	PermissionAdmin,
	PermissionUser,
	PermissionItemCreate,
	PermissionItemUpdate,
	PermissionItemDelete,
	PermissionPermissionUpdate,
}

// User represents a user account.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Permissions      []string
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPermission reports whether the user holds the given label.
func (u *User) HasPermission(label string) bool {
	return slices.Contains(u.Permissions, label)
}

// ValidPermission reports whether label is a recognized permission.
func ValidPermission(label string) bool {
	return slices.Contains(AllPermissions, label)
}

// NormalizeEmail lowercases an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
