package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitstore/fitstore-go/internal/model"
)

var (
	ErrUnauthenticated = errors.New("you must be signed in")
	ErrForbidden       = errors.New("insufficient permissions")
)

// CheckPermission passes when the user holds at least one of the required
// permission labels. ADMIN is added to every allowed set here, so an admin
// passes any check without call sites special-casing it. Returns
// ErrUnauthenticated for a nil user and a wrapped ErrForbidden naming the
// missing requirement otherwise.
func CheckPermission(user *model.User, required ...string) error {
	if user == nil {
		return ErrUnauthenticated
	}

	allowed := append([]string{model.PermissionAdmin}, required...)
	for _, label := range allowed {
		if user.HasPermission(label) {
			return nil
		}
	}

	return fmt.Errorf("%w: you need one of [%s]", ErrForbidden, strings.Join(required, ", "))
}
