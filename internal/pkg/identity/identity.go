// Package identity resolves the authenticated actor from JWT claims.
package identity

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Claims is the identity context every workflow runs under.
type Claims struct {
	UserID     int
	EmployeeID int
	IsAdmin    bool
	IsManager  bool
}

// FromContext extracts the actor from the request's JWT claims.
func FromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := asInt(raw["user_id"])
	if !ok {
		return Claims{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	employeeID, _ := asInt(raw["employee_id"])
	isAdmin, _ := raw["is_admin"].(bool)
	isManager, _ := raw["is_mgr"].(bool)

	return Claims{
		UserID:     userID,
		EmployeeID: employeeID,
		IsAdmin:    isAdmin,
		IsManager:  isManager,
	}, nil
}

// UserIDOr returns the authenticated user id, or fallback when the call
// runs without a request context (cron, admin CLI).
func UserIDOr(ctx context.Context, fallback int) int {
	claims, err := FromContext(ctx)
	if err != nil || claims.UserID == 0 {
		return fallback
	}
	return claims.UserID
}

// JWT numeric claims decode as float64; tokens we mint also round-trip
// through json.Number in tests.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
