package utils

// Auth provides methods for authorization checks.
type Auth struct {
	admins map[string]bool
}

// NewAuth creates an Auth instance from the configured admin ID list.
func NewAuth(adminIDs []string) *Auth {
	admins := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Auth{admins: admins}
}

// IsAdmin checks if a user is one of the configured administrators.
func (a *Auth) IsAdmin(userID string) bool {
	return a.admins[userID]
}

// CheckPermission checks if a user meets the required permission level.
// Admin-gated commands never start a session for unauthorized users.
func (a *Auth) CheckPermission(userID, requiredLevel string) bool {
	switch requiredLevel {
	case "admin":
		return a.IsAdmin(userID)
	case "guest":
		return true
	default:
		return false
	}
}
