package security

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// AdminGate checks admin credentials against a configured bcrypt hash.
// When no credentials are configured the gate stays closed.
type AdminGate struct {
	user         string
	passwordHash string
}

// NewAdminGate creates a new admin gate
func NewAdminGate(user, passwordHash string) *AdminGate {
	return &AdminGate{user: user, passwordHash: passwordHash}
}

// Enabled reports whether admin access is configured at all
func (g *AdminGate) Enabled() bool {
	return g.user != "" && g.passwordHash != ""
}

// Check verifies the supplied credentials
func (g *AdminGate) Check(user, password string) bool {
	if !g.Enabled() {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(g.user)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
}
