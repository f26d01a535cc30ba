package authroles

import (
	"strings"

	domainauth "github.com/jobtrail/jobtrail-api/internal/domain/auth"
)

// StaticRoleMapper grants the admin role to a fixed set of email addresses
// and the user role to everyone else.
type StaticRoleMapper struct {
	adminEmails map[string]struct{}
}

// NewStaticRoleMapper builds a mapper from a list of admin emails.
// Emails are matched case-insensitively.
func NewStaticRoleMapper(adminEmails []string) StaticRoleMapper {
	m := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		m[e] = struct{}{}
	}
	return StaticRoleMapper{adminEmails: m}
}

func (m StaticRoleMapper) Map(email string) domainauth.Role {
	if _, ok := m.adminEmails[strings.ToLower(strings.TrimSpace(email))]; ok {
		return domainauth.RoleAdmin
	}
	return domainauth.RoleUser
}
