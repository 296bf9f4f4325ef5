package auth

// Identity represents a verified external authentication identity
// returned by the identity provider. It contains facts only, no decisions.
type Identity struct {
	UID    string         // provider-scoped unique user identifier (sub)
	Claims map[string]any // raw claims embedded in the verified token
}

// RoleClaim returns the role claim carried by the token, or "" when the
// token has no string role claim.
func (i *Identity) RoleClaim() string {
	if i == nil || i.Claims == nil {
		return ""
	}
	role, _ := i.Claims["role"].(string)
	return role
}
