package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Roles  []string
}

func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
