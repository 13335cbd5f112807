package domain

// UserProfile is the read-only client-side projection of a server
// account. No password or other security data is retained here.
type UserProfile struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
}

// DisplayName prefers the chosen username and falls back to the real
// name or email.
func (u *UserProfile) DisplayName() string {
	switch {
	case u == nil:
		return ""
	case u.UserName != "":
		return u.UserName
	case u.FirstName != "" || u.LastName != "":
		if u.FirstName == "" {
			return u.LastName
		}
		if u.LastName == "" {
			return u.FirstName
		}
		return u.FirstName + " " + u.LastName
	default:
		return u.Email
	}
}
