package transport

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /auth/login. Identifier is either an
// email or a username; Device and IPAddress describe the caller and
// default to "unknown" when left empty.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Device     string `json:"device"`
	IPAddress  string `json:"ip_address"`
	RememberMe bool   `json:"remember_me"`
}

// Normalize fills the device descriptor defaults the API expects.
func (r *LoginRequest) Normalize() {
	if r.Device == "" {
		r.Device = "unknown"
	}
	if r.IPAddress == "" {
		r.IPAddress = "unknown"
	}
}

// NewPasswordRequest is the body of POST /auth/forgot_password.
type NewPasswordRequest struct {
	NewPassword string `json:"new_password"`
}
