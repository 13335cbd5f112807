package transport

// TokenResponse is the success body of POST /auth/login and
// GET /auth/check_auth.
type TokenResponse struct {
	Token string `json:"token"`
}
