package gateway

import (
	"context"
	"net/url"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/todoclient/api/transport"
)

// Endpoint paths, relative to the configured base URL.
const (
	pathRegister            = "/auth/register"
	pathActivateAccount     = "/auth/activate_account"
	pathLogin               = "/auth/login"
	pathLogout              = "/auth/logout"
	pathForgotPasswordEmail = "/auth/get_forgot_password_email"
	pathForgotPassword      = "/auth/forgot_password"
	pathCheckAuth           = "/auth/check_auth"
)

// Register creates a new account. No auth header is sent.
func (c *Client) Register(ctx context.Context, user transport.RegisterRequest) (*Response, error) {
	return c.doJSON(ctx, fasthttp.MethodPost, pathRegister, "", user)
}

// ActivateAccount confirms a freshly registered account using the
// activation token from the confirmation email.
func (c *Client) ActivateAccount(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, fasthttp.MethodPost, pathActivateAccount, token, nil)
}

// Login exchanges credentials for a session token. The success body is
// a transport.TokenResponse.
func (c *Client) Login(ctx context.Context, form transport.LoginRequest) (*Response, error) {
	form.Normalize()
	return c.doJSON(ctx, fasthttp.MethodPost, pathLogin, "", form)
}

// Logout invalidates the session behind the token server-side.
func (c *Client) Logout(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, fasthttp.MethodPost, pathLogout, token, nil)
}

// RequestPasswordResetEmail asks the service to mail a reset link to the
// given address. No auth header is sent.
func (c *Client) RequestPasswordResetEmail(ctx context.Context, email string) (*Response, error) {
	return c.do(ctx, fasthttp.MethodGet, pathForgotPasswordEmail+"/"+url.PathEscape(email), "", nil)
}

// SubmitNewPassword completes a password reset using the token from the
// reset email.
func (c *Client) SubmitNewPassword(ctx context.Context, token, password string) (*Response, error) {
	return c.doJSON(ctx, fasthttp.MethodPost, pathForgotPassword, token, transport.NewPasswordRequest{NewPassword: password})
}

// CheckAuth verifies a session token against the service. Used by the
// connectivity monitor and status reporting.
func (c *Client) CheckAuth(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, fasthttp.MethodGet, pathCheckAuth, token, nil)
}
