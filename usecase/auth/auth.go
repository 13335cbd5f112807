package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/fastygo/todoclient/api/gateway"
	"github.com/fastygo/todoclient/api/transport"
	"github.com/fastygo/todoclient/domain"
	"github.com/fastygo/todoclient/store"
	"github.com/fastygo/todoclient/usecase"
)

// UseCase orchestrates the authentication flows: it drives the gateway
// and keeps the session and profile stores in sync with the outcome.
type UseCase struct {
	gw      *gateway.Client
	session *store.Session
	profile *store.Profile
	tasks   *store.Tasks
	device  string
	logger  *zap.Logger
}

func New(gw *gateway.Client, session *store.Session, profile *store.Profile, tasks *store.Tasks, device string, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		gw:      gw,
		session: session,
		profile: profile,
		tasks:   tasks,
		device:  device,
		logger:  logger,
	}
}

// Login exchanges credentials for a session token and stores it.
func (uc *UseCase) Login(ctx context.Context, identifier, password string, rememberMe bool) error {
	form := transport.LoginRequest{
		Identifier: identifier,
		Password:   password,
		Device:     uc.device,
		RememberMe: rememberMe,
	}

	resp, err := uc.gw.Login(ctx, form)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "login request failed", err)
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "login")
	}

	var token transport.TokenResponse
	if err := resp.Decode(&token); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "malformed login response", err)
	}
	if token.Token == "" {
		return domain.NewError(domain.ErrCodeInternal, "login response carries no token")
	}

	uc.session.SetToken(ctx, token.Token)
	uc.logger.Info("logged in", zap.String("identifier", identifier))
	return nil
}

// Logout invalidates the session server-side and tears down all local
// state. Local state is cleared even when the remote call fails; the
// token is gone either way.
func (uc *UseCase) Logout(ctx context.Context) error {
	token := uc.session.Token()
	if token == "" {
		return domain.ErrNoSession
	}

	resp, err := uc.gw.Logout(ctx, token)
	if err != nil {
		uc.logger.Warn("logout request failed", zap.Error(err))
	} else if !resp.OK() {
		uc.logger.Warn("logout rejected", zap.Int("status", resp.StatusCode))
	}

	uc.session.ClearToken(ctx)
	uc.tasks.Clear()
	uc.profile.Clear()
	return err
}

// Register creates a new account. The account still needs activation
// via the emailed token before it can log in.
func (uc *UseCase) Register(ctx context.Context, user transport.RegisterRequest) error {
	resp, err := uc.gw.Register(ctx, user)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "register request failed", err)
	}
	if resp.StatusCode == http.StatusConflict {
		return domain.NewError(domain.ErrCodeConflict, "account already exists")
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "register")
	}
	uc.logger.Info("account registered", zap.String("email", user.Email))
	return nil
}

// Activate confirms a registered account with the activation token.
func (uc *UseCase) Activate(ctx context.Context, token string) error {
	resp, err := uc.gw.ActivateAccount(ctx, token)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "activation request failed", err)
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "activate account")
	}
	return nil
}

// RequestPasswordReset asks the service to mail a reset link.
func (uc *UseCase) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := uc.gw.RequestPasswordResetEmail(ctx, email)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "password reset request failed", err)
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "request password reset")
	}
	return nil
}

// SubmitNewPassword completes a password reset with the token from the
// reset email.
func (uc *UseCase) SubmitNewPassword(ctx context.Context, token, password string) error {
	resp, err := uc.gw.SubmitNewPassword(ctx, token, password)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "password update request failed", err)
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "submit new password")
	}
	return nil
}

