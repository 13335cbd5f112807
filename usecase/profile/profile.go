package profile

import (
	"go.uber.org/zap"

	"github.com/fastygo/todoclient/domain"
	"github.com/fastygo/todoclient/store"
)

// UseCase maintains the profile store. The service exposes no public
// profile endpoint, so the projection is built from the session token
// claims.
type UseCase struct {
	session *store.Session
	profile *store.Profile
	logger  *zap.Logger
}

func New(session *store.Session, profile *store.Profile, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		session: session,
		profile: profile,
		logger:  logger,
	}
}

// RefreshFromSession rebuilds the profile projection from the current
// token, or clears it when logged out.
func (uc *UseCase) RefreshFromSession() {
	claims, err := uc.session.Claims()
	if err != nil {
		uc.logger.Debug("token claims not readable", zap.Error(err))
		return
	}
	if claims == nil {
		uc.profile.Clear()
		return
	}

	projection := &domain.UserProfile{}
	if sub, ok := claims["sub"].(string); ok {
		projection.Email = sub
	}
	if name, ok := claims["user_name"].(string); ok {
		projection.UserName = name
	}
	uc.profile.SetUser(projection)
}
