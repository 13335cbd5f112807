package store

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/fastygo/todoclient/store/tokenstore"
)

// Session is the credential holder: it mirrors the persisted session
// token in memory and exposes the logged-in state. The token is an
// opaque pass-through; no format or expiry validation happens here.
type Session struct {
	mu      sync.RWMutex
	token   string
	storage tokenstore.Store
	logger  *zap.Logger
}

// NewSession wires the holder to a persistence backend. Call
// RefreshFromStorage to hydrate the in-memory token on startup.
func NewSession(storage tokenstore.Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if storage == nil {
		storage = tokenstore.NewMemory()
	}
	return &Session{
		storage: storage,
		logger:  logger,
	}
}

// SetToken persists the token and updates the in-memory value.
// Persistence is best-effort: a storage failure is logged, not treated
// as an authentication failure.
func (s *Session) SetToken(ctx context.Context, token string) {
	if err := s.storage.Save(ctx, token); err != nil {
		s.logger.Warn("failed to persist session token", zap.Error(err))
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// ClearToken removes the persisted token and resets the in-memory value.
func (s *Session) ClearToken(ctx context.Context) {
	if err := s.storage.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear persisted session token", zap.Error(err))
	}
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// RefreshFromStorage re-reads the persisted value into memory,
// reconciling after an external change to the backing store. On a read
// failure the in-memory token is left untouched.
func (s *Session) RefreshFromStorage(ctx context.Context) {
	token, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to read persisted session token", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token returns the current in-memory token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggedIn reports whether a non-empty token is held. Absence of a
// token is the only logged-out signal.
func (s *Session) IsLoggedIn() bool {
	return s.Token() != ""
}

// Claims decodes the token's JWT claims without verifying the
// signature; the client holds no signing key, the server remains the
// authority. Used only for local projections such as the profile email.
func (s *Session) Claims() (jwt.MapClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
