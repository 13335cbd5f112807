package auth

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/todoclient/api/gateway"
	"github.com/fastygo/todoclient/api/transport"
	"github.com/fastygo/todoclient/domain"
	"github.com/fastygo/todoclient/store"
	"github.com/fastygo/todoclient/store/tokenstore"
)

func newStubGateway(t *testing.T, routes *router.Router) *gateway.Client {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go fasthttp.Serve(ln, routes.Handler) //nolint:errcheck
	t.Cleanup(func() { ln.Close() })

	return gateway.New(gateway.Config{
		BaseURL:        "http://" + ln.Addr().String(),
		RequestTimeout: 2 * time.Second,
	}, nil)
}

func newFixture(t *testing.T, routes *router.Router) (*UseCase, *store.Session, *store.Profile, *store.Tasks) {
	t.Helper()
	gw := newStubGateway(t, routes)
	session := store.NewSession(tokenstore.NewMemory(), nil)
	profile := store.NewProfile()
	tasks := store.NewTasks()
	return New(gw, session, profile, tasks, "test-device", nil), session, profile, tasks
}

func TestLoginStoresToken(t *testing.T) {
	r := router.New()
	r.POST("/auth/login", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString(`{"token":"issued-token"}`)
	})
	uc, session, _, _ := newFixture(t, r)

	if err := uc.Login(context.Background(), "user@example.com", "hunter2", true); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := session.Token(); got != "issued-token" {
		t.Fatalf("stored token = %q, want %q", got, "issued-token")
	}
	if !session.IsLoggedIn() {
		t.Error("IsLoggedIn() = false after a successful login")
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	r := router.New()
	r.POST("/auth/login", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusUnauthorized)
		ctx.SetBodyString(`{"detail":"Invalid credentials"}`)
	})
	uc, session, _, _ := newFixture(t, r)

	err := uc.Login(context.Background(), "user@example.com", "wrong", false)
	if !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		t.Fatalf("err = %v, want UNAUTHORIZED", err)
	}
	if session.IsLoggedIn() {
		t.Error("a rejected login must not leave a session behind")
	}
}

func TestLoginEmptyTokenInResponse(t *testing.T) {
	r := router.New()
	r.POST("/auth/login", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString(`{"token":""}`)
	})
	uc, session, _, _ := newFixture(t, r)

	err := uc.Login(context.Background(), "user@example.com", "hunter2", false)
	if !domain.IsDomainError(err, domain.ErrCodeInternal) {
		t.Fatalf("err = %v, want INTERNAL", err)
	}
	if session.IsLoggedIn() {
		t.Error("an empty token must not be stored")
	}
}

func TestLogoutTearsDownLocalState(t *testing.T) {
	r := router.New()
	r.POST("/auth/logout", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
	})
	uc, session, profile, tasks := newFixture(t, r)
	ctx := context.Background()

	session.SetToken(ctx, "live-token")
	profile.SetUser(&domain.UserProfile{Email: "user@example.com"})
	tasks.ReplaceAll([]domain.Task{{ID: 1, Title: "a"}})

	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if session.IsLoggedIn() {
		t.Error("token survived logout")
	}
	if tasks.Len() != 0 {
		t.Error("task collection survived logout")
	}
	if profile.User() != nil {
		t.Error("profile survived logout")
	}
}

func TestLogoutClearsStateWhenServerRejects(t *testing.T) {
	r := router.New()
	r.POST("/auth/logout", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	})
	uc, session, profile, tasks := newFixture(t, r)
	ctx := context.Background()

	session.SetToken(ctx, "live-token")
	profile.SetUser(&domain.UserProfile{Email: "user@example.com"})
	tasks.ReplaceAll([]domain.Task{{ID: 1, Title: "a"}})

	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("a rejected remote logout must not fail the local one, got %v", err)
	}
	if session.IsLoggedIn() || tasks.Len() != 0 || profile.User() != nil {
		t.Error("local state must be torn down even when the server rejects the logout")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	uc, _, _, _ := newFixture(t, router.New())

	if err := uc.Logout(context.Background()); err != domain.ErrNoSession {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestRegisterConflict(t *testing.T) {
	r := router.New()
	r.POST("/auth/register", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusConflict)
	})
	uc, _, _, _ := newFixture(t, r)

	err := uc.Register(context.Background(), transport.RegisterRequest{Email: "user@example.com"})
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("err = %v, want CONFLICT", err)
	}
}

func TestActivate(t *testing.T) {
	r := router.New()
	r.POST("/auth/activate_account", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
	})
	uc, _, _, _ := newFixture(t, r)

	if err := uc.Activate(context.Background(), "activation-token"); err != nil {
		t.Fatalf("Activate: %v", err)
	}
}
