// Package app assembles the store layer into one explicit client
// context object with a defined init (hydrate the persisted token) and
// teardown (close backends) lifecycle. Nothing here is a process-wide
// singleton; UI layers receive an *App at construction.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/todoclient/api/gateway"
	"github.com/fastygo/todoclient/internal/config"
	"github.com/fastygo/todoclient/internal/monitor"
	"github.com/fastygo/todoclient/internal/services"
	"github.com/fastygo/todoclient/internal/services/lifecycle"
	"github.com/fastygo/todoclient/store"
	"github.com/fastygo/todoclient/store/tokenstore"
	"github.com/fastygo/todoclient/usecase"
	authUC "github.com/fastygo/todoclient/usecase/auth"
	profileUC "github.com/fastygo/todoclient/usecase/profile"
	taskUC "github.com/fastygo/todoclient/usecase/task"
)

// App owns the stores, the gateway and the use cases on top of them.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Gateway *gateway.Client

	Session *store.Session
	Tasks   *store.Tasks
	Form    *store.TaskForm
	Profile *store.Profile

	Auth     *authUC.UseCase
	TaskOps  *taskUC.UseCase
	Profiles *profileUC.UseCase

	Monitor    *monitor.Monitor
	Refresher  *services.Refresher
	Dispatcher *usecase.Dispatcher

	lifecycle *lifecycle.Manager
}

// New wires the full client from configuration. The returned App is not
// yet hydrated; call Init before use and Shutdown when done.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tokens, err := openTokenStore(cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}

	gw := gateway.New(gateway.Config{
		BaseURL:        cfg.API.BaseURL,
		RequestTimeout: cfg.API.RequestTimeout,
		Name:           cfg.AppName,
	}, logger)

	session := store.NewSession(tokens, logger)
	tasks := store.NewTasks()
	form := store.NewTaskForm()
	profile := store.NewProfile()

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Gateway: gw,
		Session: session,
		Tasks:   tasks,
		Form:    form,
		Profile: profile,

		Auth:     authUC.New(gw, session, profile, tasks, cfg.API.Device, logger),
		TaskOps:  taskUC.New(gw, session, tasks, form, logger),
		Profiles: profileUC.New(session, profile, logger),

		Dispatcher: usecase.NewDispatcher(logger),
		lifecycle:  lifecycle.New(cfg.Context.ShutdownTimeout, logger),
	}

	a.Monitor = monitor.New(gw, session, cfg.Sync.Interval, logger)
	a.Refresher = services.NewRefresher(a.TaskOps, session, a.Monitor, logger, services.RefresherConfig{
		Interval: cfg.Sync.Interval,
	})

	a.lifecycle.RegisterCloser("token_store", tokens)

	a.registerActions()
	return a, nil
}

// LoginPayload is the payload of the "auth.login" action.
type LoginPayload struct {
	Identifier string
	Password   string
	RememberMe bool
}

func (a *App) registerActions() {
	a.Dispatcher.Register("auth.login", func(ctx context.Context, payload interface{}) (interface{}, error) {
		p, ok := payload.(LoginPayload)
		if !ok {
			return nil, fmt.Errorf("auth.login expects an app.LoginPayload")
		}
		if err := a.Auth.Login(ctx, p.Identifier, p.Password, p.RememberMe); err != nil {
			return nil, err
		}
		a.Profiles.RefreshFromSession()
		return nil, nil
	})
	a.Dispatcher.Register("auth.logout", func(ctx context.Context, payload interface{}) (interface{}, error) {
		return nil, a.Auth.Logout(ctx)
	})
	a.Dispatcher.Register("tasks.refresh", func(ctx context.Context, payload interface{}) (interface{}, error) {
		if err := a.TaskOps.Refresh(ctx); err != nil {
			return nil, err
		}
		return a.Tasks.All(), nil
	})
	a.Dispatcher.Register("tasks.complete", func(ctx context.Context, payload interface{}) (interface{}, error) {
		id, ok := payload.(int)
		if !ok {
			return nil, fmt.Errorf("tasks.complete expects a task id")
		}
		return nil, a.TaskOps.Complete(ctx, id)
	})
	a.Dispatcher.Register("profile.refresh", func(ctx context.Context, payload interface{}) (interface{}, error) {
		a.Profiles.RefreshFromSession()
		return a.Profile.User(), nil
	})
}

// Init hydrates the session from persisted storage and rebuilds the
// profile projection.
func (a *App) Init(ctx context.Context) {
	a.Session.RefreshFromStorage(ctx)
	a.Profiles.RefreshFromSession()
	a.Logger.Debug("client initialized", zap.Bool("logged_in", a.Session.IsLoggedIn()))
}

// StartBackground launches the connectivity monitor and the scheduled
// refresher, registering both for shutdown.
func (a *App) StartBackground() {
	a.Monitor.Start()
	a.lifecycle.Register("monitor", func(ctx context.Context) error {
		a.Monitor.Stop()
		return nil
	})

	if a.Config.Sync.Enabled {
		a.Refresher.Start()
		a.lifecycle.Register("refresher", func(ctx context.Context) error {
			a.Refresher.Stop(ctx)
			return nil
		})
	}
}

// ListenForSignals arranges for cancel to run on SIGINT/SIGTERM.
func (a *App) ListenForSignals(cancel context.CancelFunc) {
	a.lifecycle.Listen(cancel)
}

// Shutdown tears the client down in reverse registration order.
func (a *App) Shutdown(ctx context.Context) error {
	return a.lifecycle.Shutdown(ctx)
}

func openTokenStore(cfg config.SessionConfig) (tokenstore.Store, error) {
	switch cfg.Backend {
	case "memory":
		return tokenstore.NewMemory(), nil
	case "bolt":
		return tokenstore.OpenBolt(cfg.BoltPath)
	case "redis":
		return tokenstore.OpenRedis(tokenstore.RedisConfig{
			URL:      cfg.Redis.URL,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
	case "file", "":
		return tokenstore.NewFile(cfg.FilePath)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
