package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ActionFunc handles a single named UI action dispatched into the store
// layer.
type ActionFunc func(ctx context.Context, payload interface{}) (interface{}, error)

// Dispatcher routes named actions from the UI layer to their handlers.
// It keeps the UI decoupled from the concrete use cases behind it.
type Dispatcher struct {
	mu      sync.RWMutex
	actions map[string]ActionFunc
	logger  *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		actions: make(map[string]ActionFunc),
		logger:  logger,
	}
}

// Register binds a handler to an action name, replacing any previous
// binding.
func (d *Dispatcher) Register(name string, fn ActionFunc) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.actions[name] = fn
	d.mu.Unlock()
}

// Dispatch invokes the handler registered under name.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, payload interface{}) (interface{}, error) {
	d.mu.RLock()
	fn, ok := d.actions[name]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("action %q not registered", name)
	}
	d.logger.Debug("dispatching action", zap.String("action", name))
	return fn(ctx, payload)
}

// Actions lists the registered action names in sorted order.
func (d *Dispatcher) Actions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.actions))
	for name := range d.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
