// Package loader constructs and memoizes per-type renderer modules.
//
// A module is built at most once per process: concurrent first loads are
// deduplicated through singleflight, and every later load returns the
// memoized module. The shared text measurer is constructed before any
// module, so modules never race on it.
package loader

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/layout"
	"github.com/lycosa9527/mindgraph/pkg/measure"
	"github.com/lycosa9527/mindgraph/pkg/spec"
)

// Module bundles everything needed to lay out one diagram type.
type Module struct {
	Type   spec.Type
	Config spec.Config
	Engine *layout.Engine
}

// Loader builds modules on demand and memoizes them for the process
// lifetime. Safe for concurrent use.
type Loader struct {
	measurer layout.Measurer
	logger   *log.Logger

	mu      sync.Mutex
	modules map[spec.Type]*Module
	group   singleflight.Group
}

// New creates a Loader. A nil measurer falls back to the font-backed
// default; a nil logger discards load logs.
func New(m layout.Measurer, logger *log.Logger) *Loader {
	if m == nil {
		m = measure.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		measurer: m,
		logger:   logger,
		modules:  make(map[spec.Type]*Module),
	}
}

// Load returns the module for a type name, building it on first use.
// Load honors ctx cancellation while waiting, but an in-flight build is
// never abandoned: the next call for the same type still reuses it.
// There is no internal timeout; the caller owns deadline policy.
func (l *Loader) Load(ctx context.Context, name string) (*Module, error) {
	t, cfg, err := spec.Lookup(name)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	if mod, ok := l.modules[t]; ok {
		l.mu.Unlock()
		return mod, nil
	}
	l.mu.Unlock()

	ch := l.group.DoChan(string(t), func() (any, error) {
		mod := &Module{Type: t, Config: cfg, Engine: layout.New(l.measurer)}
		l.mu.Lock()
		l.modules[t] = mod
		l.mu.Unlock()
		l.logger.Debug("loaded module", "type", t, "family", cfg.Family)
		return mod, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(errors.ErrCodeModuleLoad, ctx.Err(), "load %s", t)
	case res := <-ch:
		if res.Err != nil {
			return nil, errors.Wrap(errors.ErrCodeModuleLoad, res.Err, "load %s", t)
		}
		return res.Val.(*Module), nil
	}
}
