package control

import (
	"log/slog"

	"github.com/go-drift/control/pkg/config"
	"github.com/go-drift/control/pkg/plugin"
	"github.com/go-drift/control/pkg/registry"
	"github.com/go-drift/control/pkg/surface"
)

// Scanner instantiates declaratively marked descendants of container as
// children of parent, inheriting options.
type Scanner interface {
	Scan(container *surface.Node, parent *Control, options Options) error
}

// Environment holds the process-wide services controls are created against.
type Environment struct {
	Config   *config.Config
	Registry *registry.Registry
	IDs      registry.IDGenerator
	Document *surface.Document
	Factory  surface.Factory
	Plugins  *plugin.Manager
	Scanner  Scanner
	Logger   *slog.Logger
}

// NewEnvironment creates an environment with default services.
// A nil cfg uses config.Default(); a nil logger uses slog.Default().
func NewEnvironment(cfg *config.Config, logger *slog.Logger) *Environment {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Environment{
		Config:   cfg,
		Registry: registry.New(logger),
		IDs:      registry.NewSequence(0),
		Document: surface.NewDocument(),
		Factory:  surface.DefaultFactory,
		Plugins:  plugin.NewManager(logger),
		Logger:   logger,
	}
}

// Lookup returns the live control registered under id, or nil.
func (e *Environment) Lookup(id string) *Control {
	c, _ := e.Registry.Get(id).(*Control)
	return c
}

// DisposeAll disposes every registered root control, tearing down the
// environment's live trees.
func (e *Environment) DisposeAll() {
	for _, id := range e.Registry.IDs() {
		c := e.Lookup(id)
		if c == nil || c.parent != nil || c.disposed {
			continue
		}
		c.self.Dispose()
	}
}
