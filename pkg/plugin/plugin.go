// Package plugin attaches optional behavior to controls and releases it when
// the control is disposed.
package plugin

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-drift/control/pkg/errors"
)

// Host is the control a plugin is attached to.
type Host interface {
	ID() string
}

// Plugin is an attached behavior.
type Plugin interface {
	// Dispose releases any resource the plugin attached to its host.
	Dispose() error
}

// Factory creates a plugin for host from its options.
type Factory func(host Host, options map[string]any) (Plugin, error)

type attached struct {
	name   string
	plugin Plugin
}

// Manager holds plugin factories and the plugins active on each host.
//
// Manager is NOT thread-safe; it follows the single-goroutine model of controls.
type Manager struct {
	factories map[string]Factory
	active    map[Host][]attached
	logger    *slog.Logger
}

// NewManager creates a manager. A nil logger uses slog.Default().
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		factories: make(map[string]Factory),
		active:    make(map[Host][]attached),
		logger:    logger,
	}
}

// Register makes a plugin available under name.
func (m *Manager) Register(name string, f Factory) {
	m.factories[name] = f
}

// Activate creates the named plugin for host. Activating a plugin that is
// already active on host is a no-op.
func (m *Manager) Activate(host Host, name string, options map[string]any) error {
	f, ok := m.factories[name]
	if !ok {
		return &errors.ControlError{
			Op:      "plugin.Activate",
			Kind:    errors.KindPlugin,
			Control: host.ID(),
			Err:     fmt.Errorf("unknown plugin %q", name),
		}
	}
	for _, a := range m.active[host] {
		if a.name == name {
			return nil
		}
	}
	p, err := f(host, options)
	if err != nil {
		return &errors.ControlError{
			Op:      "plugin.Activate",
			Kind:    errors.KindPlugin,
			Control: host.ID(),
			Err:     fmt.Errorf("%s: %w", name, err),
		}
	}
	m.active[host] = append(m.active[host], attached{name: name, plugin: p})
	m.logger.Debug("plugin activated", slog.String("plugin", name), slog.String("control", host.ID()))
	return nil
}

// ActivateAll activates every plugin named in options, a map from plugin
// name to that plugin's options, in name order. Failures are reported and
// do not stop the remaining activations.
func (m *Manager) ActivateAll(host Host, options map[string]any) {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		opts, _ := options[name].(map[string]any)
		if err := m.Activate(host, name, opts); err != nil {
			var ce *errors.ControlError
			if errors.As(err, &ce) {
				errors.Report(ce)
			}
		}
	}
}

// Active returns the names of the plugins active on host, in activation order.
func (m *Manager) Active(host Host) []string {
	list := m.active[host]
	names := make([]string, len(list))
	for i, a := range list {
		names[i] = a.name
	}
	return names
}

// DisposePlugin releases every plugin attached to host, most recent first.
// Errors are reported, not returned.
func (m *Manager) DisposePlugin(host Host) {
	list := m.active[host]
	delete(m.active, host)
	for i := len(list) - 1; i >= 0; i-- {
		if err := list[i].plugin.Dispose(); err != nil {
			errors.Report(&errors.ControlError{
				Op:      "plugin.Dispose",
				Kind:    errors.KindPlugin,
				Control: host.ID(),
				Err:     fmt.Errorf("%s: %w", list[i].name, err),
			})
		}
	}
}
