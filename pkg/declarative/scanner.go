package declarative

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/errors"
	"github.com/go-drift/control/pkg/surface"
)

// AttrType names the type attribute after the configured UI prefix.
const AttrType = "type"

// Scanner creates controls for marked nodes. It implements control.Scanner.
type Scanner struct {
	Env   *control.Environment
	Types *Types
}

// Install creates a scanner for env and makes it the environment's scanner,
// so Control.InitChildren uses it.
func Install(env *control.Environment, types *Types) *Scanner {
	s := &Scanner{Env: env, Types: types}
	env.Scanner = s
	return s
}

// Scan walks the descendants of container depth-first. Every unbound node
// carrying a type attribute becomes a rendered control, added as a child of
// parent (when not nil) and used as the parent for its own subtree. Nodes
// already bound to a control are skipped with their subtree. Failures do
// not stop the walk; they are joined into the returned error.
func (s *Scanner) Scan(container *surface.Node, parent *control.Control, options control.Options) error {
	if container == nil {
		return nil
	}
	var errs []error
	for _, n := range container.Children() {
		errs = s.scan(n, parent, options, errs)
	}
	return errors.Join(errs...)
}

func (s *Scanner) scan(n *surface.Node, parent *control.Control, options control.Options, errs []error) []error {
	cfg := s.Env.Config
	if _, bound := n.Attr(cfg.InstanceAttr); bound {
		return errs
	}

	next := parent
	if typ, ok := n.Attr(cfg.UIPrefix + "-" + AttrType); ok && typ != "" {
		comp, err := s.create(n, typ, options)
		if err != nil {
			return append(errs, err)
		}
		if parent != nil {
			parent.AddChild(comp)
		}
		comp.Render()
		next = comp.Base()
		s.Env.Logger.Debug("control created from markup",
			slog.String("type", typ),
			slog.String("id", comp.ID()),
		)
	}

	for _, child := range n.Children() {
		errs = s.scan(child, next, options, errs)
	}
	return errs
}

func (s *Scanner) create(n *surface.Node, typ string, inherited control.Options) (comp control.Component, err error) {
	ctor, ok := s.Types.Lookup(typ)
	if !ok {
		return nil, scanError(typ, fmt.Errorf("unknown control type %q", typ))
	}

	opts := inherited.Clone()
	for k, v := range NodeOptions(s.Env.Config.UIPrefix, n) {
		opts[k] = v
	}
	opts[control.PropMain] = n

	defer func() {
		if r := recover(); r != nil {
			comp = nil
			if e, ok := r.(error); ok {
				err = scanError(typ, e)
				return
			}
			err = scanError(typ, fmt.Errorf("%v", r))
		}
	}()
	comp = ctor(s.Env, typ, opts)
	if comp == nil {
		return nil, scanError(typ, fmt.Errorf("constructor for %q returned nil", typ))
	}
	return comp, nil
}

// NodeOptions returns the options declared on n by prefix-* attributes,
// except the type attribute. Dashed names become camel case.
func NodeOptions(prefix string, n *surface.Node) control.Options {
	opts := make(control.Options)
	p := prefix + "-"
	for _, name := range n.AttrNames() {
		key, ok := strings.CutPrefix(name, p)
		if !ok || key == AttrType || key == "" {
			continue
		}
		v, _ := n.Attr(name)
		opts[Camel(key)] = v
	}
	return opts
}

// Camel turns "child-name" into "childName".
func Camel(s string) string {
	parts := strings.Split(s, "-")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}

// Kebab turns "childName" into "child-name".
func Kebab(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func scanError(typ string, err error) error {
	return &errors.ControlError{
		Op:   "declarative.Scan",
		Kind: errors.KindScan,
		Err:  fmt.Errorf("%s: %w", typ, err),
	}
}
