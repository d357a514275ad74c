package testing

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/declarative"
)

// RootType is the type of the control a Tester hosts layouts in.
const RootType = "Page"

// Tester hosts control trees in an isolated environment with a silent
// logger and a declarative scanner that builds unknown types as plain
// controls.
type Tester struct {
	Env   *control.Environment
	Types *declarative.Types
	root  *control.Control
}

// NewTester creates a tester. Call Cleanup() when done, or use
// NewTesterWithT() instead.
func NewTester() *Tester {
	env := control.NewEnvironment(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	types := declarative.NewTypes()
	types.Fallback = declarative.Plain
	declarative.Install(env, types)
	return &Tester{Env: env, Types: types}
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes every control created in the tester's environment.
func (t *Tester) Cleanup() {
	t.Env.DisposeAll()
	t.root = nil
}

// Load replaces the current tree with the controls described by a layout
// document, hosted in a rendered root control.
func (t *Tester) Load(layout string) error {
	l, err := declarative.ParseLayout([]byte(layout))
	if err != nil {
		return err
	}
	if t.root != nil {
		t.root.Dispose()
	}
	root, err := l.Mount(t.Env, RootType)
	t.root = root
	return err
}

// Root returns the root control, or nil before Load.
func (t *Tester) Root() *control.Control {
	return t.root
}

// Find evaluates finder against the loaded tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return Find(t.root, finder)
}

// Dispatch fires a typ surface event on the main node of the first control
// matched by finder.
func (t *Tester) Dispatch(finder Finder, typ string) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Dispatch: finder matched no controls: %s", finder.Description())
	}
	main := result.First().Base().Main()
	if main == nil {
		return fmt.Errorf("Dispatch: control has no main node: %s", finder.Description())
	}
	main.DispatchEvent(typ, nil)
	return nil
}
