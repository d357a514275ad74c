package testing

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/go-drift/control/pkg/control"
	"github.com/go-drift/control/pkg/inspect"
	"github.com/go-drift/control/pkg/surface"
)

const signup = `
version: v1.0.0
nodes:
  - type: Form
    id: signup
    children:
      - type: Input
        id: email
        name: email
      - type: Button
        id: submit
        props: {disabled: "true"}
`

func TestTester_LoadAndFind(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.Load(signup); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := tester.Find(ByType("Input")).Count(); got != 1 {
		t.Errorf("ByType(Input) count = %d, want 1", got)
	}
	if got := tester.Find(ByName("email")).First().ID(); got != "email" {
		t.Errorf("ByName(email) = %q", got)
	}
	if !tester.Find(ByState("disabled")).Exists() {
		t.Error("expected a disabled control")
	}
	if tester.Find(ByID("missing")).FirstOrNil() != nil {
		t.Error("ByID(missing) should find nothing")
	}
	form := tester.Find(ByID("signup")).First()
	if form.Base().Parent() != tester.Root() {
		t.Error("layout controls hang off the root")
	}
}

func TestTester_Dispatch(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.Load(signup); err != nil {
		t.Fatal(err)
	}
	email := tester.Find(ByID("email")).First().Base()
	clicks := 0
	email.AddSurfaceEvent(nil, "click", func(*surface.NodeEvent) { clicks++ })

	if err := tester.Dispatch(ByID("email"), "click"); err != nil {
		t.Fatal(err)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if err := tester.Dispatch(ByID("nope"), "click"); err == nil {
		t.Error("expected error for an unmatched finder")
	}
}

func TestTester_Cleanup(t *testing.T) {
	tester := NewTester()
	if err := tester.Load(signup); err != nil {
		t.Fatal(err)
	}
	form := tester.Find(ByID("signup")).First()

	tester.Cleanup()
	if !form.Base().IsDisposed() || tester.Env.Registry.Len() != 0 {
		t.Error("Cleanup should dispose every control")
	}
}

func TestFinderResult_Panics(t *testing.T) {
	tester := NewTesterWithT(t)
	defer func() {
		if recover() == nil {
			t.Error("First on an empty result should panic")
		}
	}()
	tester.Find(ByType("Form")).First()
}

func TestRecorder(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.Load(signup); err != nil {
		t.Fatal(err)
	}
	form := tester.Find(ByID("signup")).First()
	rec := NewRecorder(form)

	tester.Find(ByID("submit")).First().Enable()
	form.Dispose()

	want := []string{
		"submit:propertychange",
		"submit:enable",
		"signup:beforedispose",
		"submit:beforedispose",
		"submit:afterdispose",
		"email:beforedispose",
		"email:afterdispose",
		"signup:afterdispose",
	}
	if got := rec.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("entries =\n%v\nwant\n%v", got, want)
	}

	rec.Reset()
	rec.Stop()
	if len(rec.Entries()) != 0 {
		t.Error("Reset should clear entries")
	}
}

func TestMatchesFile(t *testing.T) {
	t.Setenv(UpdateEnv, "")
	env := control.NewEnvironment(nil, nil)
	c := control.New(env, "Button", control.Options{"id": "ok"}, nil)
	snap := inspect.Capture(c)

	path := filepath.Join(t.TempDir(), "testdata", "button.snapshot.yaml")
	if err := UpdateFile(snap, path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	MatchesFile(t, snap, path)

	c.Disable()
	errored := false
	MatchesFile(&errorRecorder{name: t.Name(), onError: func() { errored = true }}, inspect.Capture(c), path)
	if !errored {
		t.Error("expected MatchesFile to report a mismatch")
	}
}

func TestMatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateEnv, "")
	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	MatchesFile(sub, &inspect.Snapshot{}, "/nonexistent/path/snap.yaml")

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestMatchesFile_UpdateMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "update.snapshot.yaml")

	t.Setenv(UpdateEnv, "1")
	MatchesFile(t, &inspect.Snapshot{}, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
