package testing

import (
	"os"
	"path/filepath"

	"github.com/go-drift/control/pkg/inspect"
)

// UpdateEnv names the environment variable that switches MatchesFile to
// rewriting golden files.
const UpdateEnv = "CONTROL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// MatchesFile compares snap against a golden file. On mismatch it reports
// a diff and instructions for updating. When CONTROL_UPDATE_SNAPSHOTS=1 is
// set, the file is silently updated instead.
func MatchesFile(t TestingT, snap *inspect.Snapshot, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := UpdateFile(snap, path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}
	expected, err := inspect.Unmarshal(data)
	if err != nil {
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := snap.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes snap to path, creating directories as needed.
func UpdateFile(snap *inspect.Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := snap.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
