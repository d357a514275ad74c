// Package testing provides helpers for testing controls and widgets.
//
// # Quick Start
//
// Create a tester, load a layout, and make assertions:
//
//	func TestSignup(t *testing.T) {
//	    tester := controltest.NewTesterWithT(t)
//	    tester.Types.Register("Button", NewButton)
//	    if err := tester.Load(signupYAML); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    submit := tester.Find(controltest.ByID("submit")).First()
//	    tester.Dispatch(controltest.ByID("submit"), "click")
//
//	    if !submit.IsDisabled() {
//	        t.Error("expected submit to disable itself")
//	    }
//	}
//
// # Recording Notifications
//
// A Recorder collects the lifecycle and state notifications of controls:
//
//	rec := controltest.NewRecorder(form)
//	form.Dispose()
//	rec.Entries() // ["signup:beforedispose", ...]
//
// # Snapshot Testing
//
// Capture and compare control tree snapshots:
//
//	controltest.MatchesFile(t, inspect.Capture(root), "testdata/signup.snapshot.yaml")
//
// Update snapshots with:
//
//	CONTROL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import controltest "github.com/go-drift/control/pkg/testing"
package testing
