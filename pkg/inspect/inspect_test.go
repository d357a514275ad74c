package inspect

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-drift/control/pkg/control"
)

func buildTree(t *testing.T) (*control.Environment, *control.Control) {
	t.Helper()
	env := control.NewEnvironment(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	form := control.New(env, "Form", control.Options{"id": "signup"}, nil)
	email := control.New(env, "Input", control.Options{"disabled": true}, nil)
	form.AddChild(email, "email")
	form.Render()
	return env, form
}

func TestCapture(t *testing.T) {
	_, form := buildTree(t)
	snap := Capture(form)

	root := snap.Root
	if root.ID != "signup" || root.Type != "Form" || root.Phase != "rendered" {
		t.Errorf("root = %+v", root)
	}
	if len(root.Classes) == 0 {
		t.Error("rendered controls carry their classes")
	}
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	child := root.Children[0]
	if child.Name != "email" || child.Phase != "initialized" {
		t.Errorf("child = %+v", child)
	}
	if len(child.States) != 1 || child.States[0] != "disabled" {
		t.Errorf("child states = %v", child.States)
	}
	if child.Classes != nil {
		t.Error("unrendered controls carry no classes")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	_, form := buildTree(t)
	snap := Capture(form)

	data, err := snap.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "id: signup") {
		t.Errorf("unexpected YAML:\n%s", data)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := snap.Diff(back); d != "" {
		t.Errorf("decoded snapshot differs:\n%s", d)
	}
	if _, err := Unmarshal([]byte("root: [")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestDiff(t *testing.T) {
	if d := Diff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("equal texts should not differ: %q", d)
	}

	d := Diff("a\nb\nc\n", "a\nx\nc\n")
	want := "--- expected\n+++ actual\n  a\n- b\n+ x\n  c\n"
	if d != want {
		t.Errorf("Diff =\n%s\nwant\n%s", d, want)
	}
}

func TestSnapshotDiff_AfterChange(t *testing.T) {
	_, form := buildTree(t)
	before := Capture(form)
	form.Disable()
	after := Capture(form)

	d := after.Diff(before)
	if !strings.Contains(d, "+ ") || !strings.Contains(d, "disabled") {
		t.Errorf("diff should show the new state:\n%s", d)
	}
}

func TestTree(t *testing.T) {
	_, form := buildTree(t)
	got := Tree(form)
	want := "Form signup\n  Input ui8785925 \"email\" [disabled]\n"
	if got != want {
		t.Errorf("Tree =\n%s\nwant\n%s", got, want)
	}
}
