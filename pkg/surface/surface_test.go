package surface

import (
	"reflect"
	"testing"

	"github.com/go-drift/control/pkg/config"
)

type identity struct{ id, typ, skin string }

func (i identity) ID() string   { return i.id }
func (i identity) Type() string { return i.typ }
func (i identity) Skin() string { return i.skin }

func TestPartClasses(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name string
		c    identity
		part string
		want []string
	}{
		{"main", identity{typ: "Button"}, "", []string{"ui-ctrl", "ui-button"}},
		{"main with skin", identity{typ: "Button", skin: "flat"}, "", []string{"ui-ctrl", "ui-button", "skin-flat", "skin-flat-button"}},
		{"part", identity{typ: "Tab"}, "head", []string{"ui-tab-head"}},
		{"part with skin", identity{typ: "Tab", skin: "flat"}, "head", []string{"ui-tab-head", "skin-flat-tab-head"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartClasses(cfg, tt.c, tt.part); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PartClasses = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateClasses(t *testing.T) {
	cfg := config.Default()
	got := StateClasses(cfg, identity{typ: "Button", skin: "flat"}, "disabled")
	want := []string{"ui-button-disabled", "state-disabled", "skin-flat-disabled", "skin-flat-button-disabled"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StateClasses = %v, want %v", got, want)
	}
}

func TestDOMID(t *testing.T) {
	cfg := config.Default()
	c := identity{id: "ui8785925"}
	if got := DOMID(cfg, c, ""); got != "ctrl-ui8785925" {
		t.Errorf("DOMID = %q", got)
	}
	if got := DOMID(cfg, c, "label"); got != "ctrl-ui8785925-label" {
		t.Errorf("DOMID part = %q", got)
	}
}

func TestNode_Classes(t *testing.T) {
	n := NewNode("")
	n.AddClass("a", "b", "a", "")
	n.RemoveClass("a")
	n.AddClass("c")

	if n.Tag() != "div" {
		t.Errorf("Tag = %q, want div", n.Tag())
	}
	if got, want := n.Classes(), []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Classes = %v, want %v", got, want)
	}
	if !n.HasClass("b") || n.HasClass("a") {
		t.Error("HasClass mismatch")
	}
}

func TestNode_Tree(t *testing.T) {
	doc := NewDocument()
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")

	doc.Attach(a)
	a.AppendChild(c)
	a.InsertBefore(b, c)

	if got := a.Children(); len(got) != 2 || got[0] != b || got[1] != c {
		t.Fatalf("children = %v", got)
	}
	if !doc.Contains(c) {
		t.Error("document should contain nested node")
	}

	other := NewNode("other")
	other.AppendChild(b)
	if b.Parent() != other || len(a.Children()) != 1 {
		t.Error("AppendChild should move the node")
	}

	a.Remove()
	if doc.Contains(c) {
		t.Error("removed subtree should be detached")
	}
}

func TestNode_Walk(t *testing.T) {
	root := NewNode("root")
	skip := NewNode("skip")
	skip.AppendChild(NewNode("hidden"))
	root.AppendChild(skip)
	root.AppendChild(NewNode("leaf"))

	var seen []string
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.Tag())
		return n != skip
	})
	want := []string{"root", "skip", "leaf"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("walk = %v, want %v", seen, want)
	}
}

func TestNode_Events(t *testing.T) {
	n := NewNode("button")
	var got []any
	unsub := n.AddEventListener("click", func(ev *NodeEvent) { got = append(got, ev.Detail) })
	n.AddEventListener("click", func(ev *NodeEvent) { got = append(got, "second") })

	n.DispatchEvent("click", 1)
	unsub()
	n.DispatchEvent("click", 2)
	n.RemoveEventListeners("click")
	n.DispatchEvent("click", 3)

	want := []any{1, "second", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dispatched = %v, want %v", got, want)
	}
	if n.ListenerCount("click") != 0 {
		t.Errorf("ListenerCount = %d", n.ListenerCount("click"))
	}
}
