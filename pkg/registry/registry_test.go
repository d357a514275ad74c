package registry

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"testing"
)

type entry struct{ id string }

func (e *entry) ID() string { return e.id }

func TestRegistry_AddGetRemove(t *testing.T) {
	r := New(nil)
	a := &entry{id: "a"}
	b := &entry{id: "b"}

	r.Add(a)
	r.Add(b)
	if r.Get("a") != a || r.Len() != 2 {
		t.Fatalf("unexpected registry state: %v", r.IDs())
	}
	if got := r.IDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("IDs = %v", got)
	}

	r.Remove(a)
	if r.Get("a") != nil {
		t.Error("Remove should erase the entry")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistry_RemoveKeepsReplacement(t *testing.T) {
	var buf bytes.Buffer
	r := New(slog.New(slog.NewTextHandler(&buf, nil)))
	first := &entry{id: "dup"}
	second := &entry{id: "dup"}

	r.Add(first)
	r.Add(second)
	r.Remove(first)

	if r.Get("dup") != second {
		t.Error("removing a replaced entry must not erase its replacement")
	}
	if !strings.Contains(buf.String(), "identifier reused") {
		t.Errorf("expected duplicate warning, got %q", buf.String())
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(0)
	if got := s.Next(""); got != "ui8785925" {
		t.Errorf("first id = %q, want ui8785925", got)
	}
	if got := s.Next("ctl"); got != "ctl8785926" {
		t.Errorf("second id = %q, want ctl8785926", got)
	}
}

func TestSequence_Concurrent(t *testing.T) {
	s := NewSequence(1)
	const n = 100
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Next("x")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
