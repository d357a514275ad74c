package event

import (
	"reflect"
	"testing"
)

func TestChannel_EmitOrder(t *testing.T) {
	ch := NewChannel("target")
	var calls []string

	ch.On("change", func(ev *Event, args ...any) { calls = append(calls, "first") })
	ch.SetHandler("change", func(ev *Event, args ...any) { calls = append(calls, "direct") })
	ch.On("change", func(ev *Event, args ...any) { calls = append(calls, "second") })

	ch.Emit("change")

	want := []string{"direct", "first", "second"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestChannel_EventRecordAndArgs(t *testing.T) {
	ch := NewChannel("target")
	var gotEv *Event
	var gotArgs []any
	ch.On("propertychange", func(ev *Event, args ...any) {
		gotEv = ev
		gotArgs = args
	})

	ch.Emit("propertychange", 1, "two")

	if gotEv == nil {
		t.Fatal("handler not called")
	}
	if gotEv.Type != "propertychange" || gotEv.Target != "target" {
		t.Errorf("event = %+v, want type propertychange target target", gotEv)
	}
	if !reflect.DeepEqual(gotArgs, []any{1, "two"}) {
		t.Errorf("args = %v", gotArgs)
	}
}

func TestChannel_Unsubscribe(t *testing.T) {
	ch := NewChannel(nil)
	count := 0
	unsub := ch.On("x", func(*Event, ...any) { count++ })

	ch.Emit("x")
	unsub()
	ch.Emit("x")
	unsub()

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if ch.Count("x") != 0 {
		t.Errorf("Count = %d, want 0", ch.Count("x"))
	}
}

func TestChannel_Once(t *testing.T) {
	ch := NewChannel(nil)
	count := 0
	ch.Once("x", func(*Event, ...any) { count++ })

	ch.Emit("x")
	ch.Emit("x")

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestChannel_Off(t *testing.T) {
	ch := NewChannel(nil)
	count := 0
	h := func(*Event, ...any) { count++ }
	ch.On("a", h)
	ch.On("a", h)
	ch.On("b", h)
	ch.SetHandler("b", h)

	ch.Off("a")
	ch.Emit("a")
	if count != 0 {
		t.Fatalf("Off(a) left subscribers, count = %d", count)
	}

	ch.Off("")
	ch.Emit("b")
	if count != 1 {
		t.Errorf("count = %d, want 1 (instance handler survives Off)", count)
	}
}

func TestChannel_SubscribeDuringEmit(t *testing.T) {
	ch := NewChannel(nil)
	late := 0
	ch.On("x", func(*Event, ...any) {
		ch.On("x", func(*Event, ...any) { late++ })
	})

	ch.Emit("x")
	if late != 0 {
		t.Errorf("handler added during emit ran %d times, want 0", late)
	}
	ch.Emit("x")
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func TestChannel_PanicStopsDelivery(t *testing.T) {
	ch := NewChannel(nil)
	reached := false
	ch.On("x", func(*Event, ...any) { panic("listener failure") })
	ch.On("x", func(*Event, ...any) { reached = true })

	func() {
		defer func() {
			if r := recover(); r != "listener failure" {
				t.Errorf("recovered %v, want listener failure", r)
			}
		}()
		ch.Emit("x")
	}()

	if reached {
		t.Error("subscriber after a panicking one should not run")
	}
}
