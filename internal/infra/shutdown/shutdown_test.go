package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTrigger_HookOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []int
	h.OnShutdown(func(context.Context) error {
		order = append(order, 1)
		return nil
	})
	h.OnShutdown(func(context.Context) error {
		order = append(order, 2)
		return nil
	})
	h.OnShutdown(func(context.Context) error {
		order = append(order, 3)
		return nil
	})

	if err := h.Trigger(); err != nil {
		t.Fatalf("Trigger() error = %v", err)
	}

	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("ran %d hooks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("hook order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestTrigger_CollectsErrors(t *testing.T) {
	h := NewHandler(time.Second)

	errOne := errors.New("one")
	errTwo := errors.New("two")
	h.OnShutdown(func(context.Context) error { return errOne })
	h.OnShutdown(func(context.Context) error { return nil })
	h.OnShutdown(func(context.Context) error { return errTwo })

	err := h.Trigger()
	if !errors.Is(err, errOne) {
		t.Errorf("Trigger() error %v does not wrap %v", err, errOne)
	}
	if !errors.Is(err, errTwo) {
		t.Errorf("Trigger() error %v does not wrap %v", err, errTwo)
	}
}

func TestDone(t *testing.T) {
	h := NewHandler(time.Second)

	select {
	case <-h.Done():
		t.Fatal("Done() closed before shutdown")
	default:
	}

	if err := h.Trigger(); err != nil {
		t.Fatalf("Trigger() error = %v", err)
	}

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("Done() not closed after shutdown")
	}
}
