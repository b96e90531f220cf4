package core

import "testing"

func TestDirtyHookFiresOnTransitionOnly(t *testing.T) {
	var calls []bool
	d := NewDirty(false, func(v bool) { calls = append(calls, v) })

	d.SetDirty(true)
	d.SetDirty(true)
	if len(calls) != 1 {
		t.Fatalf("Setting the same value twice fired %d hooks, expected 1", len(calls))
	}

	d.SetDirty(false)
	d.SetDirty(true)
	d.SetDirty(false)
	expected := []bool{true, false, true, false}
	if len(calls) != len(expected) {
		t.Fatalf("Hook fired %d times, expected %d", len(calls), len(expected))
	}
	for i, v := range expected {
		if calls[i] != v {
			t.Errorf("Hook call %d = %v, expected %v", i, calls[i], v)
		}
	}
}

func TestDirtyInitialValue(t *testing.T) {
	fired := false
	d := NewDirty(true, func(bool) { fired = true })
	if !d.IsDirty() {
		t.Error("IsDirty() should report the initial value")
	}
	d.SetDirty(true)
	if fired {
		t.Error("Setting the initial value again should not fire the hook")
	}
}

func TestDirtyNilHook(t *testing.T) {
	var d Dirty
	d.SetDirty(true) // Should not panic
	if !d.IsDirty() {
		t.Error("Zero Dirty should become dirty after SetDirty(true)")
	}
}
