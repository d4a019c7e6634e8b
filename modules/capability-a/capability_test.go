package capa

import (
	"testing"

	"github.com/google/uuid"

	diag "github.com/your-org/modulecontainer/modules/diagnostics"
)

func TestBase_MethodA(t *testing.T) {
	rec := diag.NewRecorder()
	base := NewBase(rec)

	var c CapabilityA = base
	c.MethodA()

	signals := rec.Signals()
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}

	if got := signals[0].String(); got != "[ModuleA] methodA called" {
		t.Errorf("unexpected signal: %s", got)
	}

	if signals[0].Instance != base.ID() {
		t.Errorf("expected instance %s, got %s", base.ID(), signals[0].Instance)
	}
}

func TestNewBase_DistinctIdentity(t *testing.T) {
	first := NewBase(nil)
	second := NewBase(nil)

	if first.ID() == uuid.Nil {
		t.Error("expected non-nil identity")
	}

	if first.ID() == second.ID() {
		t.Error("expected distinct identities")
	}
}

func TestBase_ZeroValue(t *testing.T) {
	// Zero value must not panic without an emitter
	var base Base
	base.MethodA()

	if base.Emitter() != diag.Discard {
		t.Error("expected zero-value base to discard signals")
	}
}
