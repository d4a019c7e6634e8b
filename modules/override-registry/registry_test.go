package registry

import (
	"errors"
	"reflect"
	"testing"

	diag "github.com/your-org/modulecontainer/modules/diagnostics"
)

type greeter interface {
	Greet()
}

type testGreeter struct {
	emitter diag.Emitter
	word    string
}

func (g *testGreeter) Greet() {
	g.emitter.Emit(diag.Signal{Origin: "test", Operation: "greet", Message: g.word})
}

func greeterFactory(word string) Factory[greeter] {
	return func(emitter diag.Emitter) greeter {
		return &testGreeter{emitter: emitter, word: word}
	}
}

func TestNew(t *testing.T) {
	reg := New[greeter]("greeter")

	if reg == nil {
		t.Fatal("expected registry to be created")
	}

	if reg.Count() != 0 {
		t.Errorf("expected empty registry, got %d providers", reg.Count())
	}

	if reg.Capability() != "greeter" {
		t.Errorf("expected capability greeter, got %s", reg.Capability())
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := New[greeter]("greeter")

	if err := reg.Register("hello", greeterFactory("hello")); err != nil {
		t.Fatalf("failed to register provider: %v", err)
	}

	if reg.Count() != 1 {
		t.Errorf("expected 1 provider, got %d", reg.Count())
	}

	// Test nil factory
	if err := reg.Register("nil", nil); !errors.Is(err, ErrNilFactory) {
		t.Errorf("expected ErrNilFactory, got %v", err)
	}

	// Test empty name
	if err := reg.Register("", greeterFactory("x")); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}

	// Re-registering replaces the factory
	if err := reg.Register("hello", greeterFactory("bonjour")); err != nil {
		t.Fatalf("failed to replace provider: %v", err)
	}

	if reg.Count() != 1 {
		t.Errorf("expected 1 provider after replace, got %d", reg.Count())
	}

	rec := diag.NewRecorder()
	g, err := reg.New("hello", rec)
	if err != nil {
		t.Fatal(err)
	}
	g.Greet()

	if got := rec.Signals()[0].Message; got != "bonjour" {
		t.Errorf("expected replaced factory to run, got %s", got)
	}
}

func TestRegistry_MustRegister(t *testing.T) {
	reg := New[greeter]("greeter")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil factory")
		}
	}()

	reg.MustRegister("hello", nil)
}

func TestRegistry_New(t *testing.T) {
	reg := New[greeter]("greeter")
	reg.Register("hello", greeterFactory("hello"))

	// Test fresh instance per call
	first, err := reg.New("hello", nil)
	if err != nil {
		t.Fatalf("failed to build provider: %v", err)
	}

	second, err := reg.New("hello", nil)
	if err != nil {
		t.Fatalf("failed to build provider: %v", err)
	}

	if first == second {
		t.Error("expected distinct instances")
	}

	// Nil emitter is replaced, so the provider can always emit
	first.Greet()

	// Test non-existent
	_, err = reg.New("missing", nil)
	if !IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}

	// Test empty name
	_, err = reg.New("", nil)
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestRegistry_Deregister(t *testing.T) {
	reg := New[greeter]("greeter")
	reg.Register("hello", greeterFactory("hello"))

	if err := reg.Deregister("hello"); err != nil {
		t.Fatalf("failed to deregister provider: %v", err)
	}

	if reg.Count() != 0 {
		t.Errorf("expected 0 providers, got %d", reg.Count())
	}

	// Test non-existent
	if err := reg.Deregister("hello"); !IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}

	// Test empty name
	if err := reg.Deregister(""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestRegistry_List(t *testing.T) {
	reg := New[greeter]("greeter")

	if names := reg.List(); len(names) != 0 {
		t.Errorf("expected empty list, got %v", names)
	}

	reg.Register("zulu", greeterFactory("z"))
	reg.Register("alpha", greeterFactory("a"))
	reg.Register("mike", greeterFactory("m"))

	want := []string{"alpha", "mike", "zulu"}
	if got := reg.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRegistry_Exists(t *testing.T) {
	reg := New[greeter]("greeter")
	reg.Register("hello", greeterFactory("hello"))

	exists, err := reg.Exists("hello")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}
	if !exists {
		t.Error("expected provider to exist")
	}

	exists, err = reg.Exists("missing")
	if err != nil {
		t.Fatalf("failed to check existence: %v", err)
	}
	if exists {
		t.Error("expected provider not to exist")
	}

	if _, err := reg.Exists(""); err == nil {
		t.Error("expected error for empty name")
	}
}
