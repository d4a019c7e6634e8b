package container

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	capa "github.com/your-org/modulecontainer/modules/capability-a"
	capb "github.com/your-org/modulecontainer/modules/capability-b"
	diag "github.com/your-org/modulecontainer/modules/diagnostics"
	registry "github.com/your-org/modulecontainer/modules/override-registry"
)

// Capability and provider names understood by the invoker
const (
	CapabilityA = "a"
	CapabilityB = "b"

	ProviderContainer = "container"
	ProviderInherited = "inherited"
)

// Step names one operation call: which capability, built by which provider
type Step struct {
	Capability string
	Provider   string
}

func (s Step) String() string {
	return s.Capability + ":" + s.Provider
}

// ParseStep parses "a", "b", or "<capability>:<provider>".
// A bare capability uses the container provider. The capability is
// case-insensitive; provider names are matched exactly.
func ParseStep(raw string) (Step, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Step{}, fmt.Errorf("%w: empty", ErrInvalidStep)
	}

	capability, provider, found := strings.Cut(raw, ":")
	capability = strings.ToLower(capability)
	if !found {
		provider = ProviderContainer
	}
	if provider == "" {
		return Step{}, fmt.Errorf("%w: %q has no provider", ErrInvalidStep, raw)
	}
	if strings.Contains(provider, ":") {
		return Step{}, fmt.Errorf("%w: %q has more than one provider separator", ErrInvalidStep, raw)
	}

	switch capability {
	case CapabilityA, CapabilityB:
	default:
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownCapability, capability)
	}

	return Step{Capability: capability, Provider: provider}, nil
}

// ParseSteps parses each raw step in order
func ParseSteps(raws []string) ([]Step, error) {
	steps := make([]Step, 0, len(raws))
	for _, raw := range raws {
		step, err := ParseStep(raw)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// DemoSteps is one A override followed by one B override
func DemoSteps() []Step {
	return []Step{
		{Capability: CapabilityA, Provider: ProviderContainer},
		{Capability: CapabilityB, Provider: ProviderContainer},
	}
}

// Registries holds the provider registries for both capabilities
type Registries struct {
	A *registry.Registry[capa.CapabilityA]
	B *registry.Registry[capb.CapabilityB]
}

// DefaultRegistries registers this package's providers for both capabilities
func DefaultRegistries() *Registries {
	regs := &Registries{
		A: registry.New[capa.CapabilityA](CapabilityA),
		B: registry.New[capb.CapabilityB](CapabilityB),
	}

	regs.A.MustRegister(ProviderContainer, func(e diag.Emitter) capa.CapabilityA {
		return NewClassAContainer(e)
	})
	regs.A.MustRegister(ProviderInherited, func(e diag.Emitter) capa.CapabilityA {
		return NewInheritedA(e)
	})

	regs.B.MustRegister(ProviderContainer, func(e diag.Emitter) capb.CapabilityB {
		return NewClassBContainer(e)
	})
	regs.B.MustRegister(ProviderInherited, func(e diag.Emitter) capb.CapabilityB {
		return NewInheritedB(e)
	})

	return regs
}

// Invoker builds providers and calls them through their capability types
type Invoker struct {
	registries *Registries
	emitter    diag.Emitter
	logger     *zap.Logger
}

// Option configures an Invoker
type Option func(*Invoker)

// WithRegistries replaces the default registries
func WithRegistries(regs *Registries) Option {
	return func(i *Invoker) {
		if regs != nil {
			i.registries = regs
		}
	}
}

// WithEmitter sends every signal to e as well as to the run's result
func WithEmitter(e diag.Emitter) Option {
	return func(i *Invoker) {
		i.emitter = diag.OrDiscard(e)
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(i *Invoker) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewInvoker creates an invoker over the default registries
func NewInvoker(opts ...Option) *Invoker {
	i := &Invoker{
		emitter: diag.Discard,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.registries == nil {
		i.registries = DefaultRegistries()
	}
	return i
}

// Registries returns the registries the invoker resolves providers from
func (i *Invoker) Registries() *Registries {
	return i.registries
}

// Invoke runs each step on a newly built provider and returns the signals
// emitted during this call, in order. On failure the signals emitted before
// the failing step are returned along with the error.
func (i *Invoker) Invoke(ctx context.Context, steps []Step) ([]diag.Signal, error) {
	rec := diag.NewRecorder()
	emitter := diag.Tee(rec, i.emitter)

	for n, step := range steps {
		if err := ctx.Err(); err != nil {
			return rec.Signals(), fmt.Errorf("invoke interrupted before step %d: %w", n, err)
		}

		i.logger.Debug("invoking step",
			zap.Int("index", n),
			zap.String("capability", step.Capability),
			zap.String("provider", step.Provider))

		if err := i.invokeStep(step, emitter); err != nil {
			return rec.Signals(), fmt.Errorf("step %d (%s): %w", n, step, err)
		}
	}

	return rec.Signals(), nil
}

// Demo builds one instance of each override provider and calls methodA then methodB
func (i *Invoker) Demo(ctx context.Context) ([]diag.Signal, error) {
	return i.Invoke(ctx, DemoSteps())
}

func (i *Invoker) invokeStep(step Step, emitter diag.Emitter) error {
	switch step.Capability {
	case CapabilityA:
		c, err := i.registries.A.New(step.Provider, emitter)
		if err != nil {
			return err
		}
		c.MethodA()
	case CapabilityB:
		c, err := i.registries.B.New(step.Provider, emitter)
		if err != nil {
			return err
		}
		c.MethodB()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCapability, step.Capability)
	}
	return nil
}
