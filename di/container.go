package di

import (
	"reflect"

	"go.uber.org/zap"
)

// BuildFunc constructs a provider instance. Build functions receive the
// Container so they can resolve their own dependencies by contract; that is
// the only way dependencies flow, there is no hidden lookup inside consumer
// code.
type BuildFunc func(*Container) (any, error)

// binding maps a contract to a construction strategy and lifetime policy.
// The declared product type is checked once at registration and not kept.
type binding struct {
	build    BuildFunc
	lifetime Lifetime
}

// Container is the assembly root. It owns the contract -> binding table,
// the singleton cache, and the override undo stack.
//
// Not safe for concurrent use; see the package docs.
type Container struct {
	bindings   map[string]*binding
	singletons map[string]any
	resolving  []string // contract names on the in-flight resolution path
	undo       []overrideFrame
	log        *zap.Logger
}

// Option configures a Container at construction time.
type Option func(*Container)

// WithLogger attaches a logger for register/resolve/override debug events.
// The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Container) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs an empty Container.
func New(opts ...Option) *Container {
	c := &Container{
		bindings:   make(map[string]*binding),
		singletons: make(map[string]any),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterOption adjusts a single Register call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	replace bool
}

// Replace allows Register to overwrite an existing binding. Without it a
// second registration for the same contract fails with ConfigurationError,
// which prevents silent shadowing outside the override mechanism.
//
// Replace does not touch the override undo stack: replacing a binding while
// overrides for the contract are active installs the replacement now, but a
// later Reset (or scope Close) restores the binding captured when the
// override was pushed, discarding the replacement.
func Replace() RegisterOption {
	return func(rc *registerConfig) { rc.replace = true }
}

// Register installs a binding for contract with the given lifetime.
//
// The build function's declared product type P is checked against the
// contract here, at registration time; the build function itself is not
// called, so singleton side effects cannot fire early. Registration fails
// with:
//   - ErrNilBuild if build is nil
//   - ConfigurationError if P cannot satisfy the contract
//   - ConfigurationError if the contract is already bound and Replace was
//     not given
func Register[P any](c *Container, contract Contract, build func(*Container) (P, error), lifetime Lifetime, opts ...RegisterOption) error {
	if build == nil {
		return ErrNilBuild
	}
	var rc registerConfig
	for _, opt := range opts {
		opt(&rc)
	}

	product := reflect.TypeOf((*P)(nil)).Elem()
	if !contract.satisfiedBy(product) {
		return ConfigurationError{
			Subject: contract.Name(),
			Reason:  "product type " + product.String() + " does not satisfy " + contract.Type().String(),
		}
	}
	if _, bound := c.bindings[contract.Name()]; bound && !rc.replace {
		return ConfigurationError{Subject: contract.Name(), Reason: "already bound"}
	}

	c.bindings[contract.Name()] = &binding{
		build:    func(r *Container) (any, error) { return build(r) },
		lifetime: lifetime,
	}
	// A replaced binding must not serve the old binding's cached product.
	delete(c.singletons, contract.Name())

	c.log.Debug("di: registered",
		zap.String("contract", contract.Name()),
		zap.Stringer("lifetime", lifetime),
		zap.String("product", product.String()))
	return nil
}

// MustRegister is Register but panics on error. Useful in composition roots
// where a wiring mistake should stop the program immediately.
func MustRegister[P any](c *Container, contract Contract, build func(*Container) (P, error), lifetime Lifetime, opts ...RegisterOption) {
	if err := Register(c, contract, build, lifetime, opts...); err != nil {
		panic(err)
	}
}

// Bound reports whether the contract currently has a binding.
func (c *Container) Bound(contract Contract) bool {
	_, bound := c.bindings[contract.Name()]
	return bound
}

// Resolve returns the instance bound to contract.
//
// Singleton bindings return the cached instance when present, otherwise the
// build function runs once and its product is cached. Factory bindings run
// the build function every time.
//
// An unbound contract fails with UnresolvedDependencyError. Revisiting a
// contract mid-construction fails with CircularDependencyError carrying the
// cycle path. Errors returned by the build function itself propagate
// unchanged; the container never catches or wraps provider failures.
func (c *Container) Resolve(contract Contract) (any, error) {
	return c.resolveName(contract.Name())
}

func (c *Container) resolveName(name string) (any, error) {
	b, bound := c.bindings[name]
	if !bound {
		return nil, UnresolvedDependencyError{Contract: name}
	}
	for _, inFlight := range c.resolving {
		if inFlight == name {
			path := make([]string, len(c.resolving), len(c.resolving)+1)
			copy(path, c.resolving)
			return nil, CircularDependencyError{Path: append(path, name)}
		}
	}

	if b.lifetime == Singleton {
		if inst, cached := c.singletons[name]; cached {
			return inst, nil
		}
	}

	c.resolving = append(c.resolving, name)
	// Popped in a defer so a panicking build function does not leave the
	// contract marked in flight.
	defer func() { c.resolving = c.resolving[:len(c.resolving)-1] }()
	inst, err := b.build(c)
	if err != nil {
		return nil, err
	}

	if b.lifetime == Singleton {
		c.singletons[name] = inst
		c.log.Debug("di: singleton constructed", zap.String("contract", name))
	}
	return inst, nil
}

// Resolve returns the instance for contract typed as P.
//
// It fails with the underlying resolution error, or with WrongProductError
// when the resolved instance is not a P. The container never substitutes a
// default for a failed resolution. A build function that returns a nil
// interface value resolves to the zero P when P can hold nil.
func Resolve[P any](c *Container, contract Contract) (P, error) {
	var zero P
	inst, err := c.Resolve(contract)
	if err != nil {
		return zero, err
	}
	p, ok := inst.(P)
	if !ok {
		if inst == nil {
			// A type assertion on a nil interface always fails, even when
			// P itself is nilable; hand the nil back as the zero P then.
			switch reflect.TypeOf((*P)(nil)).Elem().Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
				return zero, nil
			}
			return zero, WrongProductError{Contract: contract.Name(), GotType: "<nil>"}
		}
		return zero, WrongProductError{Contract: contract.Name(), GotType: reflect.TypeOf(inst).String()}
	}
	return p, nil
}

// MustResolve is Resolve but panics on error.
func MustResolve[P any](c *Container, contract Contract) P {
	p, err := Resolve[P](c, contract)
	if err != nil {
		panic(err)
	}
	return p
}
