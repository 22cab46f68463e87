package di

import (
	"reflect"

	"go.uber.org/zap"
)

// overrideFrame records one reversible binding replacement.
type overrideFrame struct {
	contract string
	prev     *binding
}

// Override temporarily replaces the binding for contract, pushing the
// current binding onto the undo stack so Reset (or an OverrideScope) can
// restore it.
//
// The replacement inherits the replaced binding's lifetime policy. Any
// cached singleton for the contract is dropped, so the next Resolve
// constructs the replacement's product.
//
// Overriding a contract with no binding fails with
// UnresolvedDependencyError: there is nothing to push, which would make the
// operation irreversible.
func Override[P any](c *Container, contract Contract, build func(*Container) (P, error)) error {
	if build == nil {
		return ErrNilBuild
	}
	prev, bound := c.bindings[contract.Name()]
	if !bound {
		return UnresolvedDependencyError{Contract: contract.Name()}
	}

	product := reflect.TypeOf((*P)(nil)).Elem()
	if !contract.satisfiedBy(product) {
		return ConfigurationError{
			Subject: contract.Name(),
			Reason:  "product type " + product.String() + " does not satisfy " + contract.Type().String(),
		}
	}

	c.undo = append(c.undo, overrideFrame{contract: contract.Name(), prev: prev})
	c.bindings[contract.Name()] = &binding{
		build:    func(r *Container) (any, error) { return build(r) },
		lifetime: prev.lifetime,
	}
	delete(c.singletons, contract.Name())

	c.log.Debug("di: override installed",
		zap.String("contract", contract.Name()),
		zap.Int("depth", len(c.undo)))
	return nil
}

// Overrides reports the number of active overrides on the undo stack.
func (c *Container) Overrides() int { return len(c.undo) }

// Reset undoes every active override in LIFO order, restoring the bindings
// that were installed before the first Override. Safe to call with zero
// active overrides (no-op).
//
// Singleton caches of restored contracts are dropped, not restored:
// resolving after Reset constructs fresh instances under the original
// bindings. Bindings installed with Register(..., Replace()) while an
// override for the same contract was active are discarded too: Reset
// restores what the override captured, not what came after it.
func (c *Container) Reset() { c.popOverrides(0) }

func (c *Container) popOverrides(depth int) {
	for len(c.undo) > depth {
		frame := c.undo[len(c.undo)-1]
		c.undo = c.undo[:len(c.undo)-1]
		c.bindings[frame.contract] = frame.prev
		delete(c.singletons, frame.contract)
		c.log.Debug("di: override undone", zap.String("contract", frame.contract))
	}
}

// OverrideScope bounds a group of overrides so they can be undone together.
//
// A scope records the undo-stack depth at creation; Close pops back down to
// it. Scopes nest: the innermost override wins while its scope is open, and
// closing an inner scope reveals the enclosing scope's override for the same
// contract, not the original binding. The discipline is strict stack LIFO —
// close scopes in the reverse order they were opened.
type OverrideScope struct {
	c      *Container
	mark   int
	closed bool
}

// NewOverrideScope opens a scope at the current override depth. Overrides
// applied while the scope is open belong to it.
func (c *Container) NewOverrideScope() *OverrideScope {
	return &OverrideScope{c: c, mark: len(c.undo)}
}

// Close undoes the scope's overrides in LIFO order, restoring the bindings
// present when the scope was opened. Closing twice is a no-op.
func (s *OverrideScope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.c.popOverrides(s.mark)
}
