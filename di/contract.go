package di

import "reflect"

// Lifetime selects how a Container reuses the product of a binding.
type Lifetime int

const (
	// Singleton shares one instance across all resolutions. The instance is
	// created on first use and cached until the binding is replaced or an
	// override touching it is installed or undone.
	Singleton Lifetime = iota

	// Factory constructs a new instance on every resolution. Nothing is
	// cached.
	Factory
)

// String returns the lifetime name used in logs.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Factory:
		return "factory"
	default:
		return "unknown"
	}
}

// Contract identifies a capability consumers depend on: a stable name plus
// the capability type providers must satisfy.
//
// Contracts are typically declared as package-level variables next to the
// capability interface:
//
//	var APIClientContract = di.NewContract[APIClient]("api-client")
//
// Satisfaction is structural. When the capability type is an interface, any
// provider whose product implements it can be bound, without declaring
// conformance anywhere.
type Contract struct {
	name string
	typ  reflect.Type
}

// NewContract declares a contract named name whose providers must produce a
// T. T is usually an interface type; a concrete type works too and then
// requires assignability instead of implementation.
func NewContract[T any](name string) Contract {
	return Contract{name: name, typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// Name returns the contract name. Names key the Container's binding table,
// so two contracts with the same name address the same binding.
func (c Contract) Name() string { return c.name }

// Type returns the capability type providers must satisfy.
func (c Contract) Type() reflect.Type { return c.typ }

// satisfiedBy reports whether a product of type p can serve the contract.
func (c Contract) satisfiedBy(p reflect.Type) bool {
	if c.typ == nil || p == nil {
		return false
	}
	if c.typ.Kind() == reflect.Interface {
		return p.Implements(c.typ)
	}
	return p.AssignableTo(c.typ)
}
