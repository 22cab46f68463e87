// Package di provides a small, explicit dependency injection container.
//
// It models three things and nothing else:
//
//   - Contract: a named capability (usually an interface type) that consumers
//     depend on, declared with NewContract.
//   - Container: the assembly root. It owns the mapping from contracts to
//     build functions plus a lifetime policy (Singleton or Factory), and it
//     constructs fully wired instances on demand via Resolve.
//   - Override mechanism: reversible, scoped replacement of bindings, meant
//     for swapping real providers with fakes in tests.
//
// Wiring stays explicit: build functions receive the Container and resolve
// their own dependencies by contract, so the full object graph is assembled
// through ordinary constructor arguments. There is no reflection-driven
// auto-wiring, no struct tags, and no package-level container — a Container
// is created once and threaded explicitly to whatever needs it (tests
// included).
//
// Override discipline
//
// Overrides form a strict LIFO stack. Each Override pushes the binding it
// replaces; Reset (or closing an OverrideScope) pops frames in reverse
// order, restoring the bindings that were active before. Singleton caches
// are invalidated on both push and pop, never snapshotted: resolving after
// an undo always constructs a fresh instance under the revealed binding.
//
// A Container is not safe for concurrent use. The intended execution model
// is single-threaded assembly and resolution; guard it externally if you
// ever share one across goroutines.
package di
