// Package godi is an educational tour of dependency injection in Go.
//
// The repository walks one storyline across four runnable examples:
//
//   - examples/before: hard-coded dependencies and why they hurt
//   - examples/manual: the same graph decoupled via constructor injection
//   - examples/container: assembly moved into a small container (package di)
//     with singleton/factory lifetimes and a reversible override mechanism
//   - examples/testing: the payoff — one consumer, real or fake provider,
//     chosen by injection alone
//
// The library lives in the di package; config loads the shared environment
// configuration; examples holds the contracts, providers, consumers, and the
// assembly root the entry points use.
package godi
