// Package driven defines the interfaces the core services depend on:
// credential persistence, the authorization-code exchange, and the
// remote room directory. Adapters under internal/adapters/driven
// implement them.
package driven
