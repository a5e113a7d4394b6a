// Package driving defines the interfaces through which external actors
// (the CLI) drive the core services.
package driving
