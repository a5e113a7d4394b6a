// Package services implements the core application logic: the
// authorization orchestrator and the room fetch/query service. Services
// depend only on the domain and on ports; all I/O goes through injected
// adapters.
package services
