// Package domain defines the core business entities for roomctl.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Room: a Webex space the user is a member of
//   - TokenSet: the persisted OAuth credential payload
//
// plus the room matching and sorting rules that the services layer
// applies to fetched rooms.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
