// Package kernel provides core domain primitives for the transport system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GPSCoordinate: an immutable value object for geographic positions with
//     great-circle distance computation
//   - Entity: the identity and audit-timestamp base shared by all entities
//   - SoftDeletableEntity: the Entity base extended with a reversible
//     soft-delete lifecycle
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state.
package kernel
