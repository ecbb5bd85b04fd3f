// Package kernel provides core domain primitives and utilities for the warehouse system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Barcode: The shipment identifier printed on intake labels (WHyymmddNNNN)
//   - PieceCode: The per-piece scan code grammar (PIECE_<BARCODE>_<NNN>)
//   - RackID: A zone/row/column rack address convertible to and from its scan code
//   - Weight: A positive decimal weight in kilograms
//   - Money: A fixed-point monetary amount held as integer cents
//   - Role: Operator privilege levels used to gate administrative corrections
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
