// Package shipment contains the Shipment aggregate root and its lifecycle
// state machine. A shipment is created at intake with a fixed declared piece
// count, accumulates per-piece rack placements while Confirmed, and is frozen
// once Released or Cancelled.
package shipment
