// Package services provides domain services that implement business logic
// spanning more than one aggregate in the warehouse system.
//
// The package includes:
//   - ChargeCalculator: prices a shipment's storage under a Tariff
//   - Tariff: the pricing configuration with precedence between rate types
//
// Domain services here are pure functions over domain state, which keeps
// charge estimation and the final amount stamped at release consistent.
package services
