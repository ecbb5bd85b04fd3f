// Package rack models the fixed universe of addressable storage slots and the
// derived occupancy statuses shown on the warehouse map. Slots are enumerated
// once at initialization with permanent scan codes; statuses are a pure
// projection over the shipments currently occupying racks.
package rack
