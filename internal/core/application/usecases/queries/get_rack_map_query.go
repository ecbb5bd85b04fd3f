// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetRackMapQueryIsNotConstructed = errors.New(
		"GetRackMapQuery must be created via NewGetRackMapQuery constructor",
	)
)

// GetRackMapQuery retrieves the live view of every rack slot: its occupant,
// status, and how long the occupant has been in storage. Slot statuses are
// recomputed on every read; nothing is cached.
//
// Example:
//
//	query := NewGetRackMapQuery()
//	handler := NewGetRackMapQueryHandler(db, rackMap)
//
//	slots, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve rack map: %w", err)
//	}
//
//	for _, slot := range slots {
//	    fmt.Printf("%s: %s\n", slot.RackID, slot.Status)
//	}
type GetRackMapQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRackMapQuery creates a query to retrieve the full rack map view.
// This is a parameterless query covering every configured slot.
func NewGetRackMapQuery() GetRackMapQuery {
	return GetRackMapQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRackMapQueryIsNotConstructed if validation fails.
func (q GetRackMapQuery) Validate() error {
	return q.guard.Validate(ErrGetRackMapQueryIsNotConstructed)
}

// GetRackMapQueryResponse represents one rack slot in the read model.
// OccupantBarcode is empty for free slots.
type GetRackMapQueryResponse struct {
	RackID          string
	ScanCode        string
	Status          string
	OccupantBarcode string
	OccupantAgeDays int
}
