package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrEstimateChargesQueryIsNotConstructed = errors.New(
		"EstimateChargesQuery must be created via NewEstimateChargesQuery constructor",
	)
)

// EstimateChargesQuery previews what a shipment would be invoiced if
// released right now. The estimate uses the same calculator and tariff as
// the release path, so the preview matches the eventual invoice as long as
// neither the tariff nor the clock's billing day changes in between.
//
// Example:
//
//	barcode, _ := kernel.BarcodeFromString("WH2603011234")
//	query, err := NewEstimateChargesQuery(barcode)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewEstimateChargesQueryHandler(db, logger)
//	estimate, err := handler.Handle(ctx, query)
//	fmt.Printf("would owe %.2f\n", estimate.Total)
type EstimateChargesQuery struct { //nolint:recvcheck //using for validation
	barcode kernel.Barcode

	guard guard.ConstructorGuard
}

// NewEstimateChargesQuery creates a charge preview query for the shipment
// with the given barcode.
func NewEstimateChargesQuery(barcode kernel.Barcode) (EstimateChargesQuery, error) {
	estimateQuery := EstimateChargesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := estimateQuery.setBarcode(barcode); err != nil {
		return EstimateChargesQuery{}, err
	}

	return estimateQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrEstimateChargesQueryIsNotConstructed if validation fails.
func (q EstimateChargesQuery) Validate() error {
	return q.guard.Validate(ErrEstimateChargesQueryIsNotConstructed)
}

// Barcode returns the barcode being estimated.
func (q EstimateChargesQuery) Barcode() kernel.Barcode {
	return q.barcode
}

func (q *EstimateChargesQuery) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}

	q.barcode = barcode
	return nil
}

// EstimateChargesQueryResponse represents the priced preview in the read
// model. Amounts are in the invoice currency.
type EstimateChargesQueryResponse struct {
	Barcode        string
	StorageDays    int
	ChargeableDays int
	Storage        float64
	Handling       float64
	Total          float64
}
