package services

import (
	"math"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
)

// ChargeResult is the priced breakdown produced by the ChargeCalculator.
// Storage plus Handling always equals Total.
type ChargeResult struct {
	StorageDays    int
	ChargeableDays int
	Storage        kernel.Money
	Handling       kernel.Money
	Total          kernel.Money
}

// ChargeCalculator is a domain service that prices the storage of a shipment
// under a tariff. It is pure: the same shipment, tariff and reference time
// always produce the same result, so an estimate taken just before release
// matches the amount stamped at release.
//
// Pricing rules:
//   - Storage days count from intake to the reference time, any started
//     24-hour period counting as a full day. A shipment released at the
//     intake instant has zero storage days and a zero per-day charge.
//   - FreeDays are subtracted before billing; chargeable days never go
//     negative.
//   - The storage component follows tariff precedence: a flat rate bills
//     once regardless of days, a per-day rate bills chargeable days, a
//     per-kg-day rate bills chargeable days times shipment weight. With no
//     component enabled storage is zero.
//   - The handling fee, when enabled, is added once per shipment.
//
// Example usage:
//
//	calculator := NewChargeCalculator()
//	result, err := calculator.Calculate(shipment, tariff, time.Now())
//	if err != nil {
//	    // invalid shipment or tariff
//	    return
//	}
//	// result.Total is what the consignee owes
type ChargeCalculator struct{}

// NewChargeCalculator creates a new ChargeCalculator instance.
func NewChargeCalculator() ChargeCalculator {
	return ChargeCalculator{}
}

// Calculate prices the shipment's storage under the tariff as of now.
//
// Parameters:
//   - shp: The shipment to price (must be valid)
//   - tariff: The pricing configuration to apply (must be valid)
//   - now: The reference time; for a released shipment the release time
//     takes precedence over it
//
// Returns:
//   - ChargeResult: The priced breakdown
//   - error: Validation errors from the shipment or tariff
func (c ChargeCalculator) Calculate(shp *shipment.Shipment, tariff Tariff, now time.Time) (ChargeResult, error) {
	if err := shp.Validate(); err != nil {
		return ChargeResult{}, err
	}

	if err := tariff.Validate(); err != nil {
		return ChargeResult{}, err
	}

	storageDays := storageDays(shp.Age(now))

	chargeableDays := storageDays - tariff.FreeDays
	if chargeableDays < 0 {
		chargeableDays = 0
	}

	storage, err := c.storageCharge(tariff, chargeableDays, shp.Weight())
	if err != nil {
		return ChargeResult{}, err
	}

	handling := kernel.NewMoneyFromCents(0)
	if tariff.HandlingFee.Enabled {
		if handling, err = kernel.NewMoneyFromFloat(tariff.HandlingFee.Value); err != nil {
			return ChargeResult{}, err
		}
	}

	return ChargeResult{
		StorageDays:    storageDays,
		ChargeableDays: chargeableDays,
		Storage:        storage,
		Handling:       handling,
		Total:          storage.Add(handling),
	}, nil
}

// storageCharge resolves the enabled storage component by precedence and
// prices it.
func (c ChargeCalculator) storageCharge(tariff Tariff, chargeableDays int, weight kernel.Weight) (kernel.Money, error) {
	switch {
	case tariff.FlatRate.Enabled:
		return kernel.NewMoneyFromFloat(tariff.FlatRate.Value)
	case tariff.PerDayRate.Enabled:
		return kernel.NewMoneyFromFloat(tariff.PerDayRate.Value * float64(chargeableDays))
	case tariff.PerKgDay.Enabled:
		return kernel.NewMoneyFromFloat(tariff.PerKgDay.Value * float64(chargeableDays) * weight.Kilograms())
	default:
		return kernel.NewMoneyFromCents(0), nil
	}
}

// storageDays converts an elapsed duration into billed days, any started
// 24-hour period counting as a full day. Zero elapsed time is zero days.
func storageDays(elapsed time.Duration) int {
	days := int(math.Ceil(elapsed.Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days
}
