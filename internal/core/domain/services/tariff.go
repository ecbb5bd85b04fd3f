package services

import (
	"errors"
	"math"

	"warehouse/internal/pkg/errs"
)

// Rate is a single pricing component. A disabled rate contributes nothing
// regardless of its value, which lets a tariff keep a configured value around
// while it is switched off.
type Rate struct {
	Value   float64
	Enabled bool
}

// Validate checks that the rate value is a finite, non-negative number.
func (r Rate) Validate() error {
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) || r.Value < 0 {
		return errs.NewValueIsInvalidError("rateValue")
	}
	return nil
}

// Tariff is the pricing configuration applied when a shipment is released or
// a charge estimate is requested.
//
// Storage components are mutually exclusive by precedence:
//
//	FlatRate > PerDayRate > PerKgDay
//
// The highest-precedence enabled component determines the storage charge; the
// rest are ignored. HandlingFee is independent and added once per shipment
// when enabled. FreeDays storage days are not billed.
type Tariff struct {
	PerKgDay    Rate
	PerDayRate  Rate
	FlatRate    Rate
	HandlingFee Rate
	FreeDays    int
}

// DefaultTariff returns the tariff used when none has been configured:
// everything disabled, every release priced at zero.
func DefaultTariff() Tariff {
	return Tariff{}
}

// Validate checks every rate and the free-day allowance.
func (t Tariff) Validate() error {
	err := errors.Join(
		t.PerKgDay.Validate(),
		t.PerDayRate.Validate(),
		t.FlatRate.Validate(),
		t.HandlingFee.Validate(),
	)
	if t.FreeDays < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidError("freeDays"))
	}
	return err
}
