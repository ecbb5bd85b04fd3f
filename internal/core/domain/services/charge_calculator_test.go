package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
)

func storedShipment(t *testing.T, weightKg float64, intakeAt time.Time) *shipment.Shipment {
	t.Helper()

	weight, err := kernel.NewWeight(weightKg)
	require.NoError(t, err)

	shp, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.GenerateBarcode(intakeAt), "Acme Logistics", "Jane Smith", weight, 2, intakeAt, "")
	require.NoError(t, err)
	return shp
}

func enabled(value float64) Rate {
	return Rate{Value: value, Enabled: true}
}

func Test_ChargeCalculator_Calculate(t *testing.T) {
	calculator := NewChargeCalculator()
	intakeAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("per kg day rate with free days", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerKgDay: enabled(0.50), FreeDays: 2}

		// 5 storage days, 2 free: 3 chargeable * 0.50 * 10 kg = 15.00.
		result, err := calculator.Calculate(shp, tariff, intakeAt.Add(5*24*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, 5, result.StorageDays)
		assert.Equal(t, 3, result.ChargeableDays)
		assert.Equal(t, int64(1500), result.Storage.Cents())
		assert.True(t, result.Handling.IsZero())
		assert.Equal(t, int64(1500), result.Total.Cents())
	})

	t.Run("a started day bills as a full day", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerDayRate: enabled(3)}

		result, err := calculator.Calculate(shp, tariff, intakeAt.Add(2*24*time.Hour+time.Hour))
		require.NoError(t, err)

		assert.Equal(t, 3, result.StorageDays)
		assert.Equal(t, int64(900), result.Total.Cents())
	})

	t.Run("any time within the first day bills one day", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerDayRate: enabled(3)}

		result, err := calculator.Calculate(shp, tariff, intakeAt.Add(10*time.Minute))
		require.NoError(t, err)

		assert.Equal(t, 1, result.StorageDays)
		assert.Equal(t, int64(300), result.Total.Cents())
	})

	t.Run("release at the intake instant bills zero days", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerDayRate: enabled(3)}

		result, err := calculator.Calculate(shp, tariff, intakeAt)
		require.NoError(t, err)

		assert.Equal(t, 0, result.StorageDays)
		assert.Equal(t, 0, result.ChargeableDays)
		assert.True(t, result.Total.IsZero())
	})

	t.Run("free days never push chargeable days negative", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerDayRate: enabled(3), FreeDays: 7}

		result, err := calculator.Calculate(shp, tariff, intakeAt.Add(2*24*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, 0, result.ChargeableDays)
		assert.True(t, result.Total.IsZero())
	})

	t.Run("flat rate takes precedence over every other component", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{
			FlatRate:   enabled(25),
			PerDayRate: enabled(3),
			PerKgDay:   enabled(0.50),
		}

		result, err := calculator.Calculate(shp, tariff, intakeAt.Add(9*24*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, int64(2500), result.Total.Cents())
	})

	t.Run("per day rate takes precedence over per kg day", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerDayRate: enabled(3), PerKgDay: enabled(0.50)}

		result, err := calculator.Calculate(shp, tariff, intakeAt.Add(2*24*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, int64(600), result.Total.Cents())
	})

	t.Run("handling fee is added once on top of storage", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerDayRate: enabled(3), HandlingFee: enabled(7.50)}

		result, err := calculator.Calculate(shp, tariff, intakeAt.Add(24*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, int64(300), result.Storage.Cents())
		assert.Equal(t, int64(750), result.Handling.Cents())
		assert.Equal(t, int64(1050), result.Total.Cents())
	})

	t.Run("everything disabled prices at zero", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)

		result, err := calculator.Calculate(shp, DefaultTariff(), intakeAt.Add(30*24*time.Hour))
		require.NoError(t, err)

		assert.True(t, result.Total.IsZero())
		assert.Equal(t, 30, result.StorageDays)
	})

	t.Run("released shipment prices against its release time", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)
		tariff := Tariff{PerDayRate: enabled(3)}

		estimate, err := calculator.Calculate(shp, tariff, intakeAt.Add(4*24*time.Hour))
		require.NoError(t, err)
		require.NoError(t, shp.Release(intakeAt.Add(4*24*time.Hour), estimate.Total))

		later, err := calculator.Calculate(shp, tariff, intakeAt.Add(60*24*time.Hour))
		require.NoError(t, err)

		assert.True(t, later.Total.IsEqual(estimate.Total))
	})

	t.Run("rejects an invalid tariff", func(t *testing.T) {
		shp := storedShipment(t, 10, intakeAt)

		_, err := calculator.Calculate(shp, Tariff{FreeDays: -1}, intakeAt)
		assert.Error(t, err)

		_, err = calculator.Calculate(shp, Tariff{PerDayRate: enabled(-3)}, intakeAt)
		assert.Error(t, err)
	})

	t.Run("rejects an unconstructed shipment", func(t *testing.T) {
		_, err := calculator.Calculate(&shipment.Shipment{}, DefaultTariff(), intakeAt)
		assert.ErrorIs(t, err, shipment.ErrShipmentIsNotConstructed)
	})
}
