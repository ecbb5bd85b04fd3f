package commands

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/services"
)

// ReleaseShipmentCommandHandler handles the business logic for releasing a
// shipment to its consignee.
//
// Charges are computed inside the same transaction that stamps the release,
// against the tariff active at that moment, so the invoiced amount matches
// what an estimate taken just before would have shown. A broken or missing
// tariff never blocks a release: the handler degrades to zero charges and
// logs a warning.
//
// Example:
//
//	handler := NewReleaseShipmentCommandHandler(uowFactory, logger)
//	charges, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("release failed: %w", err)
//	}
//	fmt.Printf("invoice total: %s", charges.Total)
type ReleaseShipmentCommandHandler struct {
	uowFactory UoWFactory
	calculator services.ChargeCalculator
	logger     *slog.Logger
}

// NewReleaseShipmentCommandHandler creates a handler for shipment release
// operations. Requires a UoWFactory covering both the shipment and settings
// repositories, and a logger for pricing degradation warnings.
func NewReleaseShipmentCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ReleaseShipmentCommandHandler {
	return ReleaseShipmentCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewChargeCalculator(),
		logger:     logger.With("component", "release_shipment"),
	}
}

// Handle processes the release command and returns the priced breakdown
// stamped on the shipment.
//
// Returns errs.ErrObjectNotFound for an unknown barcode and
// shipment.ErrShipmentNotAssignable when the shipment was already released
// or cancelled.
func (h ReleaseShipmentCommandHandler) Handle(ctx context.Context, cmd ReleaseShipmentCommand) (services.ChargeResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ChargeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ChargeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	shp, err := shipmentRepo.FindByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return services.ChargeResult{}, err
	}

	now := time.Now()

	tariff, err := uow.SettingsRepository().GetTariff(ctx)
	if err != nil || tariff.Validate() != nil {
		h.logger.Warn("pricing settings unavailable, releasing with zero charges",
			"barcode", cmd.Barcode().String(), "error", err)
		tariff = services.DefaultTariff()
	}

	charges, err := h.calculator.Calculate(shp, tariff, now)
	if err != nil {
		return services.ChargeResult{}, err
	}

	if err = shp.Release(now, charges.Total); err != nil {
		return services.ChargeResult{}, err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		return services.ChargeResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ChargeResult{}, err
	}

	return charges, nil
}
