package ports

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// SettingsRepository defines the persistence contract for the pricing
// tariff. The warehouse runs a single active tariff at a time.
type SettingsRepository interface {
	// GetTariff retrieves the active tariff. When none has been stored yet
	// the default zero tariff is returned, not an error.
	GetTariff(ctx context.Context) (services.Tariff, error)

	// SaveTariff stores the tariff, replacing the previous one.
	SaveTariff(ctx context.Context, tariff services.Tariff) error
}
