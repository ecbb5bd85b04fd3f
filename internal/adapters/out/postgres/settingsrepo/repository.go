// Package settingsrepo persists the warehouse pricing configuration.
// Each named setting is one row carrying a numeric value and an independent
// enabled flag; the repository assembles the rows into the flat Tariff the
// release and estimate paths price against.
package settingsrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"warehouse/internal/core/domain/services"
)

// Setting names as persisted. free_days carries no meaningful enabled flag,
// it is always applied.
const (
	SettingPerKgDay    = "per_kg_day"
	SettingPerDayRate  = "per_day_rate"
	SettingFlatRate    = "flat_rate"
	SettingHandlingFee = "handling_fee"
	SettingFreeDays    = "free_days"
)

// SettingDTO represents one named pricing setting row.
type SettingDTO struct {
	Name    string `gorm:"primaryKey;size:32"`
	Value   float64
	Enabled bool
}

// TableName specifies the database table name for the pricing configuration.
func (SettingDTO) TableName() string {
	return "pricing_settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetTariff assembles the active tariff from the per-name rows. Missing rows
// are not an error: an absent setting is simply disabled, so an empty table
// yields the zero tariff.
func (r *GormSettingsRepository) GetTariff(ctx context.Context) (services.Tariff, error) {
	var dtos []SettingDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return services.Tariff{}, err
	}

	return toDomain(dtos), nil
}

// SaveTariff stores the tariff, replacing the previous configuration row by
// row.
func (r *GormSettingsRepository) SaveTariff(ctx context.Context, tariff services.Tariff) error {
	if err := tariff.Validate(); err != nil {
		return err
	}

	dtos := fromDomain(tariff)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dtos).Error
}

// fromDomain converts a tariff to its per-name row representation.
func fromDomain(tariff services.Tariff) []SettingDTO {
	return []SettingDTO{
		{Name: SettingPerKgDay, Value: tariff.PerKgDay.Value, Enabled: tariff.PerKgDay.Enabled},
		{Name: SettingPerDayRate, Value: tariff.PerDayRate.Value, Enabled: tariff.PerDayRate.Enabled},
		{Name: SettingFlatRate, Value: tariff.FlatRate.Value, Enabled: tariff.FlatRate.Enabled},
		{Name: SettingHandlingFee, Value: tariff.HandlingFee.Value, Enabled: tariff.HandlingFee.Enabled},
		{Name: SettingFreeDays, Value: float64(tariff.FreeDays), Enabled: true},
	}
}

// toDomain assembles the tariff from whatever rows exist.
func toDomain(dtos []SettingDTO) services.Tariff {
	tariff := services.DefaultTariff()

	for _, dto := range dtos {
		switch dto.Name {
		case SettingPerKgDay:
			tariff.PerKgDay = services.Rate{Value: dto.Value, Enabled: dto.Enabled}
		case SettingPerDayRate:
			tariff.PerDayRate = services.Rate{Value: dto.Value, Enabled: dto.Enabled}
		case SettingFlatRate:
			tariff.FlatRate = services.Rate{Value: dto.Value, Enabled: dto.Enabled}
		case SettingHandlingFee:
			tariff.HandlingFee = services.Rate{Value: dto.Value, Enabled: dto.Enabled}
		case SettingFreeDays:
			tariff.FreeDays = int(dto.Value)
		}
	}

	return tariff
}
