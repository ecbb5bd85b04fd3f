// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only modify shipment aggregates.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW manages transactions that touch shipments and pricing settings
	// together. Used by the release path, which prices against the active
	// tariff inside the same transaction that stamps the release.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   settingsRepo := uow.SettingsRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipmentRepoFactory
		SettingsRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
