package cmd

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/assignment"
	"warehouse/internal/core/domain/model/rack"
	"warehouse/internal/jobs"

	"gorm.io/gorm"
)

const (
	defaultRackRows       = 10
	defaultRackColumns    = 10
	defaultScanSessionTTL = 120 * time.Second
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	rackMap    *rack.Map
	sessions   *assignment.SessionStore
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	rackMap, err := rack.NewMap(
		rackZones(config.RackZones),
		intOrDefault(config.RackRows, defaultRackRows),
		intOrDefault(config.RackColumns, defaultRackColumns),
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	ttl := defaultScanSessionTTL
	if seconds := intOrDefault(config.ScanSessionTTLSec, 0); seconds > 0 {
		ttl = time.Duration(seconds) * time.Second
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		rackMap:    rackMap,
		sessions:   assignment.NewSessionStore(ttl),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) RackMap() *rack.Map {
	return c.rackMap
}

func (c *CompositionRoot) SessionStore() *assignment.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateScanPieceCommandHandler() commands.ScanPieceCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScanPieceCommandHandler(f, c.sessions)
}

func (c *CompositionRoot) CreateScanRackCommandHandler() commands.ScanRackCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScanRackCommandHandler(f, c.sessions, c.rackMap)
}

func (c *CompositionRoot) CreateCancelAssignmentCommandHandler() commands.CancelAssignmentCommandHandler {
	return commands.NewCancelAssignmentCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateReleaseShipmentCommandHandler() commands.ReleaseShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseShipmentCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRelocateShipmentCommandHandler() commands.RelocateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelocateShipmentCommandHandler(f, c.rackMap)
}

func (c *CompositionRoot) CreateEmptyRackCommandHandler() commands.EmptyRackCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEmptyRackCommandHandler(f, c.rackMap)
}

func (c *CompositionRoot) CreateGetRackMapQueryHandler() queries.GetRackMapQueryHandler {
	return queries.NewGetRackMapQueryHandler(c.gormDB, c.rackMap)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEstimateChargesQueryHandler() queries.EstimateChargesQueryHandler {
	return queries.NewEstimateChargesQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.CreateGetRackMapQueryHandler(), c.logger)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

func rackZones(raw string) []string {
	if raw == "" {
		return []string{"A", "B", "C"}
	}

	parts := strings.Split(raw, ",")
	zones := make([]string, 0, len(parts))
	for _, part := range parts {
		if zone := strings.TrimSpace(part); zone != "" {
			zones = append(zones, zone)
		}
	}
	return zones
}

func intOrDefault(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
