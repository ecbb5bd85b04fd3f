package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers identifying the person driving a request. Every mutating route
// requires the id header; the role is enforced again inside the admin
// command handlers.
const (
	HeaderOperatorID   = "X-Operator-Id"
	HeaderOperatorRole = "X-Operator-Role"
)

// Server exposes the warehouse use cases over HTTP.
// It coordinates between JSON handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler   commands.CreateShipmentCommandHandler
	scanPieceHandler        commands.ScanPieceCommandHandler
	scanRackHandler         commands.ScanRackCommandHandler
	cancelAssignmentHandler commands.CancelAssignmentCommandHandler
	releaseShipmentHandler  commands.ReleaseShipmentCommandHandler
	relocateShipmentHandler commands.RelocateShipmentCommandHandler
	emptyRackHandler        commands.EmptyRackCommandHandler

	// Query handlers
	getRackMapHandler      queries.GetRackMapQueryHandler
	getShipmentHandler     queries.GetShipmentQueryHandler
	estimateChargesHandler queries.EstimateChargesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	scanPieceHandler commands.ScanPieceCommandHandler,
	scanRackHandler commands.ScanRackCommandHandler,
	cancelAssignmentHandler commands.CancelAssignmentCommandHandler,
	releaseShipmentHandler commands.ReleaseShipmentCommandHandler,
	relocateShipmentHandler commands.RelocateShipmentCommandHandler,
	emptyRackHandler commands.EmptyRackCommandHandler,
	getRackMapHandler queries.GetRackMapQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	estimateChargesHandler queries.EstimateChargesQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:   createShipmentHandler,
		scanPieceHandler:        scanPieceHandler,
		scanRackHandler:         scanRackHandler,
		cancelAssignmentHandler: cancelAssignmentHandler,
		releaseShipmentHandler:  releaseShipmentHandler,
		relocateShipmentHandler: relocateShipmentHandler,
		emptyRackHandler:        emptyRackHandler,
		getRackMapHandler:       getRackMapHandler,
		getShipmentHandler:      getShipmentHandler,
		estimateChargesHandler:  estimateChargesHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments/:barcode", s.GetShipment)
	api.GET("/shipments/:barcode/charges", s.EstimateCharges)
	api.POST("/shipments/:barcode/release", s.ReleaseShipment)
	api.POST("/shipments/:barcode/relocate", s.RelocateShipment)

	api.POST("/scans/piece", s.ScanPiece)
	api.POST("/scans/rack", s.ScanRack)
	api.POST("/scans/cancel", s.CancelScan)

	api.GET("/racks", s.GetRackMap)
	api.POST("/racks/:id/empty", s.EmptyRack)
}

// CreateShipment handles POST /api/v1/shipments - registers a shipment at intake.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req NewShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(req.Shipper, req.Consignee, req.WeightKg, req.PieceCount, req.Notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	barcode, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err, "Failed to register shipment")
	}

	return ctx.JSON(http.StatusCreated, ShipmentCreatedResponse{Barcode: barcode.String()})
}

// ScanPiece handles POST /api/v1/scans/piece - first step of the assignment flow.
func (s *Server) ScanPiece(ctx echo.Context) error {
	operatorID, _, err := operatorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid operator identity: " + err.Error(),
		})
	}

	var req ScanRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewScanPieceCommand(operatorID, req.Code)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid piece scan: " + err.Error(),
		})
	}

	pending, err := s.scanPieceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err, "Piece scan rejected")
	}

	return ctx.JSON(http.StatusOK, PendingAssignmentResponse{
		Barcode:        pending.Barcode().String(),
		PieceOrdinals:  pending.PieceOrdinals(),
		ScannedOrdinal: pending.ScannedOrdinal(),
		StartedAt:      pending.StartedAt(),
	})
}

// ScanRack handles POST /api/v1/scans/rack - second step, commits the placement.
func (s *Server) ScanRack(ctx echo.Context) error {
	operatorID, _, err := operatorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid operator identity: " + err.Error(),
		})
	}

	var req ScanRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewScanRackCommand(operatorID, req.Code)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid rack scan: " + err.Error(),
		})
	}

	if err := s.scanRackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err, "Rack scan rejected")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelScan handles POST /api/v1/scans/cancel - drops the operator's pending scan.
func (s *Server) CancelScan(ctx echo.Context) error {
	operatorID, _, err := operatorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid operator identity: " + err.Error(),
		})
	}

	cmd, err := commands.NewCancelAssignmentCommand(operatorID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancel request: " + err.Error(),
		})
	}

	if err := s.cancelAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err, "Failed to cancel scan")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseShipment handles POST /api/v1/shipments/:barcode/release - final
// charges are computed and the shipment leaves the warehouse.
func (s *Server) ReleaseShipment(ctx echo.Context) error {
	barcode, err := kernel.BarcodeFromString(ctx.Param("barcode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid barcode: " + err.Error(),
		})
	}

	cmd, err := commands.NewReleaseShipmentCommand(barcode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid release request: " + err.Error(),
		})
	}

	charges, err := s.releaseShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorJSON(ctx, err, "Failed to release shipment")
	}

	return ctx.JSON(http.StatusOK, ChargesResponse{
		Barcode:        barcode.String(),
		StorageDays:    charges.StorageDays,
		ChargeableDays: charges.ChargeableDays,
		Storage:        charges.Storage.Float64(),
		Handling:       charges.Handling.Float64(),
		Total:          charges.Total.Float64(),
	})
}

// RelocateShipment handles POST /api/v1/shipments/:barcode/relocate - admin
// correction moving all placed pieces to another rack.
func (s *Server) RelocateShipment(ctx echo.Context) error {
	adminID, role, err := operatorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid operator identity: " + err.Error(),
		})
	}

	barcode, err := kernel.BarcodeFromString(ctx.Param("barcode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid barcode: " + err.Error(),
		})
	}

	var req RelocateRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	rackID, err := kernel.RackIDFromString(req.RackID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid rack id: " + err.Error(),
		})
	}

	cmd, err := commands.NewRelocateShipmentCommand(adminID, role, barcode, rackID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid relocate request: " + err.Error(),
		})
	}

	if err := s.relocateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err, "Failed to relocate shipment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EmptyRack handles POST /api/v1/racks/:id/empty - admin correction clearing
// the rack's occupant.
func (s *Server) EmptyRack(ctx echo.Context) error {
	adminID, role, err := operatorFromHeaders(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid operator identity: " + err.Error(),
		})
	}

	rackID, err := kernel.RackIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid rack id: " + err.Error(),
		})
	}

	cmd, err := commands.NewEmptyRackCommand(adminID, role, rackID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid empty request: " + err.Error(),
		})
	}

	if err := s.emptyRackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorJSON(ctx, err, "Failed to empty rack")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRackMap handles GET /api/v1/racks - the full rack map with occupancy.
func (s *Server) GetRackMap(ctx echo.Context) error {
	query := queries.NewGetRackMapQuery()

	slots, err := s.getRackMapHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve rack map",
		})
	}

	response := make([]RackSlotResponse, len(slots))
	for i, slot := range slots {
		response[i] = RackSlotResponse{
			RackID:          slot.RackID,
			ScanCode:        slot.ScanCode,
			Status:          slot.Status,
			OccupantBarcode: slot.OccupantBarcode,
			OccupantAgeDays: slot.OccupantAgeDays,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:barcode - one shipment with its
// per-piece placements.
func (s *Server) GetShipment(ctx echo.Context) error {
	barcode, err := kernel.BarcodeFromString(ctx.Param("barcode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid barcode: " + err.Error(),
		})
	}

	query, err := queries.NewGetShipmentQuery(barcode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment query: " + err.Error(),
		})
	}

	shp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err, "Failed to retrieve shipment")
	}

	locations := make(map[int]PieceLocationDoc, len(shp.PieceLocations))
	for ordinal, loc := range shp.PieceLocations {
		locations[ordinal] = PieceLocationDoc{
			RackID:     loc.RackID,
			AssignedAt: loc.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, ShipmentResponse{
		ID:             shp.ID.String(),
		Barcode:        shp.Barcode,
		Shipper:        shp.Shipper,
		Consignee:      shp.Consignee,
		WeightKg:       shp.WeightKg,
		PieceCount:     shp.PieceCount,
		PrimaryRack:    shp.PrimaryRack,
		Status:         shp.Status,
		IntakeAt:       shp.IntakeAt,
		ReleasedAt:     shp.ReleasedAt,
		Notes:          shp.Notes,
		TotalCharges:   shp.TotalCharges,
		PieceLocations: locations,
	})
}

// EstimateCharges handles GET /api/v1/shipments/:barcode/charges - a priced
// preview without releasing.
func (s *Server) EstimateCharges(ctx echo.Context) error {
	barcode, err := kernel.BarcodeFromString(ctx.Param("barcode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid barcode: " + err.Error(),
		})
	}

	query, err := queries.NewEstimateChargesQuery(barcode)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid charges query: " + err.Error(),
		})
	}

	estimate, err := s.estimateChargesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorJSON(ctx, err, "Failed to estimate charges")
	}

	return ctx.JSON(http.StatusOK, ChargesResponse{
		Barcode:        estimate.Barcode,
		StorageDays:    estimate.StorageDays,
		ChargeableDays: estimate.ChargeableDays,
		Storage:        estimate.Storage,
		Handling:       estimate.Handling,
		Total:          estimate.Total,
	})
}

// errorJSON translates use case errors into the API's error contract.
func (s *Server) errorJSON(ctx echo.Context, err error, message string) error {
	status := statusForError(err)
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}

// statusForError maps domain and application errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrRackOccupied),
		errors.Is(err, commands.ErrNoPendingAssignment),
		errors.Is(err, commands.ErrBarcodeAttemptsExhausted),
		errors.Is(err, ports.ErrBarcodeConflict),
		errors.Is(err, shipment.ErrShipmentNotAssignable):
		return http.StatusConflict
	case errors.Is(err, commands.ErrInvalidScanFormat),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// operatorFromHeaders resolves the acting operator from the identity headers.
// The role header is optional and defaults to Operator.
func operatorFromHeaders(ctx echo.Context) (kernel.UUID, kernel.Role, error) {
	operatorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderOperatorID))
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	roleHeader := ctx.Request().Header.Get(HeaderOperatorRole)
	if roleHeader == "" {
		return operatorID, kernel.RoleOperator, nil
	}

	role, err := kernel.RoleFromString(roleHeader)
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	return operatorID, role, nil
}
