package http

import "time"

// ErrorResponse is the API's error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewShipmentRequest is the intake payload.
type NewShipmentRequest struct {
	Shipper    string  `json:"shipper"`
	Consignee  string  `json:"consignee"`
	WeightKg   float64 `json:"weightKg"`
	PieceCount int     `json:"pieceCount"`
	Notes      string  `json:"notes"`
}

// ShipmentCreatedResponse carries the barcode generated at intake.
type ShipmentCreatedResponse struct {
	Barcode string `json:"barcode"`
}

// ScanRequest carries one scanned code, piece or rack.
type ScanRequest struct {
	Code string `json:"code"`
}

// PendingAssignmentResponse echoes the scan session opened by a piece scan.
type PendingAssignmentResponse struct {
	Barcode        string    `json:"barcode"`
	PieceOrdinals  []int     `json:"pieceOrdinals"`
	ScannedOrdinal int       `json:"scannedOrdinal"`
	StartedAt      time.Time `json:"startedAt"`
}

// RelocateRequest names the destination rack for an admin relocation.
type RelocateRequest struct {
	RackID string `json:"rackId"`
}

// ChargesResponse carries a charge breakdown, either a preview or the final
// amounts computed at release. Amounts are in the invoice currency.
type ChargesResponse struct {
	Barcode        string  `json:"barcode"`
	StorageDays    int     `json:"storageDays"`
	ChargeableDays int     `json:"chargeableDays"`
	Storage        float64 `json:"storage"`
	Handling       float64 `json:"handling"`
	Total          float64 `json:"total"`
}

// RackSlotResponse is one slot of the rack map.
type RackSlotResponse struct {
	RackID          string `json:"rackId"`
	ScanCode        string `json:"scanCode"`
	Status          string `json:"status"`
	OccupantBarcode string `json:"occupantBarcode,omitempty"`
	OccupantAgeDays int    `json:"occupantAgeDays,omitempty"`
}

// ShipmentResponse is one shipment with its per-piece placements.
type ShipmentResponse struct {
	ID             string                   `json:"id"`
	Barcode        string                   `json:"barcode"`
	Shipper        string                   `json:"shipper"`
	Consignee      string                   `json:"consignee"`
	WeightKg       float64                  `json:"weightKg"`
	PieceCount     int                      `json:"pieceCount"`
	PrimaryRack    string                   `json:"primaryRack,omitempty"`
	Status         string                   `json:"status"`
	IntakeAt       time.Time                `json:"intakeAt"`
	ReleasedAt     *time.Time               `json:"releasedAt,omitempty"`
	Notes          string                   `json:"notes,omitempty"`
	TotalCharges   *float64                 `json:"totalCharges,omitempty"`
	PieceLocations map[int]PieceLocationDoc `json:"pieceLocations"`
}

// PieceLocationDoc is one placed piece inside ShipmentResponse.
type PieceLocationDoc struct {
	RackID     string    `json:"rackId"`
	AssignedAt time.Time `json:"assignedAt"`
}
