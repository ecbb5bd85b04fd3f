package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	// PieceOrdinalMin is the first valid piece ordinal. Ordinals are 1-based.
	PieceOrdinalMin = 1
	// PieceOrdinalMax is the largest ordinal representable by the three digit
	// zero-padded scan code field.
	PieceOrdinalMax = 999
)

// ErrPieceCodeIsNotConstructed is returned when validating a zero-value
// PieceCode. Piece codes must be created via NewPieceCode or ParsePieceCode.
var ErrPieceCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"piece code must be created via NewPieceCode or ParsePieceCode")

// pieceCodePattern matches the piece label grammar PIECE_<BARCODE>_<NNN>.
var pieceCodePattern = regexp.MustCompile(`^PIECE_(WH\d{10})_(\d{3})$`)

// PieceCode identifies one physical piece of a shipment on its printed label.
// The scan text has the form PIECE_<BARCODE>_<NNN> where NNN is the 1-based
// piece ordinal, zero-padded to three digits.
//
// PieceCode is an immutable value object; the zero value is invalid.
type PieceCode struct {
	barcode Barcode
	ordinal int

	guard guard.ConstructorGuard
}

// NewPieceCode builds the piece code for the given shipment barcode and
// piece ordinal. The ordinal must be within [PieceOrdinalMin, PieceOrdinalMax].
func NewPieceCode(barcode Barcode, ordinal int) (PieceCode, error) {
	if err := barcode.Validate(); err != nil {
		return PieceCode{}, err
	}

	if ordinal < PieceOrdinalMin || ordinal > PieceOrdinalMax {
		return PieceCode{}, errs.NewValueIsOutOfRangeError("pieceOrdinal", ordinal, PieceOrdinalMin, PieceOrdinalMax)
	}

	return PieceCode{
		barcode: barcode,
		ordinal: ordinal,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ParsePieceCode parses a scanned piece label. Returns a ValueIsInvalidError
// for anything that does not match the PIECE_<BARCODE>_<NNN> grammar,
// including an all-zero ordinal.
func ParsePieceCode(code string) (PieceCode, error) {
	if code == "" {
		return PieceCode{}, errs.NewValueIsRequiredError("pieceCode")
	}

	match := pieceCodePattern.FindStringSubmatch(code)
	if match == nil {
		return PieceCode{}, errs.NewValueIsInvalidErrorWithCause(
			"pieceCode",
			fmt.Errorf("%q does not match PIECE_<BARCODE>_<NNN>", code),
		)
	}

	barcode, err := BarcodeFromString(match[1])
	if err != nil {
		return PieceCode{}, err
	}

	ordinal, err := strconv.Atoi(match[2])
	if err != nil {
		return PieceCode{}, errs.NewValueIsInvalidErrorWithCause("pieceCode", err)
	}

	if ordinal < PieceOrdinalMin {
		return PieceCode{}, errs.NewValueIsOutOfRangeError("pieceOrdinal", ordinal, PieceOrdinalMin, PieceOrdinalMax)
	}

	return PieceCode{
		barcode: barcode,
		ordinal: ordinal,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Barcode returns the shipment barcode embedded in the piece code.
func (p PieceCode) Barcode() Barcode {
	return p.barcode
}

// Ordinal returns the 1-based piece ordinal.
func (p PieceCode) Ordinal() int {
	return p.ordinal
}

// String returns the scan text, e.g. "PIECE_WH2608300417_002".
func (p PieceCode) String() string {
	return fmt.Sprintf("PIECE_%s_%03d", p.barcode.String(), p.ordinal)
}

// Validate checks that the piece code was created through a constructor.
func (p PieceCode) Validate() error {
	return p.guard.Validate(ErrPieceCodeIsNotConstructed)
}
