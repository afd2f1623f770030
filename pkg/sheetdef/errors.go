package sheetdef

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/output"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/overlay"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/parser"
)

// ErrMalformedTable indicates a table has no usable header rows.
var ErrMalformedTable = parser.ErrMalformedTable

// ErrDuplicateTable indicates a table was skipped because another table in
// the input directory has the same name.
var ErrDuplicateTable = parser.ErrDuplicateTable

// ErrMissingOverlay indicates no overlay exists for a sheet. It is reported
// as a warning.
var ErrMissingOverlay = overlay.ErrNotFound

// ErrInvalidOverlay indicates an overlay document failed validation.
var ErrInvalidOverlay = overlay.ErrInvalid

// ErrInvalidSheet indicates a sheet definition document failed validation.
var ErrInvalidSheet = output.ErrInvalidSheet

// ErrMissingDirectory indicates a required input directory does not exist.
var ErrMissingDirectory = errors.New("missing directory")

// ErrUnreadableVersion indicates the version source could not supply a version.
var ErrUnreadableVersion = errors.New("unreadable version")

// Phase names the batch step an error occurred in.
type Phase string

const (
	PhaseGenerate Phase = "generate"
	PhaseOverlay  Phase = "overlay"
	PhaseCombine  Phase = "combine"
)

// SheetError represents a failure isolated to one sheet.
type SheetError struct {
	Sheet string
	Phase Phase
	Err   error
}

func (e *SheetError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("%s error: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("%s error in sheet %q: %v", e.Phase, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet string, phase Phase, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Phase: phase,
		Err:   err,
	}
}

func missingDirectory(role, dir string) error {
	return fmt.Errorf("%w: %s directory %q not found", ErrMissingDirectory, role, dir)
}
