// Package sheetdef generates JSON sheet definitions from exported game data
// tables and combines them into a single versioned document.
package sheetdef

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/infer"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/parser"
)

// Mode represents the inference mode.
type Mode string

const (
	// ModeGeneric reads names from row 1, picks the first non-link column as
	// the default column and renumbers columns from it.
	ModeGeneric Mode = "generic"
	// ModeAnnotated reads names from the first non-comment row, uses column 0
	// as the default column and keeps original column positions.
	ModeAnnotated Mode = "annotated"
)

// ParseMode converts a configuration value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGeneric, "":
		return ModeGeneric, nil
	case ModeAnnotated:
		return ModeAnnotated, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be generic or annotated)", s)
	}
}

// Options configures generation, overlay and combine runs.
type Options struct {
	// Mode specifies the inference mode (generic, annotated).
	Mode Mode
	// Links specifies the link detection strategy used in generic mode.
	// Annotated mode always uses the curated rules.
	Links infer.Strategy
	// CommentPrefix marks comment rows in annotated tables. Defaults to "#".
	CommentPrefix string
	// IncludeWorkbooks specifies whether .xlsx worksheets are read as tables.
	// If nil, defaults to true.
	IncludeWorkbooks *bool
	// Logger receives per-sheet progress. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Now returns the current time for version synthesis. If nil, time.Now.
	Now func() time.Time
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Mode:  ModeGeneric,
		Links: infer.StrategyCombined,
	}
}

// ShouldIncludeWorkbooks returns whether workbook worksheets are read as tables.
func (o Options) ShouldIncludeWorkbooks() bool {
	if o.IncludeWorkbooks != nil {
		return *o.IncludeWorkbooks
	}
	return true
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) commentPrefix() string {
	if o.CommentPrefix == "" {
		return parser.DefaultCommentPrefix
	}
	return o.CommentPrefix
}

func (o Options) variant() parser.Variant {
	if o.Mode == ModeAnnotated {
		return parser.VariantAnnotated
	}
	return parser.VariantSimple
}

func (o Options) strategy() infer.Strategy {
	if o.Links == "" {
		return infer.StrategyCombined
	}
	return o.Links
}
