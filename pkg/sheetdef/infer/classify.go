// Package infer derives sheet schemas from table header rows.
package infer

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
)

// Strategy selects which link detection rules the classifier applies.
type Strategy string

const (
	// StrategyCombined applies the curated name rules, then falls back to
	// the same-named sheet lookup.
	StrategyCombined Strategy = "combined"
	// StrategyExistence only links fields named after an existing sheet.
	StrategyExistence Strategy = "existence"
	// StrategyAllowlist only applies the curated name rules.
	StrategyAllowlist Strategy = "allowlist"
)

// ParseStrategy converts a configuration value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyCombined, "":
		return StrategyCombined, nil
	case StrategyExistence:
		return StrategyExistence, nil
	case StrategyAllowlist:
		return StrategyAllowlist, nil
	default:
		return "", fmt.Errorf("invalid link strategy: %s (must be combined, existence, or allowlist)", s)
	}
}

// SheetLookup reports whether a sheet with the given name exists.
type SheetLookup interface {
	HasSheet(name string) bool
}

// placeNameToken links any field mentioning it to the PlaceName sheet.
const placeNameToken = "PlaceName"

// linkedFields are field names that link to the sheet of the same name even
// though no generic lookup would find them.
var linkedFields = map[string]bool{
	"Map":                  true,
	"Mount":                true,
	"BGM":                  true,
	"TerritoryIntendedUse": true,
}

// Classifier decides the converter of a field from its name.
type Classifier struct {
	Strategy Strategy
	// Sheets is consulted by the existence rule. A nil lookup knows no sheets.
	Sheets SheetLookup
}

// Classify returns the converter for field, or nil for plain values.
func (c Classifier) Classify(field string) *models.Converter {
	if c.Strategy != StrategyExistence {
		if conv := Curated(field); conv != nil {
			return conv
		}
		if c.Strategy == StrategyAllowlist {
			return nil
		}
	}
	if c.IsSheetLink(field) {
		return models.Link(field)
	}
	return nil
}

// IsSheetLink reports whether a sheet named exactly field exists.
func (c Classifier) IsSheetLink(field string) bool {
	return c.Sheets != nil && field != "" && c.Sheets.HasSheet(field)
}

// Curated applies the name-pattern rules. Icon fields win over links when a
// name matches both.
func Curated(field string) *models.Converter {
	var conv *models.Converter
	if strings.Contains(field, placeNameToken) {
		conv = models.Link(placeNameToken)
	} else if linkedFields[field] {
		conv = models.Link(field)
	}
	// "Icon" as a suffix is covered by the substring match.
	if strings.Contains(field, "Icon") || field == "LoadingImage" {
		conv = models.Icon()
	}
	return conv
}
