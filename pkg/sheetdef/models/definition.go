package models

// ConverterType identifies how a field value is rendered downstream.
type ConverterType string

const (
	// ConverterLink marks a foreign key into another sheet.
	ConverterLink ConverterType = "link"
	// ConverterIcon marks an image or icon identifier.
	ConverterIcon ConverterType = "icon"
)

// Converter describes a non-trivial field conversion. A nil *Converter means
// the value is emitted as-is.
type Converter struct {
	// Type is the converter kind.
	Type ConverterType `json:"type"`
	// Target is the linked sheet name (link converters only).
	Target string `json:"target,omitempty"`
}

// Link returns a link converter targeting sheet.
func Link(sheet string) *Converter {
	return &Converter{Type: ConverterLink, Target: sheet}
}

// Icon returns an icon converter.
func Icon() *Converter {
	return &Converter{Type: ConverterIcon}
}

// FieldDefinition describes one data column of a sheet.
type FieldDefinition struct {
	// Index is the output column index (nil for fields before the default column).
	Index *int `json:"index,omitempty"`
	// Name is the field name.
	Name string `json:"name"`
	// Converter is the optional value converter.
	Converter *Converter `json:"converter,omitempty"`
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
