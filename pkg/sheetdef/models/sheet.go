package models

// SheetSchema is the inferred definition of a single sheet.
type SheetSchema struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// DefaultColumn is the name of the display column.
	DefaultColumn string `json:"defaultColumn"`
	// Definitions lists the data columns in source order.
	Definitions []FieldDefinition `json:"definitions"`
}

// Clone returns a deep copy of s.
func (s SheetSchema) Clone() SheetSchema {
	out := SheetSchema{
		Sheet:         s.Sheet,
		DefaultColumn: s.DefaultColumn,
		Definitions:   make([]FieldDefinition, len(s.Definitions)),
	}
	for i, def := range s.Definitions {
		cp := FieldDefinition{Name: def.Name}
		if def.Index != nil {
			cp.Index = IntPtr(*def.Index)
		}
		if def.Converter != nil {
			c := *def.Converter
			cp.Converter = &c
		}
		out.Definitions[i] = cp
	}
	return out
}
