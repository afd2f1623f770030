package overlay

import "github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"

// Apply returns a copy of schema with ov merged in. Each definition is matched
// to ov.Fields by its index; definitions without an index, or whose index is
// out of range, are left as generated.
//
// Only the first target of a multi-target link is kept.
func Apply(schema models.SheetSchema, ov *Overlay) models.SheetSchema {
	out := schema.Clone()
	if ov == nil {
		return out
	}

	for i := range out.Definitions {
		def := &out.Definitions[i]
		if def.Index == nil {
			continue
		}
		idx := *def.Index
		if idx < 0 || idx >= len(ov.Fields) {
			continue
		}

		f := ov.Fields[idx]
		switch {
		case f.IsBare():
			def.Name = f.Name
		case f.IsRecord():
			if f.Name != "" {
				def.Name = f.Name
			}
			switch f.Type {
			case TypeIcon:
				def.Converter = models.Icon()
			case TypeLink:
				if len(f.Targets) > 0 {
					def.Converter = models.Link(f.Targets[0])
				}
			}
		}
	}

	if ov.DisplayField != nil {
		out.DefaultColumn = *ov.DisplayField
	}
	return out
}
