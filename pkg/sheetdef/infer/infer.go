package infer

import (
	"strconv"
	"strings"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
)

// NormalizeField collapses array fields such as "Data[3]" into "Data".
func NormalizeField(name string) string {
	if strings.HasPrefix(name, "Data[") && strings.HasSuffix(name, "]") {
		return "Data"
	}
	return name
}

// Generic infers a schema from a name list whose position 0 is the row id.
//
// The default column is the first data column that does not name an existing
// sheet; if every column does, it is column 1. Columns before the default
// column carry no index, the rest are numbered 1, 2, ... in order.
func Generic(sheet string, names []string, c Classifier) models.SheetSchema {
	fields := make([]string, len(names))
	for i, n := range names {
		fields[i] = NormalizeField(n)
	}

	defaultPos := -1
	for i := 1; i < len(fields); i++ {
		if !c.IsSheetLink(fields[i]) {
			defaultPos = i
			break
		}
	}
	if defaultPos < 0 {
		defaultPos = 1
	}

	schema := models.SheetSchema{
		Sheet:       sheet,
		Definitions: make([]models.FieldDefinition, 0, len(fields)),
	}
	if defaultPos < len(fields) {
		schema.DefaultColumn = fields[defaultPos]
	}

	seq := 0
	for i := 1; i < len(fields); i++ {
		def := models.FieldDefinition{
			Name:      fields[i],
			Converter: c.Classify(fields[i]),
		}
		if i >= defaultPos {
			seq++
			def.Index = models.IntPtr(seq)
		}
		schema.Definitions = append(schema.Definitions, def)
	}
	return schema
}

// Annotated infers a schema from a name list whose position 0 names the
// display column. Every other column keeps its original position as index
// and is classified by the curated rules only.
func Annotated(sheet string, names []string) models.SheetSchema {
	schema := models.SheetSchema{
		Sheet:       sheet,
		Definitions: make([]models.FieldDefinition, 0, len(names)),
	}
	if len(names) > 0 {
		schema.DefaultColumn = NormalizeField(names[0])
	}

	for i := 1; i < len(names); i++ {
		name := NormalizeField(names[i])
		if name == "" {
			name = strconv.Itoa(i)
		}
		schema.Definitions = append(schema.Definitions, models.FieldDefinition{
			Index:     models.IntPtr(i),
			Name:      name,
			Converter: Curated(name),
		})
	}
	return schema
}
