package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
)

func sampleSchema() models.SheetSchema {
	return models.SheetSchema{
		Sheet:         "Item",
		DefaultColumn: "Name",
		Definitions: []models.FieldDefinition{
			{Name: "Key", Converter: models.Link("Key")},
			{Index: models.IntPtr(1), Name: "Name"},
			{Index: models.IntPtr(2), Name: "Icon", Converter: models.Icon()},
			{Index: models.IntPtr(3), Name: "Unknown3"},
			{Index: models.IntPtr(4), Name: "Unknown4", Converter: models.Link("Old")},
			{Index: models.IntPtr(7), Name: "Far"},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestApply(t *testing.T) {
	ov := &Overlay{
		Fields: []Field{
			Bare("Zero"),
			Bare("Singular"),
			Record("IconSmall", ""),
			Record("Action", TypeLink, "Action", "Item"),
			Record("Image", TypeIcon),
		},
		DisplayField: strPtr("Singular"),
	}

	got := Apply(sampleSchema(), ov)

	assert.Equal(t, "Singular", got.DefaultColumn)
	assert.Equal(t, []models.FieldDefinition{
		{Name: "Key", Converter: models.Link("Key")},
		{Index: models.IntPtr(1), Name: "Singular"},
		{Index: models.IntPtr(2), Name: "IconSmall", Converter: models.Icon()},
		{Index: models.IntPtr(3), Name: "Action", Converter: models.Link("Action")},
		{Index: models.IntPtr(4), Name: "Image", Converter: models.Icon()},
		{Index: models.IntPtr(7), Name: "Far"},
	}, got.Definitions)
}

func TestApply_BareKeepsConverter(t *testing.T) {
	ov := &Overlay{Fields: []Field{{}, {}, Bare("Img"), {}, Bare("Target")}}
	got := Apply(sampleSchema(), ov)

	assert.Equal(t, "Img", got.Definitions[2].Name)
	assert.Equal(t, models.Icon(), got.Definitions[2].Converter)
	assert.Equal(t, "Target", got.Definitions[4].Name)
	assert.Equal(t, models.Link("Old"), got.Definitions[4].Converter)
	assert.Equal(t, "Name", got.Definitions[1].Name, "empty entry leaves definition untouched")
	assert.Equal(t, "Name", got.DefaultColumn, "default column kept without displayField")
}

func TestApply_LinkWithoutTargets(t *testing.T) {
	ov := &Overlay{Fields: []Field{{}, {}, Record("", TypeLink)}}
	got := Apply(sampleSchema(), ov)

	assert.Equal(t, "Icon", got.Definitions[2].Name)
	assert.Equal(t, models.Icon(), got.Definitions[2].Converter)
}

func TestApply_UnknownTypeOnlyRenames(t *testing.T) {
	ov := &Overlay{Fields: []Field{{}, Record("Flags", "bitflags")}}
	got := Apply(sampleSchema(), ov)

	assert.Equal(t, "Flags", got.Definitions[1].Name)
	assert.Nil(t, got.Definitions[1].Converter)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := sampleSchema()
	ov := &Overlay{Fields: []Field{{}, Bare("X"), Record("Y", TypeLink, "Z")}, DisplayField: strPtr("X")}

	_ = Apply(in, ov)
	assert.Equal(t, sampleSchema(), in)
}

func TestApply_Idempotent(t *testing.T) {
	ov := &Overlay{
		Fields:       []Field{Bare("A"), Bare("B"), Record("C", TypeLink, "D", "E"), Record("F", TypeIcon)},
		DisplayField: strPtr("B"),
	}
	once := Apply(sampleSchema(), ov)
	twice := Apply(once, ov)
	assert.Equal(t, once, twice)
}

func TestApply_NilOverlay(t *testing.T) {
	assert.Equal(t, sampleSchema(), Apply(sampleSchema(), nil))
}
