package sheetdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/output"
)

func writeSheet(t *testing.T, dir, name string, s models.SheetSchema) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, output.WriteJSON(path, s))
	return path
}

func itemSchema() models.SheetSchema {
	return models.SheetSchema{
		Sheet:         "Item",
		DefaultColumn: "Name",
		Definitions: []models.FieldDefinition{
			{Index: models.IntPtr(1), Name: "Name"},
			{Index: models.IntPtr(2), Name: "Unknown2"},
			{Index: models.IntPtr(3), Name: "Unknown3"},
		},
	}
}

func TestApplyOverlays(t *testing.T) {
	defs, overlays := t.TempDir(), t.TempDir()
	itemPath := writeSheet(t, defs, "Item.json", itemSchema())
	mapPath := writeSheet(t, defs, "Map.json", models.SheetSchema{Sheet: "Map", Definitions: []models.FieldDefinition{}})
	writeFile(t, overlays, "Item.yaml", `displayField: Singular
fields:
  - ~
  - Singular
  - name: IconMain
    type: icon
  - name: ItemAction
    type: link
    targets: [ItemAction, EventItem]
`)
	mapBefore, err := os.ReadFile(mapPath)
	require.NoError(t, err)

	report, err := ApplyOverlays(defs, overlays, quietOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{itemPath}, report.Written)
	assert.Empty(t, report.Skipped)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "Map.json", report.Warnings[0].Sheet)
	assert.ErrorIs(t, report.Warnings[0], ErrMissingOverlay)

	mapAfter, err := os.ReadFile(mapPath)
	require.NoError(t, err)
	assert.Equal(t, mapBefore, mapAfter)

	item := readSheet(t, itemPath)
	assert.Equal(t, "Singular", item.DefaultColumn)
	assert.Equal(t, []models.FieldDefinition{
		{Index: models.IntPtr(1), Name: "Singular"},
		{Index: models.IntPtr(2), Name: "IconMain", Converter: models.Icon()},
		{Index: models.IntPtr(3), Name: "ItemAction", Converter: models.Link("ItemAction")},
	}, item.Definitions)
}

func TestApplyOverlays_Twice(t *testing.T) {
	defs, overlays := t.TempDir(), t.TempDir()
	itemPath := writeSheet(t, defs, "Item.json", itemSchema())
	writeFile(t, overlays, "Item.yml", "fields: [Key, Singular, {name: Icon, type: icon}]\n")

	_, err := ApplyOverlays(defs, overlays, quietOptions())
	require.NoError(t, err)
	once, err := os.ReadFile(itemPath)
	require.NoError(t, err)

	_, err = ApplyOverlays(defs, overlays, quietOptions())
	require.NoError(t, err)
	twice, err := os.ReadFile(itemPath)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApplyOverlays_BadInputsAreSkipped(t *testing.T) {
	defs, overlays := t.TempDir(), t.TempDir()
	writeSheet(t, defs, "Item.json", itemSchema())
	writeFile(t, overlays, "Item.yaml", "fields:\n  - [nested]\n")
	writeFile(t, defs, "Quest.json", `{"sheet": "Quest"}`)
	writeFile(t, overlays, "Quest.yaml", "fields: [A]\n")

	report, err := ApplyOverlays(defs, overlays, quietOptions())
	require.NoError(t, err)
	assert.Empty(t, report.Written)
	require.Len(t, report.Skipped, 2)
	assert.ErrorIs(t, report.Skipped[0], ErrInvalidOverlay)
	assert.ErrorIs(t, report.Skipped[1], ErrInvalidSheet)
}

func TestApplyOverlays_MissingDirs(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := ApplyOverlays(missing, t.TempDir(), quietOptions())
	assert.ErrorIs(t, err, ErrMissingDirectory)

	_, err = ApplyOverlays(t.TempDir(), missing, quietOptions())
	assert.ErrorIs(t, err, ErrMissingDirectory)
}
