package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, sheets map[string][][]interface{}, order []string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		switch {
		case i == 0 && name != "Sheet1":
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("SetSheetName failed: %v", err)
			}
		case i > 0:
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("NewSheet failed: %v", err)
			}
		}
		for r, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			row := row
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow failed: %v", err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
}

func TestReadWorksheetHeader(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	writeWorkbook(t, tmpFile, map[string][][]interface{}{
		"Item": {
			{"key", "0", "1", "2"},
			{"#", "Name", "", "Icon"},
			{1, "Potion", 3, 20001},
		},
		"Quest": {
			{"key", "0"},
		},
	}, []string{"Item", "Quest"})

	names, err := WorksheetNames(tmpFile)
	if err != nil {
		t.Fatalf("WorksheetNames failed: %v", err)
	}
	if len(names) != 2 || names[0] != "Item" || names[1] != "Quest" {
		t.Errorf("Expected [Item Quest], got %v", names)
	}

	h, err := ReadWorksheetHeader(tmpFile, "Item", VariantSimple, DefaultCommentPrefix)
	if err != nil {
		t.Fatalf("ReadWorksheetHeader failed: %v", err)
	}
	expected := []string{"#", "Name", "1", "Icon"}
	if len(h.Names) != len(expected) {
		t.Fatalf("Expected %d names, got %d (%v)", len(expected), len(h.Names), h.Names)
	}
	for i := range expected {
		if h.Names[i] != expected[i] {
			t.Errorf("Names[%d] = %q, expected %q", i, h.Names[i], expected[i])
		}
	}

	if _, err := ReadWorksheetHeader(tmpFile, "Quest", VariantSimple, DefaultCommentPrefix); err == nil {
		t.Error("Expected malformed table error for single-row worksheet")
	}
}

func TestReadWorksheetHeader_Annotated(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "annotated.xlsx")
	writeWorkbook(t, tmpFile, map[string][][]interface{}{
		"Mount": {
			{"key", "0", "1"},
			{"# exported"},
			{"Id", "Singular", "Icon"},
		},
	}, []string{"Mount"})

	h, err := ReadWorksheetHeader(tmpFile, "Mount", VariantAnnotated, DefaultCommentPrefix)
	if err != nil {
		t.Fatalf("ReadWorksheetHeader failed: %v", err)
	}
	if h.Names[0] != "Id" || h.Names[2] != "Icon" {
		t.Errorf("Unexpected names %v", h.Names)
	}
}
