package sheetdef

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/output"
)

// CombineSchemas aggregates schemas, in the given order, under version.
func CombineSchemas(schemas []models.SheetSchema, version string) *models.CombinedSchema {
	sheets := make([]models.SheetSchema, len(schemas))
	copy(sheets, schemas)
	return &models.CombinedSchema{
		Version: version,
		Sheets:  sheets,
	}
}

// Combine loads every *.json sheet definition in defsDir, in file name order,
// and combines them under the version supplied by src. Definitions that fail
// to load are skipped and reported. A missing version falls back to a
// date-stamped placeholder with a warning.
func Combine(defsDir string, src VersionSource, opts Options) (*models.CombinedSchema, *Report, error) {
	log := opts.logger()

	if !isDir(defsDir) {
		return nil, nil, missingDirectory("definitions", defsDir)
	}
	files, err := jsonFiles(defsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("listing %s: %w", defsDir, err)
	}

	report := &Report{}
	version, err := ResolveVersion(src, opts.now())
	if err != nil {
		report.warn(log, NewSheetError("", PhaseCombine, err))
	}

	schemas := make([]models.SheetSchema, 0, len(files))
	for _, name := range files {
		schema, err := output.LoadSheet(filepath.Join(defsDir, name))
		if err != nil {
			report.skip(log, NewSheetError(name, PhaseCombine, err))
			continue
		}
		schemas = append(schemas, schema)
		log.Debug("added sheet", "file", name, "sheet", schema.Sheet)
	}

	combined := CombineSchemas(schemas, version)
	log.Info("combined sheet definitions", "version", version, "sheets", len(combined.Sheets))
	return combined, report, nil
}

// CombineTo runs Combine and writes the result to outputPath.
func CombineTo(defsDir, outputPath string, src VersionSource, opts Options) (*models.CombinedSchema, *Report, error) {
	combined, report, err := Combine(defsDir, src, opts)
	if err != nil {
		return nil, nil, err
	}
	data, err := output.CombinedToJSON(combined)
	if err != nil {
		return nil, report, fmt.Errorf("encoding combined schema: %w", err)
	}
	if err := output.WriteFile(outputPath, data); err != nil {
		return nil, report, fmt.Errorf("writing %s: %w", outputPath, err)
	}
	report.Written = append(report.Written, outputPath)
	return combined, report, nil
}
