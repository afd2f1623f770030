package sheetdef

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/infer"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/output"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/parser"
)

var (
	titleCaser = cases.Title(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// SheetName derives a sheet name from a table base name: the first letter is
// title-cased and the rest lower-cased ("itemAction" becomes "Itemaction").
func SheetName(base string) string {
	if base == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(base)
	return titleCaser.String(string(r)) + lowerCaser.String(base[size:])
}

// Infer builds the schema of one sheet from its header names. known is
// consulted for link detection in generic mode.
func Infer(sheet string, names []string, known infer.SheetLookup, opts Options) models.SheetSchema {
	if opts.Mode == ModeAnnotated {
		return infer.Annotated(sheet, names)
	}
	c := infer.Classifier{Strategy: opts.strategy(), Sheets: known}
	return infer.Generic(sheet, names, c)
}

// InferSource reads the header of src and infers its schema.
func InferSource(src parser.Source, known infer.SheetLookup, opts Options) (models.SheetSchema, error) {
	header, err := src.ReadHeader(opts.variant(), opts.commentPrefix())
	if err != nil {
		return models.SheetSchema{}, err
	}
	return Infer(SheetName(src.Name), header.Names, known, opts), nil
}

// Generate writes one sheet definition per table found in inputDir to
// outputDir as <table>.json. Tables that cannot be read are skipped and
// reported; only a missing input directory fails the run.
func Generate(inputDir, outputDir string, opts Options) (*Report, error) {
	log := opts.logger()

	if !isDir(inputDir) {
		return nil, missingDirectory("input", inputDir)
	}
	cat, err := parser.Discover(inputDir, opts.ShouldIncludeWorkbooks())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", inputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	report := &Report{}
	for _, path := range sortedKeys(cat.Unreadable) {
		report.skip(log, NewSheetError(filepath.Base(path), PhaseGenerate, cat.Unreadable[path]))
	}
	for _, d := range cat.Duplicates {
		report.skip(log, NewSheetError(d.Source.ID(), PhaseGenerate, d.Err()))
	}

	for _, src := range cat.Sources {
		schema, err := InferSource(src, cat.Known, opts)
		if err != nil {
			report.skip(log, NewSheetError(src.ID(), PhaseGenerate, err))
			continue
		}

		data, err := output.SheetToJSON(&schema)
		if err != nil {
			report.skip(log, NewSheetError(src.ID(), PhaseGenerate, err))
			continue
		}
		path := filepath.Join(outputDir, src.Name+".json")
		if err := output.WriteFile(path, data); err != nil {
			report.skip(log, NewSheetError(src.ID(), PhaseGenerate, err))
			continue
		}
		report.written(log, "generated sheet definition", schema.Sheet, path)
	}
	return report, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
