package sheetdef

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/output"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/overlay"
)

// ApplyOverlays merges the overlay for each sheet definition in defsDir and
// rewrites the definition in place. Overlays are looked up in overlayDir as
// <sheet>.yaml, <sheet>.yml or <sheet>.json; a sheet without one is left
// unchanged and reported as a warning.
func ApplyOverlays(defsDir, overlayDir string, opts Options) (*Report, error) {
	log := opts.logger()

	if !isDir(defsDir) {
		return nil, missingDirectory("definitions", defsDir)
	}
	if !isDir(overlayDir) {
		return nil, missingDirectory("overlay", overlayDir)
	}
	files, err := jsonFiles(defsDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", defsDir, err)
	}

	report := &Report{}
	for _, name := range files {
		base := strings.TrimSuffix(name, filepath.Ext(name))

		ovPath, err := overlay.Find(overlayDir, base)
		if errors.Is(err, overlay.ErrNotFound) {
			report.warn(log, NewSheetError(name, PhaseOverlay, err))
			continue
		}
		if err != nil {
			report.skip(log, NewSheetError(name, PhaseOverlay, err))
			continue
		}

		ov, err := overlay.Load(ovPath)
		if err != nil {
			report.skip(log, NewSheetError(name, PhaseOverlay, err))
			continue
		}

		path := filepath.Join(defsDir, name)
		schema, err := output.LoadSheet(path)
		if err != nil {
			report.skip(log, NewSheetError(name, PhaseOverlay, err))
			continue
		}

		merged := overlay.Apply(schema, ov)
		if err := output.WriteJSON(path, merged); err != nil {
			report.skip(log, NewSheetError(name, PhaseOverlay, err))
			continue
		}
		report.written(log, "applied overlay", merged.Sheet, path)
	}
	return report, nil
}
