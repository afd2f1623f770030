package sheetdef

import "log/slog"

// Report summarizes one batch run.
type Report struct {
	// Written lists the files written, in processing order.
	Written []string
	// Skipped lists sheets that produced no output.
	Skipped []*SheetError
	// Warnings lists non-fatal conditions; the sheet was still processed.
	Warnings []*SheetError
}

func (r *Report) written(log *slog.Logger, msg, sheet, path string) {
	r.Written = append(r.Written, path)
	log.Info(msg, "sheet", sheet, "path", path)
}

func (r *Report) skip(log *slog.Logger, err *SheetError) {
	r.Skipped = append(r.Skipped, err)
	log.Warn("skipping sheet", "sheet", err.Sheet, "phase", string(err.Phase), "error", err.Err)
}

func (r *Report) warn(log *slog.Logger, err *SheetError) {
	r.Warnings = append(r.Warnings, err)
	log.Warn("sheet warning", "sheet", err.Sheet, "phase", string(err.Phase), "error", err.Err)
}

// OK reports whether no sheet was skipped.
func (r *Report) OK() bool {
	return len(r.Skipped) == 0
}
