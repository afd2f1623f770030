package sheetdef

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/output"
)

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func readSheet(t *testing.T, path string) models.SheetSchema {
	t.Helper()
	s, err := output.LoadSheet(path)
	require.NoError(t, err)
	return s
}
