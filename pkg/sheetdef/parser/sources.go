package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
)

// ErrDuplicateTable indicates two tables in one input directory share a name.
var ErrDuplicateTable = errors.New("duplicate table name")

// Source is one table in an input directory.
type Source struct {
	// Name is the table base name: the CSV file name without extension, or
	// the worksheet name for workbook tables.
	Name string
	// Path is the file the table is read from.
	Path string
	// Worksheet is the worksheet name for workbook tables, "" for CSV.
	Worksheet string
}

// ID identifies the source in logs and reports.
func (s Source) ID() string {
	if s.Worksheet != "" {
		return filepath.Base(s.Path) + "!" + s.Worksheet
	}
	return filepath.Base(s.Path)
}

// ReadHeader reads the header of the table.
func (s Source) ReadHeader(variant Variant, commentPrefix string) (Header, error) {
	if s.Worksheet != "" {
		return ReadWorksheetHeader(s.Path, s.Worksheet, variant, commentPrefix)
	}
	return ReadCSVHeader(s.Path, variant, commentPrefix)
}

// Duplicate is a table left out because another table already owns its name.
type Duplicate struct {
	Source Source
	// Owner is the table that kept the name.
	Owner Source
}

// Err describes the collision as an ErrDuplicateTable.
func (d Duplicate) Err() error {
	return fmt.Errorf("%w: %q is already read from %s", ErrDuplicateTable, d.Source.Name, d.Owner.ID())
}

// Catalog lists the tables found in an input directory.
type Catalog struct {
	Sources []Source
	// Known holds the name of every table, used for link detection.
	Known models.SheetSet
	// Unreadable maps workbook paths that could not be opened to their error.
	Unreadable map[string]error
	// Duplicates lists tables whose name was already taken.
	Duplicates []Duplicate
}

// claim adds src unless its name is taken.
func (c *Catalog) claim(owners map[string]Source, src Source) {
	if owner, ok := owners[src.Name]; ok {
		c.Duplicates = append(c.Duplicates, Duplicate{Source: src, Owner: owner})
		return
	}
	owners[src.Name] = src
	c.Sources = append(c.Sources, src)
	c.Known.Add(src.Name)
}

// Discover lists the tables in dir. CSV files are always included; every
// worksheet of each .xlsx workbook is included when workbooks is true.
// Sources are sorted by file name, then worksheet tab order.
//
// Table names are unique within a catalog. CSV files claim their names
// first, then worksheets in file order; a later table with a taken name is
// listed in Duplicates instead of Sources.
func Discover(dir string, workbooks bool) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var books []string
	cat := &Catalog{Known: models.NewSheetSet(), Unreadable: map[string]error{}}
	owners := map[string]Source{}
	for _, name := range names {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".csv":
			base := strings.TrimSuffix(name, filepath.Ext(name))
			cat.claim(owners, Source{Name: base, Path: filepath.Join(dir, name)})
		case ".xlsx":
			// Office lock files (~$Book.xlsx) are not workbooks.
			if workbooks && !strings.HasPrefix(name, "~$") {
				books = append(books, name)
			}
		}
	}

	for _, name := range books {
		path := filepath.Join(dir, name)
		sheets, err := WorksheetNames(path)
		if err != nil {
			cat.Unreadable[path] = err
			continue
		}
		for _, ws := range sheets {
			cat.claim(owners, Source{Name: ws, Path: path, Worksheet: ws})
		}
	}

	sort.SliceStable(cat.Sources, func(i, j int) bool {
		return filepath.Base(cat.Sources[i].Path) < filepath.Base(cat.Sources[j].Path)
	})
	return cat, nil
}
