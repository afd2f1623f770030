// Package overlay applies hand-maintained name and converter mappings onto
// generated sheet schemas.
package overlay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/validate"
)

// ErrNotFound indicates no overlay document exists for a sheet.
var ErrNotFound = errors.New("overlay not found")

// ErrInvalid indicates an overlay document failed schema validation.
var ErrInvalid = errors.New("invalid overlay")

// Extensions lists the overlay file extensions, in lookup order.
var Extensions = []string{".yaml", ".yml", ".json"}

// Field type values understood by Apply.
const (
	TypeIcon = "icon"
	TypeLink = "link"
)

type fieldKind int

const (
	kindNone fieldKind = iota
	kindBare
	kindRecord
)

// Field is one positional entry of an overlay: either a bare name or a
// record carrying a name and an optional converter declaration.
type Field struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`
	Targets []string `yaml:"targets"`

	kind fieldKind
}

// Bare returns a field entry that only renames.
func Bare(name string) Field {
	return Field{Name: name, kind: kindBare}
}

// Record returns a structured field entry.
func Record(name, typ string, targets ...string) Field {
	return Field{Name: name, Type: typ, Targets: targets, kind: kindRecord}
}

// IsBare reports whether the entry was a plain scalar.
func (f Field) IsBare() bool { return f.kind == kindBare }

// IsRecord reports whether the entry was a structured record.
func (f Field) IsRecord() bool { return f.kind == kindRecord }

// UnmarshalYAML decodes either a scalar or a mapping. Null entries decode to
// a field that changes nothing.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*f = Field{}
			return nil
		}
		*f = Bare(node.Value)
		return nil
	case yaml.MappingNode:
		type plain Field
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*f = Field(p)
		f.kind = kindRecord
		return nil
	default:
		return fmt.Errorf("line %d: overlay field must be a scalar or a mapping", node.Line)
	}
}

// Overlay is the mapping document for one sheet.
type Overlay struct {
	// Fields is indexed by the definition index of the generated schema.
	Fields []Field `yaml:"fields"`
	// DisplayField, when set, replaces the schema's default column.
	DisplayField *string `yaml:"displayField"`
}

// Parse validates and decodes an overlay document.
func Parse(data []byte) (*Overlay, error) {
	res, err := validate.Overlay(data)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, res.Summary())
	}

	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, err
	}
	return &ov, nil
}

// Load reads and parses the overlay document at path.
func Load(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overlay %s: %w", path, err)
	}
	ov, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing overlay %s: %w", path, err)
	}
	return ov, nil
}

// Find returns the path of the overlay for the sheet file base name in dir.
func Find(dir, base string) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, base+ext)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, filepath.Join(dir, base+Extensions[0]))
}
