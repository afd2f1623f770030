// Package output serializes sheet definitions.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/models"
	"github.com/ukaji3/sheetdef-go/pkg/sheetdef/validate"
)

// ErrInvalidSheet indicates a sheet document failed schema validation.
var ErrInvalidSheet = errors.New("invalid sheet definition")

// Indent is the indentation used for every written document.
const Indent = "  "

// ToJSON encodes v as indented JSON without HTML escaping.
func ToJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SheetToJSON encodes a sheet schema.
func SheetToJSON(s *models.SheetSchema) ([]byte, error) {
	return ToJSON(s)
}

// CombinedToJSON encodes a combined schema.
func CombinedToJSON(c *models.CombinedSchema) ([]byte, error) {
	return ToJSON(c)
}

// WriteJSON encodes v and writes it to path with WriteFile.
func WriteJSON(path string, v any) error {
	data, err := ToJSON(v)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path, creating parent directories. The data goes
// to a temporary file in the same directory that is renamed over path, so an
// existing file is either kept or fully replaced.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ParseSheet validates and decodes a sheet definition document.
func ParseSheet(data []byte) (models.SheetSchema, error) {
	res, err := validate.Sheet(data)
	if err != nil {
		return models.SheetSchema{}, err
	}
	if !res.Valid {
		return models.SheetSchema{}, fmt.Errorf("%w: %s", ErrInvalidSheet, res.Summary())
	}

	var s models.SheetSchema
	if err := json.Unmarshal(data, &s); err != nil {
		return models.SheetSchema{}, err
	}
	if s.Definitions == nil {
		s.Definitions = []models.FieldDefinition{}
	}
	return s, nil
}

// LoadSheet reads a sheet definition file.
func LoadSheet(path string) (models.SheetSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SheetSchema{}, err
	}
	return ParseSheet(data)
}
