// Package validate checks sheet and overlay documents against embedded JSON
// schemas before they are decoded.
package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

//go:embed schema/sheet.schema.json
var sheetSchemaBytes []byte

//go:embed schema/overlay.schema.json
var overlaySchemaBytes []byte

var (
	sheetSchema   = lazySchema{name: "sheet.schema.json", raw: sheetSchemaBytes}
	overlaySchema = lazySchema{name: "overlay.schema.json", raw: overlaySchemaBytes}
)

// Result contains the outcome of a schema validation.
type Result struct {
	Valid  bool
	Issues []Issue
}

// Issue is a single validation failure.
type Issue struct {
	Path    string // instance location, e.g. "/definitions/3/name"
	Message string
	Keyword string // last keyword of the failing schema location
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Summary joins the issues into one line.
func (r *Result) Summary() string {
	parts := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}

type lazySchema struct {
	name string
	raw  []byte

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func (l *lazySchema) get() (*jsonschema.Schema, error) {
	l.once.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(l.raw))
		if err != nil {
			l.err = fmt.Errorf("unmarshaling %s: %w", l.name, err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(l.name, doc); err != nil {
			l.err = fmt.Errorf("adding schema resource %s: %w", l.name, err)
			return
		}
		l.compiled, l.err = c.Compile(l.name)
		if l.err != nil {
			l.err = fmt.Errorf("compiling %s: %w", l.name, l.err)
		}
	})
	return l.compiled, l.err
}

// Sheet validates a JSON sheet definition document.
// The error return is for parse or schema compilation failures.
func Sheet(data []byte) (*Result, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return run(&sheetSchema, inst)
}

// Overlay validates a YAML (or JSON) overlay document.
func Overlay(data []byte) (*Result, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	// An empty document is an overlay that changes nothing.
	if raw == nil {
		raw = map[string]interface{}{}
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}
	return run(&overlaySchema, inst)
}

func run(l *lazySchema, inst any) (*Result, error) {
	schema, err := l.get()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &Result{Valid: true}, nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	var issues []Issue
	collect(ve, &issues)
	if len(issues) == 0 {
		issues = []Issue{{Message: ve.Error()}}
	}
	return &Result{Valid: false, Issues: dedupe(issues)}, nil
}

// collect walks the error tree and keeps the leaf errors.
func collect(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		keyword := ""
		if ve.ErrorKind != nil {
			if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
				keyword = kw[len(kw)-1]
			}
		}
		*issues = append(*issues, Issue{Path: path, Message: ve.Error(), Keyword: keyword})
		return
	}
	for _, cause := range ve.Causes {
		collect(cause, issues)
	}
}

func dedupe(issues []Issue) []Issue {
	seen := make(map[string]bool, len(issues))
	out := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			out = append(out, issue)
		}
	}
	return out
}
