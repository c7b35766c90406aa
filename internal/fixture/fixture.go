// Package fixture loads declarative result fixtures for tests and golden
// comparisons: a YAML document describing columns and textual rows, with
// nil cells standing for SQL NULL. Documents are validated twice - strict
// YAML field checking against the Go structs, then structural validation
// against the embedded CUE schema - before a result.Result is built.
package fixture

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/rowview/rowview/result"
)

//go:embed schema.cue
var schemaCUE string

// Fixture is one declarative result: columns plus rows of optional text.
type Fixture struct {
	// Name identifies the fixture; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what the fixture exercises.
	Description string `yaml:"description,omitempty"`

	// Columns declares name and optional SQL type per column. Types use
	// PostgreSQL names (int8, text, numeric, ...); absent means text.
	Columns []ColumnSpec `yaml:"columns"`

	// Rows holds the cell text, nil meaning NULL.
	Rows [][]*string `yaml:"rows"`
}

// ColumnSpec declares one fixture column.
type ColumnSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

// Load reads, validates, and parses a fixture file.
// Returns an error if the file is malformed, contains unknown fields
// (typos), fails schema validation, or has ragged rows.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	return Parse(data)
}

// Parse validates and parses fixture YAML.
func Parse(data []byte) (*Fixture, error) {
	// Strict decode catches typos like "column:" vs "columns:".
	var fx Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	if err := validateShape(&fx); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &fx, nil
}

// Build constructs the Result the fixture describes.
func (fx *Fixture) Build() (*result.Result, error) {
	cols := make([]result.Column, len(fx.Columns))
	for i, c := range fx.Columns {
		typ := c.Type
		if typ == "" {
			typ = "text"
		}
		cols[i] = result.Column{
			Name:        c.Name,
			TypeOID:     result.OIDForTypeName(typ),
			TableColumn: i,
		}
	}
	b := result.NewBuilder(cols...)
	cells := make([]result.Cell, len(cols))
	for ri, row := range fx.Rows {
		for i, cell := range row {
			if cell == nil {
				cells[i] = result.Null()
			} else {
				cells[i] = result.Text(*cell)
			}
		}
		if err := b.Append(cells...); err != nil {
			return nil, fmt.Errorf("row %d: %w", ri, err)
		}
	}
	return b.Build(), nil
}

// validateSchema unifies the decoded document with #Fixture from the
// embedded CUE schema.
func validateSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Fixture"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("schema has no #Fixture: %w", err)
	}

	unified := def.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// validateShape enforces the constraints CUE does not express: at least
// one column, and every row as wide as the column list.
func validateShape(fx *Fixture) error {
	if len(fx.Columns) == 0 {
		return fmt.Errorf("columns list is required and must be non-empty")
	}
	for i, row := range fx.Rows {
		if len(row) != len(fx.Columns) {
			return fmt.Errorf("rows[%d]: has %d cells, want %d", i, len(row), len(fx.Columns))
		}
	}
	return nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	positions := cueerrors.Positions(first)
	if len(positions) > 0 {
		pos := positions[0]
		return fmt.Errorf("%s:%d:%d: %s", pos.Filename(), pos.Line(), pos.Column(), first.Error())
	}
	return first
}
