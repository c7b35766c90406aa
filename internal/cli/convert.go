package cli

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rowview/rowview/capture"
	"github.com/rowview/rowview/result"
	"github.com/rowview/rowview/value"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Database string
	Type     string
	Column   int
	Default  string
	HasDef   bool
}

// convertedCell is the JSON shape of one converted value.
type convertedCell struct {
	Row   int     `json:"row"`
	Value *string `json:"value"` // nil when the cell was NULL and the type allows it
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <query>",
		Short: "Run a query and convert one column through the typed accessors",
		Long: `Execute a SQL query, then convert the chosen column of every row to
the requested type and print the round-tripped text. With --default, NULL
cells take the default; without it they print as NULL.

Supported types: int2 int4 int8 float4 float8 bool text numeric uuid
timestamp.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.HasDef = cmd.Flags().Changed("default")
			return runConvert(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the SQLite database (required)")
	cmd.Flags().StringVar(&opts.Type, "type", "text", "target type name")
	cmd.Flags().IntVar(&opts.Column, "column", 0, "column index to convert")
	cmd.Flags().StringVar(&opts.Default, "default", "", "text form of the default for NULL cells")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *ConvertOptions, query string) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	conv, err := converterFor(opts.Type)
	if err != nil {
		return WrapExitError(ExitCommandError, "unsupported type", err)
	}

	db, err := capture.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer db.Close()

	res, err := db.Capture(cmd.Context(), query)
	if err != nil {
		return WrapExitError(ExitCommandError, "capture failed", err)
	}
	if opts.Column < 0 || opts.Column >= res.NumColumns() {
		return WrapExitError(ExitCommandError,
			fmt.Sprintf("column %d out of range: result has %d columns", opts.Column, res.NumColumns()), nil)
	}

	var def *string
	if opts.HasDef {
		def = &opts.Default
	}

	cells := make([]convertedCell, 0, res.Len())
	for r := 0; r < res.Len(); r++ {
		text, err := conv(res.Field(r, opts.Column), def)
		if err != nil {
			return WrapExitError(ExitFailure,
				fmt.Sprintf("row %d, column %d", r, opts.Column), err)
		}
		cells = append(cells, convertedCell{Row: r, Value: text})
	}

	if opts.Format == "json" {
		return out.Success(cells)
	}
	for _, c := range cells {
		if c.Value == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "NULL")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), *c.Value)
		}
	}
	return nil
}

// converter converts one field, honoring an optional textual default.
type converter func(f result.Field, def *string) (*string, error)

// converterFor maps a type name to a converter built over the generic
// entry points.
func converterFor(typ string) (converter, error) {
	switch typ {
	case "int2", "smallint":
		return convertAs[int16], nil
	case "int4", "int", "integer":
		return convertAs[int32], nil
	case "int8", "bigint":
		return convertAs[int64], nil
	case "float4", "real":
		return convertAs[float32], nil
	case "float8", "double":
		return convertAs[float64], nil
	case "bool", "boolean":
		return convertAs[bool], nil
	case "text", "varchar":
		return convertAs[string], nil
	case "numeric", "decimal":
		return convertAs[apd.Decimal], nil
	case "uuid":
		return convertAs[uuid.UUID], nil
	case "timestamp":
		return convertAs[time.Time], nil
	}
	return nil, fmt.Errorf("no converter for type %q", typ)
}

// convertAs converts through AsOr when a default is given, and through Get
// otherwise, then serializes the value back to text.
func convertAs[T any](f result.Field, def *string) (*string, error) {
	if def != nil {
		d, err := value.FromText[T]([]byte(*def))
		if err != nil {
			return nil, fmt.Errorf("bad default: %w", err)
		}
		v, err := result.AsOr(f, d)
		if err != nil {
			return nil, err
		}
		s, err := value.ToText(v)
		if err != nil {
			return nil, err
		}
		return &s, nil
	}

	o, err := result.Get[T](f)
	if err != nil {
		return nil, err
	}
	v, ok := o.Get()
	if !ok {
		return nil, nil
	}
	s, err := value.ToText(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
