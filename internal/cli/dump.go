package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rowview/rowview/capture"
	"github.com/rowview/rowview/result"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	Database string
}

// dumpColumn is the JSON shape of one column.
type dumpColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// dumpResult is the JSON shape of a dumped result. Cells are strings or
// null.
type dumpResult struct {
	Columns []dumpColumn `json:"columns"`
	Rows    [][]*string  `json:"rows"`
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump <query>",
		Short: "Run a query and print its captured textual result",
		Long: `Execute a SQL query against a SQLite database, capture the result as
text, and print every cell. NULL cells print as \N, distinct from empty
strings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runDump(cmd *cobra.Command, opts *DumpOptions, query string) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	db, err := capture.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer db.Close()

	out.VerboseLog("capturing query: %s", query)
	res, err := db.Capture(cmd.Context(), query)
	if err != nil {
		return WrapExitError(ExitCommandError, "capture failed", err)
	}

	if opts.Format == "json" {
		return out.Success(buildDump(res))
	}
	fmt.Fprint(cmd.OutOrStdout(), renderText(res))
	return nil
}

func buildDump(res *result.Result) dumpResult {
	d := dumpResult{Rows: make([][]*string, 0, res.Len())}
	for _, col := range res.Columns() {
		d.Columns = append(d.Columns, dumpColumn{
			Name: col.Name,
			Type: result.TypeNameForOID(col.TypeOID),
		})
	}
	for r := 0; r < res.Len(); r++ {
		row := make([]*string, res.NumColumns())
		for c := 0; c < res.NumColumns(); c++ {
			f := res.Field(r, c)
			if !f.IsNull() {
				s := f.String()
				row[c] = &s
			}
		}
		d.Rows = append(d.Rows, row)
	}
	return d
}

func renderText(res *result.Result) string {
	var sb strings.Builder
	for c, col := range res.Columns() {
		if c > 0 {
			sb.WriteString("\t")
		}
		fmt.Fprintf(&sb, "%s(%s)", col.Name, result.TypeNameForOID(col.TypeOID))
	}
	sb.WriteByte('\n')
	for r := 0; r < res.Len(); r++ {
		for c := 0; c < res.NumColumns(); c++ {
			if c > 0 {
				sb.WriteString("\t")
			}
			f := res.Field(r, c)
			if f.IsNull() {
				sb.WriteString(`\N`)
			} else {
				sb.WriteString(f.String())
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "(%d rows)\n", res.Len())
	return sb.String()
}
