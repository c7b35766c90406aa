package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowview/rowview/capture"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func seedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := capture.Open(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.Exec(ctx, `CREATE TABLE t (id INTEGER, name TEXT, score REAL)`))
	require.NoError(t, db.Exec(ctx, `INSERT INTO t VALUES (1, 'alice', 3.5)`))
	require.NoError(t, db.Exec(ctx, `INSERT INTO t VALUES (2, NULL, NULL)`))
	return path
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "rowview")
	assert.Contains(t, out, "dump")
	assert.Contains(t, out, "convert")
}

func TestInvalidFormatRejected(t *testing.T) {
	db := seedDB(t)
	_, err := execute(t, "dump", "--db", db, "--format", "yaml", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestDumpText(t *testing.T) {
	db := seedDB(t)
	out, err := execute(t, "dump", "--db", db, "SELECT id, name FROM t ORDER BY id")
	require.NoError(t, err)

	assert.Contains(t, out, "id(int8)\tname(text)")
	assert.Contains(t, out, "1\talice")
	assert.Contains(t, out, "2\t\\N")
	assert.Contains(t, out, "(2 rows)")
}

func TestDumpJSON(t *testing.T) {
	db := seedDB(t)
	out, err := execute(t, "dump", "--db", db, "--format", "json",
		"SELECT id, name FROM t ORDER BY id")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Columns []struct {
				Name string `json:"name"`
				Type string `json:"type"`
			} `json:"columns"`
			Rows [][]*string `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Columns, 2)
	assert.Equal(t, "id", resp.Data.Columns[0].Name)
	assert.Equal(t, "int8", resp.Data.Columns[0].Type)
	require.Len(t, resp.Data.Rows, 2)
	require.NotNil(t, resp.Data.Rows[0][1])
	assert.Equal(t, "alice", *resp.Data.Rows[0][1])
	assert.Nil(t, resp.Data.Rows[1][1], "NULL cell must be JSON null")
}

func TestDumpRequiresDB(t *testing.T) {
	_, err := execute(t, "dump", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}

func TestDumpBadQuery(t *testing.T) {
	db := seedDB(t)
	_, err := execute(t, "dump", "--db", db, "SELECT * FROM missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvertText(t *testing.T) {
	db := seedDB(t)
	out, err := execute(t, "convert", "--db", db, "--type", "int8",
		"SELECT id FROM t ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestConvertNullWithoutDefault(t *testing.T) {
	db := seedDB(t)
	out, err := execute(t, "convert", "--db", db, "--type", "float8",
		"SELECT score FROM t ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, "3.5\nNULL\n", out)
}

func TestConvertNullWithDefault(t *testing.T) {
	db := seedDB(t)
	out, err := execute(t, "convert", "--db", db, "--type", "float8",
		"--default", "-1", "SELECT score FROM t ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, "3.5\n-1\n", out)
}

func TestConvertColumnFlag(t *testing.T) {
	db := seedDB(t)
	out, err := execute(t, "convert", "--db", db, "--type", "text", "--column", "1",
		"--default", "?", "SELECT id, name FROM t ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, "alice\n?\n", out)
}

func TestConvertColumnOutOfRange(t *testing.T) {
	db := seedDB(t)
	_, err := execute(t, "convert", "--db", db, "--column", "5", "SELECT id FROM t")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "out of range")
}

func TestConvertUnsupportedType(t *testing.T) {
	db := seedDB(t)
	_, err := execute(t, "convert", "--db", db, "--type", "jsonb", "SELECT id FROM t")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvertParseFailure(t *testing.T) {
	db := seedDB(t)
	_, err := execute(t, "convert", "--db", db, "--type", "int8",
		"SELECT name FROM t WHERE id = 1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestConvertJSON(t *testing.T) {
	db := seedDB(t)
	out, err := execute(t, "convert", "--db", db, "--type", "int8", "--format", "json",
		"SELECT id FROM t ORDER BY id")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Row   int     `json:"row"`
			Value *string `json:"value"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "1", *resp.Data[0].Value)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(&ExitError{Code: ExitCommandError, Message: "x"}))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := WrapExitError(ExitFailure, "outer", inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "outer: inner", err.Error())
}

func TestVerboseLog(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf, Verbose: false}
	f.VerboseLog("hidden %d", 1)
	assert.Empty(t, buf.String())

	f.Verbose = true
	f.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", buf.String())
}
