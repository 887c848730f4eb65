package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCount_Memory(t *testing.T) {
	out, err := run(t, "count", "--driver", "memory", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "4", strings.TrimSpace(out))
}

func TestMigrateThenCount_SQLite(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "catalog.db")

	out, err := run(t, "migrate", "--driver", "sqlite3", "--dsn", dsn, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Products table ready (sqlite3)")

	out, err = run(t, "count", "--driver", "sqlite3", "--dsn", dsn, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))
}

func TestCount_MissingTable(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "empty.db")

	_, err := run(t, "count", "--driver", "sqlite3", "--dsn", dsn, "--log-level", "panic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not count products")
}

func TestMigrate_RejectsMemory(t *testing.T) {
	_, err := run(t, "migrate", "--driver", "memory")
	assert.Error(t, err)
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := run(t, "count", "--driver", "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dsn")
}
