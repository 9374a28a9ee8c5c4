package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/moncov/internal/domain"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FormatsAgree(t *testing.T) {
	expected := []domain.MonitorRecord{
		{System: "billing", Component: "api", Monitor: "latency", Required: true, Monitored: true},
		{System: "billing", Component: "db", Monitor: "replication", Required: true},
		{System: "auth", Monitor: "login-errors", Required: true, Monitored: true},
		{System: "auth", Monitor: "audit-log"},
	}

	for _, name := range []string{"monitors.json", "monitors.csv", "monitors.yaml"} {
		t.Run(name, func(t *testing.T) {
			rows, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			require.Len(t, rows, 4)

			records, err := domain.ParseRecords(rows)
			require.NoError(t, err)
			assert.Equal(t, expected, records)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		var ioErr *domain.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, "read", ioErr.Op)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load("monitors.xml")
		var fmtErr *domain.UnsupportedFormatError
		require.ErrorAs(t, err, &fmtErr)
		assert.Equal(t, ".xml", fmtErr.Requested)
		assert.Equal(t, []string{".json", ".csv", ".yaml", ".yml"}, fmtErr.Valid)
	})

	t.Run("extension is case-insensitive", func(t *testing.T) {
		path := writeFile(t, "MONITORS.JSON", `[{"system":"a","monitor":"b"}]`)
		rows, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "bad.json", `[{"system":`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("records wrapper", func(t *testing.T) {
		rows, err := DecodeJSON([]byte(`{"records":[{"system":"a","monitor":"m","required":false}]}`))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, false, rows[0]["required"])
	})

	t.Run("empty array", func(t *testing.T) {
		rows, err := DecodeJSON([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("object without records", func(t *testing.T) {
		_, err := DecodeJSON([]byte(`{"items":[]}`))
		require.Error(t, err)
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := DecodeJSON([]byte(`42`))
		require.Error(t, err)
	})

	t.Run("non-object element", func(t *testing.T) {
		_, err := DecodeJSON([]byte(`[{"system":"a","monitor":"m"}, "oops"]`))
		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, 1, valErr.Index)
	})
}

func TestDecodeCSV(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		rows, err := DecodeCSV([]byte("system,monitor,required,monitored\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("empty file", func(t *testing.T) {
		rows, err := DecodeCSV(nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("normalizes header and strips BOM", func(t *testing.T) {
		rows, err := DecodeCSV([]byte("\ufeffSystem, Monitor ,Required\nweb,uptime,no\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.RawRecord{"system": "web", "monitor": "uptime", "required": "no"}, rows[0])
	})

	t.Run("quoted fields", func(t *testing.T) {
		rows, err := DecodeCSV([]byte("system,monitor\n\"core, eu\",\"disk\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "core, eu", rows[0]["system"])
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := DecodeCSV([]byte("system,monitor\nweb\n"))
		require.Error(t, err)
	})
}

func TestDecodeYAML(t *testing.T) {
	t.Run("top-level list", func(t *testing.T) {
		rows, err := DecodeYAML([]byte("- system: a\n  monitor: m\n  monitored: true\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, true, rows[0]["monitored"])
	})

	t.Run("mapping without records", func(t *testing.T) {
		_, err := DecodeYAML([]byte("systems: []\n"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := DecodeYAML([]byte("- [unclosed"))
		require.Error(t, err)
	})
}
