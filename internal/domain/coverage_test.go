package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	t.Run("zero total is not applicable", func(t *testing.T) {
		r := NewRate(0, 0)
		_, ok := r.Value()
		assert.False(t, ok)
		assert.Equal(t, "N/A", r.Percent())
		assert.Equal(t, Rate{}, r)
	})

	t.Run("formats one decimal", func(t *testing.T) {
		assert.Equal(t, "50.0%", NewRate(1, 2).Percent())
		assert.Equal(t, "33.3%", NewRate(1, 3).Percent())
		assert.Equal(t, "66.7%", NewRate(2, 3).Percent())
		assert.Equal(t, "0.0%", NewRate(0, 5).Percent())
		assert.Equal(t, "100.0%", NewRate(5, 5).Percent())
	})

	t.Run("json encodes number or null", func(t *testing.T) {
		data, err := json.Marshal(struct {
			A Rate `json:"a"`
			B Rate `json:"b"`
		}{NewRate(1, 4), NewRate(0, 0)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":0.25,"b":null}`, string(data))
	})

	t.Run("json decodes number or null", func(t *testing.T) {
		var v struct {
			A Rate `json:"a"`
			B Rate `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":0.25,"b":null}`), &v))
		assert.Equal(t, NewRate(1, 4), v.A)
		assert.False(t, v.B.Applicable())
	})
}

func TestMissingMonitor(t *testing.T) {
	assert.Equal(t, "disk", MissingMonitor{Monitor: "disk"}.String())
	assert.Equal(t, "db/disk", MissingMonitor{Component: "db", Monitor: "disk"}.String())

	unscoped := MissingMonitor{Monitor: "zzz"}
	scoped := MissingMonitor{Component: "api", Monitor: "aaa"}
	assert.True(t, unscoped.Less(scoped))
	assert.False(t, scoped.Less(unscoped))
	assert.True(t, MissingMonitor{Component: "api", Monitor: "a"}.Less(MissingMonitor{Component: "api", Monitor: "b"}))
}

func TestErrors(t *testing.T) {
	assert.Equal(t, `record 3: field "monitor": field is missing`,
		(&ValidationError{Index: 3, Field: "monitor", Reason: "field is missing"}).Error())
	assert.Equal(t, `record 0: expected an object, got string`,
		(&ValidationError{Index: 0, Reason: "expected an object, got string"}).Error())
	assert.Equal(t, `unsupported format "xml" (valid: table, markdown, csv, json)`,
		(&UnsupportedFormatError{Requested: "xml", Valid: []string{"table", "markdown", "csv", "json"}}).Error())
}
