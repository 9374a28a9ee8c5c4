// Package loader reads monitor records from JSON, CSV or YAML files.
//
// The file format is chosen by extension only. Loaders return loosely-typed
// rows; validation into domain.MonitorRecord happens during aggregation so
// that errors carry the row's position.
package loader

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/vburojevic/moncov/internal/domain"
	"gopkg.in/yaml.v3"
)

// Input file kinds, keyed by extension
var decoders = []struct {
	ext    string
	decode func([]byte) ([]domain.RawRecord, error)
}{
	{".json", DecodeJSON},
	{".csv", DecodeCSV},
	{".yaml", DecodeYAML},
	{".yml", DecodeYAML},
}

// Extensions returns the input file extensions Load understands.
func Extensions() []string {
	exts := make([]string, len(decoders))
	for i, d := range decoders {
		exts[i] = d.ext
	}
	return exts
}

// Load reads all rows from path.
func Load(path string) ([]domain.RawRecord, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, d := range decoders {
		if d.ext != ext {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &domain.IOError{Op: "read", Path: path, Err: err}
		}
		rows, err := d.decode(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return rows, nil
	}
	requested := ext
	if requested == "" {
		requested = path
	}
	return nil, &domain.UnsupportedFormatError{Requested: requested, Valid: Extensions()}
}

// DecodeJSON accepts an array of objects or an object with a "records" array.
func DecodeJSON(data []byte) ([]domain.RawRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if doc.IsObject() {
		doc = doc.Get("records")
	}
	if !doc.IsArray() {
		return nil, errors.New(`JSON input must be an array of records or an object with a "records" array`)
	}

	var items []any
	if err := json.Unmarshal([]byte(doc.Raw), &items); err != nil {
		return nil, err
	}
	return toRows(items)
}

// DecodeYAML accepts a sequence of mappings or a mapping with a "records" sequence.
func DecodeYAML(data []byte) ([]domain.RawRecord, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if m, ok := doc.(map[string]any); ok {
		doc = m["records"]
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, errors.New(`YAML input must be a list of records or a mapping with a "records" list`)
	}
	return toRows(items)
}

// DecodeCSV reads a header row followed by one record per row.
func DecodeCSV(data []byte) ([]domain.RawRecord, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return []domain.RawRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	rows := []domain.RawRecord{}
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(domain.RawRecord, len(header))
		for i, h := range header {
			if h == "" || i >= len(fields) {
				continue
			}
			row[h] = fields[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toRows(items []any) ([]domain.RawRecord, error) {
	rows := make([]domain.RawRecord, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, &domain.ValidationError{Index: i, Reason: fmt.Sprintf("expected an object, got %T", item)}
		}
		rows = append(rows, domain.RawRecord(m))
	}
	return rows, nil
}
