package domain

import (
	"fmt"
	"slices"
)

// Format selects an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatSQL  Format = "sql"
)

func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatXML, FormatSQL}
}

// GenerateRequest is the core-facing input contract: how many records, which
// columns (order matters), and which export format. PresetID may stand in for
// the inline fields.
type GenerateRequest struct {
	RecordCount int      `json:"record_count"`
	Columns     []string `json:"columns"`
	Format      Format   `json:"format"`
	PresetID    string   `json:"preset_id,omitempty"`
}

// Preset is a saved generation request loaded from the presets directory.
type Preset struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	RecordCount int      `json:"record_count" yaml:"record_count"`
	Columns     []string `json:"columns" yaml:"columns"`
	Format      Format   `json:"format" yaml:"format"`
}

// Record is one generated row: the requested columns in requested order and a
// value per column. Values hold native scalars (string, int, float64).
type Record struct {
	Columns []string
	Values  map[string]any
}

func (r Record) Get(name string) (any, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Dataset accumulates records that all share one column header.
type Dataset struct {
	Columns []string
	Records []Record
}

func NewDataset(columns []string) *Dataset {
	return &Dataset{Columns: slices.Clone(columns)}
}

// Append rejects records whose column set or order differs from the header.
func (d *Dataset) Append(rec Record) error {
	if !slices.Equal(rec.Columns, d.Columns) {
		return fmt.Errorf("record columns %v do not match dataset columns %v", rec.Columns, d.Columns)
	}
	d.Records = append(d.Records, rec)
	return nil
}

// FromRecords builds a dataset from pre-generated records, enforcing the
// shared-header invariant on every record.
func FromRecords(columns []string, records []Record) (*Dataset, error) {
	d := NewDataset(columns)
	for i, rec := range records {
		if err := d.Append(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return d, nil
}

// Payload is a finished export: bytes plus the metadata the boundary layer
// needs to serve it as a download.
type Payload struct {
	Data     []byte
	MIMEType string
	Filename string
}

// ColumnInfo describes a registered column for listings.
type ColumnInfo struct {
	Name          string   `json:"name"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}
