package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"slices"
	"strings"
	"testing"

	"github.com/mmrzaf/dataforge/internal/domain"
)

func testDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	cols := []string{"name", "age", "note"}
	ds := domain.NewDataset(cols)
	rows := []map[string]any{
		{"name": "O'Brien", "age": 41, "note": "plain"},
		{"name": "Smith, Jane", "age": 28, "note": `says "hi"`},
		{"name": "multi", "age": 35, "note": "line\nbreak"},
	}
	for _, row := range rows {
		if err := ds.Append(domain.Record{Columns: cols, Values: row}); err != nil {
			t.Fatal(err)
		}
	}
	return ds
}

func TestForFormat(t *testing.T) {
	for _, f := range domain.Formats() {
		if _, err := ForFormat(f); err != nil {
			t.Errorf("expected exporter for %s: %v", f, err)
		}
	}

	_, err := ForFormat("parquet")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !domain.IsBadRequest(err) {
		t.Fatalf("unsupported format must be a caller error, got %v", err)
	}
}

func TestCSVExport(t *testing.T) {
	ds := testDataset(t)
	payload, err := (&CSVExporter{}).Export(ds)
	if err != nil {
		t.Fatal(err)
	}
	if payload.MIMEType != "text/csv" {
		t.Fatalf("unexpected mime type: %s", payload.MIMEType)
	}
	if payload.Filename != "generated_data.csv" {
		t.Fatalf("unexpected filename: %s", payload.Filename)
	}

	rows, err := csv.NewReader(bytes.NewReader(payload.Data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if !slices.Equal(rows[0], ds.Columns) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[2][0] != "Smith, Jane" || rows[2][2] != `says "hi"` {
		t.Fatalf("escaping lost values: %v", rows[2])
	}
	if rows[3][2] != "line\nbreak" {
		t.Fatalf("newline not round-tripped: %q", rows[3][2])
	}
}

func TestJSONExport_RoundTrip(t *testing.T) {
	ds := testDataset(t)
	payload, err := (&JSONExporter{}).Export(ds)
	if err != nil {
		t.Fatal(err)
	}
	if payload.MIMEType != "application/json" {
		t.Fatalf("unexpected mime type: %s", payload.MIMEType)
	}

	var parsed []domain.Record
	if err := json.Unmarshal(payload.Data, &parsed); err != nil {
		t.Fatal(err)
	}
	if len(parsed) != len(ds.Records) {
		t.Fatalf("expected %d records, got %d", len(ds.Records), len(parsed))
	}
	for i, rec := range parsed {
		if !slices.Equal(rec.Columns, ds.Columns) {
			t.Fatalf("record %d: key order %v differs from column order", i, rec.Columns)
		}
		for _, col := range ds.Columns {
			if rec.Values[col] != ds.Records[i].Values[col] {
				t.Fatalf("record %d column %q: expected %v, got %v",
					i, col, ds.Records[i].Values[col], rec.Values[col])
			}
		}
	}

	// Native types survive: age must be a JSON number, not a string.
	if !strings.Contains(string(payload.Data), `"age": 41`) {
		t.Fatalf("expected numeric age in output:\n%s", payload.Data)
	}
}

func TestJSONExport_EmptyDataset(t *testing.T) {
	ds := domain.NewDataset([]string{"a"})
	payload, err := (&JSONExporter{}).Export(ds)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(payload.Data)) != "[]" {
		t.Fatalf("expected empty array, got %q", payload.Data)
	}
}

func TestXMLExport_Structure(t *testing.T) {
	ds := testDataset(t)
	payload, err := (&XMLExporter{}).Export(ds)
	if err != nil {
		t.Fatal(err)
	}
	if payload.MIMEType != "application/xml" {
		t.Fatalf("unexpected mime type: %s", payload.MIMEType)
	}

	dec := xml.NewDecoder(bytes.NewReader(payload.Data))
	var records, leaves int
	var depth int
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				if el.Name.Local != "data" {
					t.Fatalf("unexpected root element: %s", el.Name.Local)
				}
			case 2:
				if el.Name.Local != "record" {
					t.Fatalf("unexpected record element: %s", el.Name.Local)
				}
				records++
			case 3:
				if !slices.Contains(ds.Columns, el.Name.Local) {
					t.Fatalf("leaf %q is not a selected column", el.Name.Local)
				}
				leaves++
			}
		case xml.EndElement:
			depth--
		}
	}

	if records != len(ds.Records) {
		t.Fatalf("expected %d record elements, got %d", len(ds.Records), records)
	}
	if leaves != len(ds.Records)*len(ds.Columns) {
		t.Fatalf("expected %d leaves, got %d", len(ds.Records)*len(ds.Columns), leaves)
	}

	// Every value stringified, numbers included.
	if !strings.Contains(string(payload.Data), "<age>41</age>") {
		t.Fatalf("expected stringified age leaf:\n%s", payload.Data)
	}
}

func TestSQLExport_SchemaAndQuoting(t *testing.T) {
	// No newline values here: the statement-per-line check below splits on \n.
	cols := []string{"name", "age", "note"}
	ds := domain.NewDataset(cols)
	for _, row := range []map[string]any{
		{"name": "O'Brien", "age": 41, "note": "plain"},
		{"name": "Smith, Jane", "age": 28, "note": `says "hi"`},
	} {
		if err := ds.Append(domain.Record{Columns: cols, Values: row}); err != nil {
			t.Fatal(err)
		}
	}

	payload, err := (&SQLExporter{}).Export(ds)
	if err != nil {
		t.Fatal(err)
	}
	if payload.MIMEType != "application/sql" {
		t.Fatalf("unexpected mime type: %s", payload.MIMEType)
	}

	lines := strings.Split(string(payload.Data), "\n")
	if len(lines) != 1+len(ds.Records) {
		t.Fatalf("expected schema + %d inserts, got %d lines", len(ds.Records), len(lines))
	}

	wantSchema := "CREATE TABLE generated_data (name TEXT, age TEXT, note TEXT);"
	if lines[0] != wantSchema {
		t.Fatalf("unexpected schema statement:\n got %s\nwant %s", lines[0], wantSchema)
	}

	if !strings.Contains(lines[1], "'O''Brien'") {
		t.Fatalf("single quote not doubled: %s", lines[1])
	}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "INSERT INTO generated_data (name, age, note) VALUES (") {
			t.Fatalf("unexpected insert statement: %s", line)
		}
	}
}
