package export

import (
	"strings"

	"github.com/mmrzaf/dataforge/internal/domain"
)

// SQLExporter emits one CREATE TABLE declaring every column as TEXT, then one
// INSERT per record with every value quoted as text and embedded single
// quotes doubled. Column and table names are not escaped further; the
// registry only admits plain identifiers.
type SQLExporter struct{}

func (e *SQLExporter) Export(ds *domain.Dataset) (*domain.Payload, error) {
	var b strings.Builder

	colDefs := make([]string, len(ds.Columns))
	for i, col := range ds.Columns {
		colDefs[i] = col + " TEXT"
	}
	b.WriteString("CREATE TABLE " + TableName + " (" + strings.Join(colDefs, ", ") + ");")

	colList := strings.Join(ds.Columns, ", ")
	vals := make([]string, len(ds.Columns))
	for _, rec := range ds.Records {
		for i, col := range ds.Columns {
			vals[i] = "'" + quoteSQL(domain.Stringify(rec.Values[col])) + "'"
		}
		b.WriteString("\nINSERT INTO " + TableName + " (" + colList + ") VALUES (" + strings.Join(vals, ", ") + ");")
	}

	return &domain.Payload{
		Data:     []byte(b.String()),
		MIMEType: "application/sql",
		Filename: TableName + ".sql",
	}, nil
}

func quoteSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
