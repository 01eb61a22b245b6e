package export

import (
	"github.com/mmrzaf/dataforge/internal/domain"
)

// Exporter serializes a dataset into one wire format.
type Exporter interface {
	Export(ds *domain.Dataset) (*domain.Payload, error)
}

// TableName is the table used by the sql exporter and the default table for
// database loading. Matches the filename stem of every export.
const TableName = "generated_data"

// ForFormat picks the exporter for a format selector. An unknown selector is
// a caller error, not a generator fault.
func ForFormat(f domain.Format) (Exporter, error) {
	switch f {
	case domain.FormatCSV:
		return &CSVExporter{}, nil
	case domain.FormatJSON:
		return &JSONExporter{}, nil
	case domain.FormatXML:
		return &XMLExporter{}, nil
	case domain.FormatSQL:
		return &SQLExporter{}, nil
	default:
		return nil, domain.BadRequestf("unsupported output format: %s", f)
	}
}
