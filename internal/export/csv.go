package export

import (
	"bytes"
	"encoding/csv"

	"github.com/mmrzaf/dataforge/internal/domain"
)

// CSVExporter writes a header row of column names followed by one row per
// record. encoding/csv handles quoting of delimiters, quotes and newlines.
type CSVExporter struct{}

func (e *CSVExporter) Export(ds *domain.Dataset) (*domain.Payload, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ds.Columns); err != nil {
		return nil, err
	}

	row := make([]string, len(ds.Columns))
	for _, rec := range ds.Records {
		for i, col := range ds.Columns {
			row[i] = domain.Stringify(rec.Values[col])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &domain.Payload{
		Data:     buf.Bytes(),
		MIMEType: "text/csv",
		Filename: TableName + ".csv",
	}, nil
}
