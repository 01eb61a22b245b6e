package export

import (
	"encoding/json"

	"github.com/mmrzaf/dataforge/internal/domain"
)

// JSONExporter emits an array of objects, one per record, with native scalar
// values. Key order within each object is the dataset's column order.
type JSONExporter struct{}

func (e *JSONExporter) Export(ds *domain.Dataset) (*domain.Payload, error) {
	records := ds.Records
	if records == nil {
		records = []domain.Record{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, err
	}

	return &domain.Payload{
		Data:     data,
		MIMEType: "application/json",
		Filename: TableName + ".json",
	}, nil
}
