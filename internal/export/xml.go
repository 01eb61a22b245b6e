package export

import (
	"bytes"
	"encoding/xml"

	"github.com/mmrzaf/dataforge/internal/domain"
)

// XMLExporter wraps one <record> element per record under a <data> root, with
// one leaf element per column. All values are stringified.
type XMLExporter struct{}

func (e *XMLExporter) Export(ds *domain.Dataset) (*domain.Payload, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: "data"}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	for _, rec := range ds.Records {
		recStart := xml.StartElement{Name: xml.Name{Local: "record"}}
		if err := enc.EncodeToken(recStart); err != nil {
			return nil, err
		}
		for _, col := range ds.Columns {
			leaf := xml.StartElement{Name: xml.Name{Local: col}}
			if err := enc.EncodeElement(domain.Stringify(rec.Values[col]), leaf); err != nil {
				return nil, err
			}
		}
		if err := enc.EncodeToken(recStart.End()); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	return &domain.Payload{
		Data:     buf.Bytes(),
		MIMEType: "application/xml",
		Filename: TableName + ".xml",
	}, nil
}
