package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON emits the record as an object whose key order is the column
// order. The stock map marshaler would sort keys alphabetically.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.Values[col])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object back preserving key order. Integral numbers
// come back as int, everything else numeric as float64.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	r.Columns = nil
	r.Values = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}

		var val any
		switch v := valTok.(type) {
		case json.Number:
			if n, err := strconv.Atoi(v.String()); err == nil {
				val = n
			} else if f, err := v.Float64(); err == nil {
				val = f
			} else {
				return fmt.Errorf("column %q: invalid number %q", key, v.String())
			}
		case string, bool, nil:
			val = v
		default:
			return fmt.Errorf("column %q: unexpected nested value", key)
		}

		r.Columns = append(r.Columns, key)
		r.Values[key] = val
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
