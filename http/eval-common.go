package http

import (
	"bytes"
	"encoding/json"
)

// decodeJsonValue decodes one test-case value preserving the lexical
// distinction between integers and floats: 5 and 5.0 must stay different
// because verdict comparison is exact and type-strict.
func decodeJsonValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
