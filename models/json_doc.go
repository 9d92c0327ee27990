package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap is a schemaless JSONB document body. The page-content and
// site-settings singletons store their whole payload in one of these.
type JSONMap map[string]interface{}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}
	return json.Unmarshal(bytes, m)
}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]interface{}{})
	}
	return json.Marshal(m)
}

// Merge returns a new map with the top-level keys of patch applied over m.
// Keys absent from patch keep their existing values; m itself is not
// modified. This mirrors how the document store merged partial writes into
// singleton documents.
func (m JSONMap) Merge(patch JSONMap) JSONMap {
	merged := make(JSONMap, len(m)+len(patch))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Decode re-marshals the map into a typed struct. Used where a controller
// needs a known shape out of a schemaless document.
func (m JSONMap) Decode(out interface{}) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// ToJSONMap is the inverse of Decode: it flattens a typed struct into a
// JSONMap so it can be stored as a document body.
func ToJSONMap(in interface{}, out *JSONMap) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
