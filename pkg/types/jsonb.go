package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON array.
type StringList []string

// Value marshals the list into JSON. A nil list is stored as [].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	buf, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan decodes a JSON array into the list.
func (l *StringList) Scan(value any) error {
	raw, err := jsonBytes("string list", value)
	if err != nil || raw == nil {
		*l = nil
		return err
	}
	result := StringList{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*l = result
	return nil
}

// StringMap is a flat string mapping persisted as a JSON object.
type StringMap map[string]string

// Value marshals the map into JSON. A nil map is stored as {}.
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	buf, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan decodes a JSON object into the map.
func (m *StringMap) Scan(value any) error {
	raw, err := jsonBytes("string map", value)
	if err != nil || raw == nil {
		*m = nil
		return err
	}
	result := make(StringMap)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*m = result
	return nil
}

func jsonBytes(kind string, value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("%s: unsupported scan type %T", kind, value)
	}
}
