package dto

import (
	"encoding/json"
)

// NullableString 区分"字段未提供"、"显式null"和"有值"三种情况
// UnmarshalJSON仅在请求体包含该字段时被调用,因此Present标记字段是否出现
type NullableString struct {
	Present bool
	Valid   bool
	Value   string
}

// UnmarshalJSON 实现json.Unmarshaler接口
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Present = true

	if string(data) == "null" {
		n.Valid = false
		n.Value = ""
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON 实现json.Marshaler接口
func (n NullableString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
