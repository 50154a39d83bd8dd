package transport

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleID accepts 12, "12" or null. HTML forms post ids as strings.
// Missing, null, "" and 0 leave Set false; anything else that is not a
// positive integer leaves Valid false.
type FlexibleID struct {
	Set   bool
	Valid bool
	Value int64
}

func NewFlexibleID(v int64) FlexibleID {
	return FlexibleID{Set: true, Valid: v > 0, Value: v}
}

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	*f = FlexibleID{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if raw == "" || raw == "0" {
		return nil
	}
	f.Set = true
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
		f.Valid = true
		f.Value = v
	}
	return nil
}

func (f FlexibleID) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.Value, 10)), nil
}

// OptionalString tells a missing field apart from an explicit null. Set is
// true for both "text" and null; Value is nil for null.
type OptionalString struct {
	Set   bool
	Value *string
}

func NewOptionalString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	*o = OptionalString{Set: true}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
