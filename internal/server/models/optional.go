package models

import "encoding/json"

// OptionalID is a tri-state id field for partial-update payloads. It
// distinguishes "field omitted" (Set == false) from "explicitly null"
// (Set && !Valid) from "set to a value" (Set && Valid). The shape follows
// sql.NullInt64 with an added presence bit.
type OptionalID struct {
	Set   bool
	Valid bool
	Value int64
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a nullable pointer, ignoring the presence bit.
func (o OptionalID) Ptr() *int64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
