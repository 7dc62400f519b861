package dto

import (
	"encoding/json"
	"fmt"
)

// OptionalInt64 distinguishes an absent JSON field from an explicit null.
type OptionalInt64 struct {
	Set   bool
	Value *int64
}

func (o *OptionalInt64) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("expected an integer id: %w", err)
	}
	if v < 1 {
		return fmt.Errorf("id must be at least 1, got %d", v)
	}
	o.Value = &v
	return nil
}
