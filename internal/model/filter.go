package model

// OperatorEquals is the only filter operator the listing endpoint currently
// understands. The operator tag travels with each filter so new operators can
// be added server-side without a wire change.
const OperatorEquals = "equals"

// Filter is a single active column filter: an operator tag plus a value.
type Filter struct {
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// Equals returns an equality filter for the given value.
func Equals(value any) Filter {
	return Filter{Operator: OperatorEquals, Value: value}
}

// Filters maps field names to active filters. Inactive fields are absent from
// the map entirely — they are never serialized as null or empty.
type Filters map[string]Filter

// Clone returns a shallow copy so callers can mutate without aliasing.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
