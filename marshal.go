package getopt

import "encoding/json"

// MarshalJSON implements json.Marshaler for Result.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// ToMap converts the result to a native Go map structure with two keys:
// "options" and "parameters".
//
// Each alias key of each matched option maps to its value: a single
// occurrence stays scalar, repeats promote to an ordered list. An
// occurrence without an argument contributes true, so plain flags
// marshal as booleans (or counts of booleans when repeated).
func (r *Result) ToMap() map[string]any {
	options := make(map[string]any, len(r.Options))
	for key, match := range r.Options {
		options[key] = match.toNative()
	}

	parameters := make([]string, len(r.Parameters))
	for i, occ := range r.Parameters {
		parameters[i] = occ.Value
	}

	return map[string]any{
		"options":    options,
		"parameters": parameters,
	}
}

func (m *Match) toNative() any {
	values := make([]any, len(m.Occurrences))

	for i, occ := range m.Occurrences {
		if occ.HasValue {
			values[i] = occ.Value
		} else {
			values[i] = true
		}
	}

	if len(values) == 1 {
		return values[0]
	}

	return values
}
