package getopt

// Match collects every occurrence of one Option within a single parse.
// The same *Match is shared by every alias key the Option owns, so a
// repeated option merges identically no matter which form or name it is
// looked up by.
type Match struct {
	Option      *Option
	Occurrences []*OptionOccurrence
}

// Count returns the number of times the option occurred.
func (m *Match) Count() int { return len(m.Occurrences) }

// Values returns the argument value of every occurrence in emission
// order. Occurrences without an argument contribute an empty string.
func (m *Match) Values() []string {
	values := make([]string, len(m.Occurrences))
	for i, occ := range m.Occurrences {
		values[i] = occ.Value
	}

	return values
}

// Last returns the value of the final occurrence.
func (m *Match) Last() (string, bool) {
	if len(m.Occurrences) == 0 {
		return "", false
	}

	occ := m.Occurrences[len(m.Occurrences)-1]

	return occ.Value, occ.HasValue
}

// Result is the aggregate outcome of one parse call. It is owned
// exclusively by the caller; no shared mutable state survives the call.
type Result struct {
	// Sequence retains every occurrence, option and positional
	// interleaved, in emission order. It is the canonical record of what
	// happened in what order.
	Sequence []Event

	// Options maps every alias key of every matched Option (names, short
	// forms, and long forms) to its Match.
	Options map[string]*Match

	// Parameters lists the positional occurrences in order.
	Parameters []*PositionalOccurrence

	matches map[*Option]*Match
}

func makeResult() *Result {
	return &Result{
		Options: make(map[string]*Match),
		matches: make(map[*Option]*Match),
	}
}

// add folds one event into the result.
func (r *Result) add(ev Event) {
	r.Sequence = append(r.Sequence, ev)

	switch ev.Kind {
	case KindOption:
		occ := ev.Opt

		match, ok := r.matches[occ.Option]
		if !ok {
			match = &Match{Option: occ.Option}
			r.matches[occ.Option] = match

			for _, key := range occ.Option.aliases() {
				r.Options[key] = match
			}
		}

		match.Occurrences = append(match.Occurrences, occ)

	case KindPositional:
		r.Parameters = append(r.Parameters, ev.Pos)
	}
}

// Seen reports whether the option indexed by key occurred at least once.
func (r *Result) Seen(key string) bool {
	_, ok := r.Options[key]

	return ok
}

// Value returns the argument value of the last occurrence of the option
// indexed by key. The second result is false when the option never
// occurred or its last occurrence carried no argument.
func (r *Result) Value(key string) (string, bool) {
	match, ok := r.Options[key]
	if !ok {
		return "", false
	}

	return match.Last()
}
