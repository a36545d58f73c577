package getopt

// Kind discriminates the payload of an [Event].
type Kind int

const (
	KindOption     Kind = iota // option
	KindPositional             // positional
)

// Event is one element of the parse stream. Exactly one of Opt or Pos is
// set, according to Kind. Events are created by the scanner and consumed
// immediately; they are not retained beyond the parse call that produced
// them, except inside the [Result] handed to the caller.
type Event struct {
	Kind Kind
	Opt  *OptionOccurrence
	Pos  *PositionalOccurrence
}

// OptionOccurrence records one concrete appearance of an option in the
// input, as opposed to its static [Option] definition.
type OptionOccurrence struct {
	// Option is the definition the occurrence matched.
	Option *Option

	// Value is the argument given for this occurrence, and HasValue
	// distinguishes an empty argument from no argument at all.
	Value    string
	HasValue bool

	// TokenIndex is the 0-based index into the original token slice of the
	// token that produced the occurrence. For a bundled short option this
	// is the token containing the bundle, even when the value came from the
	// following token.
	TokenIndex int

	// SubIndex and SubLength locate the matched form within a bundled
	// short-option token: SubIndex is the character offset after the
	// leading dash and SubLength is the width of the match. SubIndex is -1
	// for long options.
	SubIndex  int
	SubLength int
}

// PositionalOccurrence records one positional parameter.
type PositionalOccurrence struct {
	// Position counts positionals only, 0-indexed by appearance order.
	Position int

	Value string

	// TokenIndex is the 0-based index of the token in the original input.
	TokenIndex int
}
