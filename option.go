package getopt

//go:generate go tool stringer --linecomment --type ArgumentMode,Kind --output option_string.go

import (
	"slices"
	"strings"

	"github.com/ardnew/getopt/log"
)

// ArgumentMode declares whether an option accepts no value, an optional
// value, or a required value.
type ArgumentMode int

const (
	ArgumentNone     ArgumentMode = iota // none
	ArgumentOptional                     // optional
	ArgumentRequired                     // required
)

// Callback is invoked synchronously for each occurrence of its option, in
// emission order, before the occurrence reaches the aggregate result.
// The tokens slice is the original input, and set is the normalized
// settings for this parse call. A non-nil error aborts the parse exactly
// like a scanner error.
type Callback func(occ *OptionOccurrence, tokens []string, set *Settings) error

// Option defines one recognizable command-line option.
//
// Name holds arbitrary indexing aliases, Short holds single- or
// multi-character short forms (matched inside bundles, written "-f"), and
// Long holds long forms (written "--form"). Every Option must declare at
// least one short or long form, and no form may be shared between two
// Options of the same parse call.
type Option struct {
	Name     []string
	Short    []string
	Long     []string
	Argument ArgumentMode
	Help     string
	Callback Callback
}

// normalize fills structural defaults in place: nil form slices become
// empty, declared forms lose any leading dashes, and blank forms are
// dropped. The scanner never re-inspects field shape after this.
func (o *Option) normalize() {
	o.Name = normalizeForms(o.Name)
	o.Short = normalizeForms(o.Short)
	o.Long = normalizeForms(o.Long)
}

func normalizeForms(forms []string) []string {
	out := make([]string, 0, len(forms))

	for _, form := range forms {
		form = strings.TrimLeft(form, "-")
		if form != "" {
			out = append(out, form)
		}
	}

	return out
}

// aliases returns every key under which a match of this option is indexed
// in [Result.Options]: names first, then short forms, then long forms.
func (o *Option) aliases() []string {
	keys := make([]string, 0, len(o.Name)+len(o.Short)+len(o.Long))
	keys = append(keys, o.Name...)
	keys = append(keys, o.Short...)
	keys = append(keys, o.Long...)

	return keys
}

// Settings configures a single parse call.
//
// Only Options, Callback, and Error influence parsing. Usage, Wrap, and
// First are rendering hints consumed by the usage collaborator package and
// carried here untouched. Logger, when set, receives trace-level scan
// diagnostics; its zero value discards everything.
type Settings struct {
	// Options lists the recognizable option definitions.
	Options []Option

	// Callback, when set, is invoked exactly once with the final Result
	// after the last occurrence callback has fired.
	Callback func(*Result) error

	// Error, when set, observes any parse error before it is returned.
	// It cannot alter or suppress propagation.
	Error func(error)

	// Logger receives scan diagnostics at trace and debug levels.
	Logger log.Logger

	// Usage, Wrap, and First belong to the usage renderer: a banner line,
	// a wrap column, and whether the help option is listed first.
	Usage string
	Wrap  int
	First bool
}

// normalized returns a copy of set with every Option normalized. The
// Options slice is cloned so the caller's definitions are never mutated
// and no state is shared between concurrent parse calls.
func (set Settings) normalized() Settings {
	set.Options = slices.Clone(set.Options)

	for i := range set.Options {
		set.Options[i].normalize()
	}

	return set
}
