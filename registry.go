package getopt

import (
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/sahilm/fuzzy"
)

// registry indexes every declared short and long form of one parse call.
// It is built once from the normalized option list and never mutated
// afterward; both mappings are disjoint lookup tables from bare form (no
// dashes) to the owning Option.
type registry struct {
	short map[string]*Option
	long  map[string]*Option
}

// makeRegistry builds the form indexes. An option declaring no form at
// all, or a form declared by more than one option, fails with
// [ErrConfiguration] before any token is scanned.
func makeRegistry(options []Option) (registry, error) {
	reg := registry{
		short: make(map[string]*Option),
		long:  make(map[string]*Option),
	}

	for i := range options {
		opt := &options[i]

		if len(opt.Short) == 0 && len(opt.Long) == 0 {
			return reg, ErrConfiguration.
				Wrap(errors.New("option declares no short or long form")).
				With(slog.Any("name", opt.Name))
		}

		for _, form := range opt.Short {
			if prev, ok := reg.short[form]; ok && prev != opt {
				return reg, duplicateForm("-", form)
			}

			reg.short[form] = opt
		}

		for _, form := range opt.Long {
			if prev, ok := reg.long[form]; ok && prev != opt {
				return reg, duplicateForm("--", form)
			}

			reg.long[form] = opt
		}
	}

	return reg, nil
}

func duplicateForm(dash, form string) error {
	return ErrConfiguration.
		Wrap(errors.New("duplicate option form")).
		With(slog.String("form", dash+form))
}

// maxSuggestions bounds the "similar" attribute on unrecognized-option
// errors.
const maxSuggestions = 3

// closest returns up to maxSuggestions registered forms ranked by fuzzy
// similarity to the unrecognized name, for error enrichment.
func closest(name string, index map[string]*Option) []string {
	matches := fuzzy.Find(name, slices.Sorted(maps.Keys(index)))
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	forms := make([]string, len(matches))
	for i, match := range matches {
		forms[i] = match.Str
	}

	return forms
}
