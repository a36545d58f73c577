package getopt

import (
	"errors"
	"iter"
	"log/slog"
	"strings"
)

// endOfOptions is the literal token terminating option recognition.
const endOfOptions = "--"

// scanner walks the token slice left to right, resolving option forms
// against the registry and yielding one Event per occurrence.
//
// The only state carried between tokens is the occurrence still awaiting
// its argument (pending), the end-of-options flag, and the positional
// counter.
type scanner struct {
	set      *Settings
	reg      registry
	tokens   []string
	pending  *OptionOccurrence
	past     bool // endOfOptions seen; everything after is positional
	position int
}

// Events exposes the scanner and callback dispatcher as a lazy event
// sequence, without result aggregation.
//
// The sequence is finite, single-pass, and single-use: ranging over it a
// second time yields [ErrExhausted]. A failing parse surfaces its error
// when the failing element is pulled, as the second value of the pair.
// Callers that want early termination simply stop pulling; the sequence
// holds no external resources.
func Events(tokens []string, set Settings) iter.Seq2[Event, error] {
	used := false

	return func(yield func(Event, error) bool) {
		if used {
			yield(Event{}, ErrExhausted)

			return
		}

		used = true

		norm := set.normalized()

		reg, err := makeRegistry(norm.Options)
		if err != nil {
			if norm.Error != nil {
				norm.Error(err)
			}

			yield(Event{}, err)

			return
		}

		s := scanner{set: &norm, reg: reg, tokens: tokens}
		s.run(yield)
	}
}

// run drives the scan to completion or first error.
func (s *scanner) run(yield func(Event, error) bool) {
	for index, token := range s.tokens {
		if !s.step(index, token, yield) {
			return
		}
	}

	if s.pending == nil {
		return
	}

	// End of input with an unsatisfied argument.
	occ := s.pending
	s.pending = nil

	if occ.Option.Argument == ArgumentRequired {
		s.fail(yield, ErrMissingArgument.
			Wrap(errors.New("end of input")).
			With(slog.Any("option", occ.Option.aliases())))

		return
	}

	s.emit(occ, yield)
}

// step processes one input token. It returns false when the traversal
// must stop, either because the consumer quit pulling or because the scan
// failed.
func (s *scanner) step(index int, token string, yield func(Event, error) bool) bool {
	if s.pending != nil {
		occ := s.pending
		s.pending = nil

		if occ.Option.Argument == ArgumentOptional && optionLike(token) {
			// The token is itself an option: release the pending occurrence
			// without a value and rescan the token normally.
			if !s.emit(occ, yield) {
				return false
			}
		} else {
			occ.Value, occ.HasValue = token, true

			return s.emit(occ, yield)
		}
	}

	switch {
	case s.past:
		// Positional regardless of shape.

	case token == endOfOptions:
		s.past = true

		return true

	case strings.HasPrefix(token, "--") && len(token) > 2:
		return s.long(index, token, yield)

	case strings.HasPrefix(token, "-") && len(token) > 1:
		return s.bundle(index, token, yield)
	}

	occ := &PositionalOccurrence{
		Position:   s.position,
		Value:      token,
		TokenIndex: index,
	}
	s.position++

	s.set.Logger.Trace("positional",
		slog.Int("position", occ.Position),
		slog.String("value", occ.Value),
	)

	return yield(Event{Kind: KindPositional, Pos: occ}, nil)
}

// long handles a "--name[=value]" token. Long options never carry over to
// the next token: a required argument must be inline.
func (s *scanner) long(index int, token string, yield func(Event, error) bool) bool {
	form, value := token[2:], ""
	hasValue := false

	if eq := strings.IndexByte(form, '='); eq >= 0 {
		form, value, hasValue = form[:eq], form[eq+1:], true
	}

	opt, ok := s.reg.long[form]
	if !ok {
		return s.fail(yield, s.unknown("--", form, s.reg.long))
	}

	switch {
	case hasValue && opt.Argument == ArgumentNone:
		return s.fail(yield, ErrArgumentNotAllowed.With(
			slog.String("option", "--"+form),
			slog.String("value", value),
		))

	case !hasValue && opt.Argument == ArgumentRequired:
		return s.fail(yield, ErrMissingArgument.With(
			slog.String("option", "--"+form),
		))
	}

	return s.emit(&OptionOccurrence{
		Option:     opt,
		Value:      value,
		HasValue:   hasValue,
		TokenIndex: index,
		SubIndex:   -1,
	}, yield)
}

// bundle handles a "-abc" token: one or more concatenated short forms.
//
// At each offset the longest registered form wins, which disambiguates
// single- and multi-character forms sharing a prefix without ever
// backtracking. An argument-taking form swallows the remainder of the
// bundle as its inline value; when it ends the bundle exactly, the next
// token resolves it via pending.
func (s *scanner) bundle(index int, token string, yield func(Event, error) bool) bool {
	body := token[1:]

	for i := 0; i < len(body); {
		var opt *Option

		j := len(body)
		for ; j > i; j-- {
			if o, ok := s.reg.short[body[i:j]]; ok {
				opt = o

				break
			}
		}

		if opt == nil {
			// Report the shortest unmatched candidate at this offset.
			return s.fail(yield, s.unknown("-", body[i:i+1], s.reg.short))
		}

		occ := &OptionOccurrence{
			Option:     opt,
			TokenIndex: index,
			SubIndex:   i,
			SubLength:  j - i,
		}

		switch {
		case opt.Argument == ArgumentNone:
			if !s.emit(occ, yield) {
				return false
			}

			i = j

		case j < len(body):
			occ.Value, occ.HasValue = body[j:], true

			if !s.emit(occ, yield) {
				return false
			}

			i = len(body)

		default:
			s.pending = occ
			i = len(body)
		}
	}

	return true
}

// emit dispatches the occurrence callback, then yields the event. A
// callback error aborts the scan like any parse error, but propagates
// unmodified and is not routed through the error hook.
func (s *scanner) emit(occ *OptionOccurrence, yield func(Event, error) bool) bool {
	if cb := occ.Option.Callback; cb != nil {
		if err := cb(occ, s.tokens, s.set); err != nil {
			yield(Event{}, err)

			return false
		}
	}

	s.set.Logger.Trace("option",
		slog.Any("aliases", occ.Option.aliases()),
		slog.String("value", occ.Value),
		slog.Bool("has_value", occ.HasValue),
		slog.Int("token", occ.TokenIndex),
	)

	return yield(Event{Kind: KindOption, Opt: occ}, nil)
}

// fail routes err through the caller's error hook, yields it, and stops
// the scan. The hook observes the error only; propagation is unaffected.
func (s *scanner) fail(yield func(Event, error) bool, err error) bool {
	s.set.Logger.Debug("scan aborted", slog.Any("error", err))

	if s.set.Error != nil {
		s.set.Error(err)
	}

	yield(Event{}, err)

	return false
}

// unknown builds an ErrUnknownOption enriched with near-miss forms.
func (s *scanner) unknown(dash, form string, index map[string]*Option) error {
	err := ErrUnknownOption.Wrap(errors.New(dash + form))

	if similar := closest(form, index); len(similar) > 0 {
		err = err.With(slog.Any("similar", similar))
	}

	return err
}

// optionLike reports whether a token would be scanned as an option: a
// dash prefix with at least one more character. The end-of-options marker
// itself qualifies.
func optionLike(token string) bool {
	return len(token) > 1 && token[0] == '-'
}
