package getopt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePositionalOnly(t *testing.T) {
	tokens := []string{"alpha", "beta", "gamma"}

	result, err := Parse(tokens, Settings{Options: testOptions()})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if len(result.Options) != 0 {
		t.Errorf("expected no options, got %d", len(result.Options))
	}

	if len(result.Parameters) != len(tokens) {
		t.Fatalf("expected %d parameters, got %d",
			len(tokens), len(result.Parameters))
	}

	for i, occ := range result.Parameters {
		if occ.Value != tokens[i] || occ.Position != i {
			t.Errorf("parameter %d = (%q, %d), want (%q, %d)",
				i, occ.Value, occ.Position, tokens[i], i)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	tokens := []string{"-vv", "--output=a", "-o", "b", "x", "--", "-y"}
	set := Settings{Options: testOptions()}

	first, err := Parse(tokens, set)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	second, err := Parse(tokens, set)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if diff := cmp.Diff(first.ToMap(), second.ToMap()); diff != "" {
		t.Errorf("results differ between identical calls (-first +second):\n%s", diff)
	}

	if len(first.Sequence) != len(second.Sequence) {
		t.Errorf("sequence lengths differ: %d vs %d",
			len(first.Sequence), len(second.Sequence))
	}
}

func TestParseMergesRepeatedOccurrences(t *testing.T) {
	result, err := Parse([]string{"-v", "-v"}, Settings{Options: testOptions()})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	match := result.Options["v"]
	if match == nil {
		t.Fatalf("no match recorded for v")
	}

	if match.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", match.Count())
	}

	// Repeats marshal as an ordered list, not a scalar.
	values, ok := result.ToMap()["options"].(map[string]any)["v"].([]any)
	if !ok || len(values) != 2 {
		t.Errorf("marshaled value = %#v, want two-element list",
			result.ToMap()["options"].(map[string]any)["v"])
	}
}

func TestParseMirrorsMatchAcrossAliases(t *testing.T) {
	result, err := Parse([]string{"-o", "a", "--output=b"},
		Settings{Options: testOptions()})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// Both occurrences merged into one Match shared by every alias key.
	for _, key := range []string{"o", "output"} {
		match := result.Options[key]
		if match == nil {
			t.Fatalf("no match recorded under %q", key)
		}

		if diff := cmp.Diff([]string{"a", "b"}, match.Values()); diff != "" {
			t.Errorf("values under %q (-want +got):\n%s", key, diff)
		}
	}

	if result.Options["o"] != result.Options["output"] {
		t.Errorf("alias keys do not share one Match instance")
	}
}

func TestParseSequenceInterleavesKinds(t *testing.T) {
	result, err := Parse([]string{"a", "-v", "b"},
		Settings{Options: testOptions()})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := []Kind{KindPositional, KindOption, KindPositional}
	for i, ev := range result.Sequence {
		if ev.Kind != want[i] {
			t.Errorf("event %d kind = %v, want %v", i, ev.Kind, want[i])
		}
	}
}

func TestParseCallbackOrdering(t *testing.T) {
	var trace []string

	options := []Option{
		{
			Name: []string{"verbose"}, Short: []string{"v"},
			Callback: func(occ *OptionOccurrence, _ []string, _ *Settings) error {
				trace = append(trace, "occurrence")

				return nil
			},
		},
	}

	set := Settings{
		Options: options,
		Callback: func(r *Result) error {
			trace = append(trace, "aggregate")

			return nil
		},
	}

	if _, err := Parse([]string{"-vv"}, set); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	want := []string{"occurrence", "occurrence", "aggregate"}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("callback order (-want +got):\n%s", diff)
	}
}

func TestParseCallbackErrorAborts(t *testing.T) {
	boom := errors.New("boom")

	options := []Option{
		{
			Short: []string{"v"},
			Callback: func(*OptionOccurrence, []string, *Settings) error {
				return boom
			},
		},
	}

	result, err := Parse([]string{"-v", "later"}, Settings{Options: options})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want the callback error unmodified", err)
	}

	if result != nil {
		t.Errorf("partial result returned alongside callback error")
	}
}

func TestParseErrorHookObservesButCannotSuppress(t *testing.T) {
	var observed error

	set := Settings{
		Options: testOptions(),
		Error:   func(err error) { observed = err },
	}

	_, err := Parse([]string{"--bogus"}, set)
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("error = %v, want ErrUnknownOption", err)
	}

	if !errors.Is(observed, ErrUnknownOption) {
		t.Errorf("hook observed %v, want the parse error", observed)
	}
}

func TestEventsLazyEarlyStop(t *testing.T) {
	calls := 0

	options := []Option{
		{
			Short: []string{"v"},
			Callback: func(*OptionOccurrence, []string, *Settings) error {
				calls++

				return nil
			},
		},
	}

	for ev, err := range Events([]string{"-v", "-v", "-v"}, Settings{Options: options}) {
		if err != nil {
			t.Fatalf("event error: %v", err)
		}

		if ev.Kind == KindOption {
			break // stop pulling after the first occurrence
		}
	}

	if calls != 1 {
		t.Errorf("callbacks fired %d times after early stop, want 1", calls)
	}
}

func TestEventsSingleUse(t *testing.T) {
	seq := Events([]string{"-v"}, Settings{Options: testOptions()})

	for _, err := range seq {
		if err != nil {
			t.Fatalf("first traversal error: %v", err)
		}
	}

	for _, err := range seq {
		if !errors.Is(err, ErrExhausted) {
			t.Fatalf("second traversal error = %v, want ErrExhausted", err)
		}

		return
	}

	t.Fatal("second traversal yielded nothing")
}

func TestEventsErrorSurfacesWhenPulled(t *testing.T) {
	var events int

	for ev, err := range Events([]string{"-v", "--bogus", "-q"},
		Settings{Options: testOptions()}) {
		if err != nil {
			if !errors.Is(err, ErrUnknownOption) {
				t.Fatalf("error = %v, want ErrUnknownOption", err)
			}

			if events != 1 {
				t.Errorf("events before failure = %d, want 1", events)
			}

			return
		}

		_ = ev
		events++
	}

	t.Fatal("failure never surfaced")
}

func TestParseDoesNotMutateCallerSettings(t *testing.T) {
	options := []Option{{Short: []string{"-v"}}}
	set := Settings{Options: options}

	if _, err := Parse([]string{"-v"}, set); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// Dash-stripping happens on a clone, never on the caller's slice.
	if options[0].Short[0] != "-v" {
		t.Errorf("caller's option was mutated: %+v", options[0])
	}
}
