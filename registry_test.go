package getopt

import (
	"errors"
	"testing"
)

func TestRegistryDuplicateForms(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
	}{
		{
			name: "duplicate short form",
			options: []Option{
				{Short: []string{"v"}},
				{Short: []string{"v"}, Long: []string{"verbose"}},
			},
		},
		{
			name: "duplicate long form",
			options: []Option{
				{Long: []string{"output"}},
				{Short: []string{"o"}, Long: []string{"output"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(nil, Settings{Options: tt.options})
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestRegistryRepeatedFormOnOneOption(t *testing.T) {
	// The same option may list a form twice; only cross-option sharing is
	// a configuration error.
	options := []Option{{Short: []string{"v", "v"}}}

	if _, err := Parse([]string{"-v"}, Settings{Options: options}); err != nil {
		t.Errorf("parse error: %v", err)
	}
}

func TestRegistryMissingForms(t *testing.T) {
	options := []Option{{Name: []string{"ghost"}}}

	_, err := Parse(nil, Settings{Options: options})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}

func TestRegistryErrorPrecedesScan(t *testing.T) {
	// Configuration failures surface even when the token slice would
	// never exercise the broken option.
	options := []Option{
		{Short: []string{"a"}},
		{Short: []string{"a"}},
	}

	_, err := Parse([]string{"plain"}, Settings{Options: options})
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}

func TestNormalizeStripsDashes(t *testing.T) {
	options := []Option{
		{Short: []string{"-v"}, Long: []string{"--verbose"}},
	}

	result, err := Parse([]string{"-v", "--verbose"}, Settings{Options: options})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if match := result.Options["verbose"]; match == nil || match.Count() != 2 {
		t.Errorf("dash-decorated forms were not normalized: %+v", result.Options)
	}
}
