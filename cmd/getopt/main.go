// Command getopt parses argument tokens against an option-spec document
// and prints the structured result as JSON.
//
// It is a thin front end over the library, and its own command line is
// parsed with the library:
//
//	getopt -f options.yaml -- -v --output=report.txt input.txt
//
// The document format is described by package optfile. Everything after
// the first "--" is handed to the loaded settings as the target token
// slice.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/getopt"
	"github.com/ardnew/getopt/log"
	"github.com/ardnew/getopt/optfile"
	"github.com/ardnew/getopt/profile"
	"github.com/ardnew/getopt/usage"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}

		log.Make(os.Stderr, log.WithFormat(log.FormatPretty)).
			Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

var errUsage = errors.New("usage rendered")

// options holds the tool's own configuration, filled by option callbacks
// as occurrences are emitted.
type options struct {
	file       string
	level      string
	format     string
	mode       string
	dir        string
	showedHelp bool
}

func run(stdout, stderr io.Writer, args []string) error {
	var opts options

	set := getopt.Settings{
		Usage: "getopt [option ...] [--] token ...",
		First: true,
		Options: []getopt.Option{
			{
				Name: []string{"file"}, Short: []string{"f"},
				Long:     []string{"file"},
				Argument: getopt.ArgumentRequired,
				Help:     "option-spec document (YAML or JSON)",
				Callback: stash(&opts.file),
			},
			{
				Name: []string{"log-level"}, Long: []string{"log-level"},
				Argument: getopt.ArgumentRequired,
				Help:     "minimum log level (trace, debug, info, warn, error)",
				Callback: stash(&opts.level),
			},
			{
				Name: []string{"log-format"}, Long: []string{"log-format"},
				Argument: getopt.ArgumentRequired,
				Help:     "log output format (json, text, pretty)",
				Callback: stash(&opts.format),
			},
			{
				Name: []string{"profile"}, Long: []string{"profile"},
				Argument: getopt.ArgumentRequired,
				Help:     "enable pprof profiling in the given mode",
				Callback: stash(&opts.mode),
			},
			{
				Name: []string{"profile-dir"}, Long: []string{"profile-dir"},
				Argument: getopt.ArgumentRequired,
				Help:     "profile output directory",
				Callback: stash(&opts.dir),
			},
		},
	}

	help := usage.Option(stdout)
	help.Callback = chain(help.Callback, func(
		_ *getopt.OptionOccurrence, _ []string, _ *getopt.Settings,
	) error {
		opts.showedHelp = true

		return nil
	})
	set.Options = append(set.Options, help)

	own, err := getopt.Parse(args, set)
	if err != nil {
		return err
	}

	if opts.showedHelp {
		return nil
	}

	logger := log.Make(stderr,
		log.WithLevel(log.ParseLevel(opts.level)),
		log.WithFormat(logFormat(opts.format)),
	)

	if opts.file == "" {
		if err := usage.Render(stderr, set); err != nil {
			return err
		}

		return errUsage
	}

	var cfg profile.Config = func() (string, string, bool) {
		return "", "", false
	}

	cfg = profile.WithMode(opts.mode)(cfg)
	cfg = profile.WithPath(opts.dir)(cfg)
	cfg = profile.WithQuiet(true)(cfg)
	defer cfg.Start().Stop()

	target, err := optfile.Load(opts.file)
	if err != nil {
		return err
	}

	target.Logger = logger
	target.Error = func(err error) {
		logger.Debug("parse error", slog.Any("error", err))
	}

	tokens := make([]string, len(own.Parameters))
	for i, occ := range own.Parameters {
		tokens[i] = occ.Value
	}

	result, err := getopt.Parse(tokens, target)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, string(out))

	return err
}

// stash returns a callback storing the occurrence value into dst. A
// repeated option keeps its last value.
func stash(dst *string) getopt.Callback {
	return func(occ *getopt.OptionOccurrence, _ []string, _ *getopt.Settings) error {
		*dst = occ.Value

		return nil
	}
}

// chain runs callbacks in order, stopping at the first error.
func chain(cbs ...getopt.Callback) getopt.Callback {
	return func(occ *getopt.OptionOccurrence, tokens []string, set *getopt.Settings) error {
		for _, cb := range cbs {
			if err := cb(occ, tokens, set); err != nil {
				return err
			}
		}

		return nil
	}
}

func logFormat(name string) log.Format {
	if name == "" {
		return log.FormatPretty
	}

	return log.ParseFormat(name)
}
