// Package getopt parses a slice of command-line argument tokens against a
// declarative list of option definitions, producing a structured, queryable
// result. It is a library primitive intended to be embedded in CLI front
// ends; it never touches os.Args, standard streams, or process exit codes.
//
// # Token grammar
//
// The scanner recognizes four token shapes in a single left-to-right pass:
//
//   - "--name" or "--name=value": a long option, matched as a whole name
//     before the optional inline value.
//   - "-abc": a bundle of one or more concatenated short forms. Short forms
//     may be longer than one character; ambiguity inside a bundle is
//     resolved by greedy longest-match at each offset. An argument-taking
//     form consumes the remainder of its bundle as an inline value, or the
//     following token when it ends the bundle.
//   - "--" exactly: the end-of-options marker. Every later token is
//     positional, even ones that look like options.
//   - anything else: a positional parameter.
//
// Quoting and escaping are the caller's problem; the input is already a
// token slice.
//
// # Usage
//
//	result, err := getopt.Parse(os.Args[1:], getopt.Settings{
//		Options: []getopt.Option{
//			{Short: []string{"v"}, Long: []string{"verbose"}},
//			{Short: []string{"o"}, Long: []string{"output"},
//				Argument: getopt.ArgumentRequired},
//		},
//	})
//
// [Parse] runs the full pipeline and returns a [Result]. [Events] exposes
// the same scan as a lazy, single-use event sequence for callers that want
// to observe occurrences incrementally or stop early.
//
// Each parse call builds its own lookup state from its own [Settings]; no
// mutable state is shared between calls, so distinct parses may run
// concurrently.
package getopt
