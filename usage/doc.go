// Package usage renders help text for a [getopt.Settings] option list.
//
// It is a collaborator of the parsing core, not part of it: the engine
// carries the Usage, Wrap, and First hints untouched, and this package
// turns them into a word-wrapped option summary. [Option] returns an
// ordinary help option whose callback writes that summary, so front ends
// wire it in like any other option:
//
//	set := getopt.Settings{
//		Usage: "frob [option ...] file ...",
//		Options: []getopt.Option{
//			{Short: []string{"v"}, Long: []string{"verbose"},
//				Help: "emit progress detail"},
//		},
//	}
//	set.Options = append(set.Options, usage.Option(os.Stdout))
package usage
