// Package profile provides optional runtime profiling for the getopt
// command-line tool.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), every operation is a no-op
// with zero runtime overhead, so callers never need their own build
// constraints:
//
//	var cfg profile.Config = func() (string, string, bool) {
//		return "", "", false
//	}
//	cfg = profile.WithMode("cpu")(cfg)
//	defer cfg.Start().Stop()
//
// Use [Modes] to list the supported profiling modes; it returns nil when
// profiling is compiled out. Profile files are written to the configured
// directory with names matching the mode (cpu.pprof, mem.pprof, ...) and
// are analyzed with "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
