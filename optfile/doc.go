// Package optfile loads [getopt.Settings] from a YAML or JSON document.
//
// It is the configuration-file collaborator of the parsing core: the core
// never reads files, and this package never parses tokens. Scalar-or-list
// fields and the boolean-or-name argument tag are normalized here, once,
// at the settings boundary, so the engine only ever sees canonical shapes.
//
// A minimal document:
//
//	usage: "frob [option ...] file ..."
//	wrap: 72
//	options:
//	  - short: v
//	    long: verbose
//	    help: emit progress detail
//	  - short: [o, out]
//	    long: output
//	    argument: required
//	    help: write the report to this file
//
// JSON documents decode with the same schema, since the decoder accepts
// JSON as a subset of YAML.
package optfile
