package usage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ardnew/getopt"
)

func testSettings() getopt.Settings {
	return getopt.Settings{
		Usage: "frob [option ...] file ...",
		Options: []getopt.Option{
			{
				Short: []string{"v"},
				Long:  []string{"verbose"},
				Help:  "emit progress detail",
			},
			{
				Short:    []string{"o"},
				Long:     []string{"output"},
				Argument: getopt.ArgumentRequired,
				Help:     "write the report to this file",
			},
		},
	}
}

func TestText(t *testing.T) {
	set := testSettings()
	out := Text(set)

	for _, want := range []string{
		"usage: frob [option ...] file ...",
		"-v, --verbose",
		"-o, --output <arg>",
		"emit progress detail",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFirstPromotesHelp(t *testing.T) {
	set := testSettings()
	set.First = true
	set.Options = append(set.Options, Option(new(bytes.Buffer)))

	out := Text(set)

	help := strings.Index(out, "--help")
	verbose := strings.Index(out, "--verbose")

	if help < 0 || verbose < 0 {
		t.Fatalf("summary missing options:\n%s", out)
	}

	if help > verbose {
		t.Errorf("First did not promote the help option:\n%s", out)
	}
}

func TestOptionRendersOnOccurrence(t *testing.T) {
	buf := new(bytes.Buffer)

	set := testSettings()
	set.Options = append(set.Options, Option(buf))

	if _, err := getopt.Parse([]string{"--help"}, set); err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if !strings.Contains(buf.String(), "--verbose") {
		t.Errorf("help callback did not render the summary:\n%s", buf.String())
	}
}

func TestOptionCustomForms(t *testing.T) {
	opt := Option(new(bytes.Buffer), "?", "ayuda")

	if len(opt.Short) != 1 || opt.Short[0] != "?" {
		t.Errorf("short forms = %v, want [?]", opt.Short)
	}

	if len(opt.Long) != 1 || opt.Long[0] != "ayuda" {
		t.Errorf("long forms = %v, want [ayuda]", opt.Long)
	}
}
