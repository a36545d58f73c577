package usage

import (
	"io"
	"slices"
	"strings"

	"github.com/ardnew/mung"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/getopt"
)

// DefaultWrap is the column width used when Settings.Wrap is unset.
const DefaultWrap = 80

// helpName is the index alias given to the option returned by [Option].
// Settings.First promotes options carrying it to the top of the summary.
const helpName = "help"

// maxLabelWidth caps the forms column so one long alias list cannot push
// every description to the far right.
const maxLabelWidth = 28

// Option returns a help option that renders the usage summary to w when
// it occurs. With no forms it answers to -h and --help; otherwise each
// given form is registered as short or long by its length.
func Option(w io.Writer, forms ...string) getopt.Option {
	short, long := []string{"h"}, []string{helpName}

	if len(forms) > 0 {
		short, long = nil, nil

		for _, form := range forms {
			form = strings.TrimLeft(form, "-")

			if len(form) > 1 {
				long = append(long, form)
			} else if form != "" {
				short = append(short, form)
			}
		}
	}

	return getopt.Option{
		Name:  []string{helpName},
		Short: short,
		Long:  long,
		Help:  "display this help summary",
		Callback: func(
			_ *getopt.OptionOccurrence,
			_ []string,
			set *getopt.Settings,
		) error {
			return Render(w, *set)
		},
	}
}

// Render writes the usage summary for set to w.
func Render(w io.Writer, set getopt.Settings) error {
	_, err := io.WriteString(w, Text(set))

	return err
}

// Text renders the usage summary for set: the Usage banner, then one row
// per option with its forms and wrapped help text. Wrap sets the total
// column width (DefaultWrap when unset), and First lists the help option
// before the rest instead of in declaration order.
func Text(set getopt.Settings) string {
	wrap := set.Wrap
	if wrap <= 0 {
		wrap = DefaultWrap
	}

	options := slices.Clone(set.Options)
	if set.First {
		slices.SortStableFunc(options, func(a, b getopt.Option) int {
			return rank(a) - rank(b)
		})
	}

	labels := make([]string, len(options))
	width := 0

	for i := range options {
		labels[i] = label(options[i])

		if n := lipgloss.Width(labels[i]); n > width && n <= maxLabelWidth {
			width = n
		}
	}

	var (
		buf   strings.Builder
		left  = lipgloss.NewStyle().Bold(true).PaddingLeft(2).Width(width + 4)
		right = lipgloss.NewStyle().Width(wrap - width - 4)
	)

	if set.Usage != "" {
		buf.WriteString("usage: " + set.Usage + "\n\n")
	}

	for i := range options {
		buf.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			left.Render(labels[i]),
			right.Render(options[i].Help),
		))
		buf.WriteByte('\n')
	}

	return buf.String()
}

// rank orders help-marked options first.
func rank(opt getopt.Option) int {
	if slices.Contains(opt.Name, helpName) {
		return 0
	}

	return 1
}

// label joins every declared form of opt into one column entry, short
// forms first, with an argument hint when the option takes a value.
func label(opt getopt.Option) string {
	items := make([]string, 0, len(opt.Short)+len(opt.Long))

	for _, form := range opt.Short {
		items = append(items, "-"+strings.TrimLeft(form, "-"))
	}

	for _, form := range opt.Long {
		items = append(items, "--"+strings.TrimLeft(form, "-"))
	}

	text := mung.Make(
		mung.WithSubjectItems(items...),
		mung.WithDelim(", "),
	).String()

	switch opt.Argument {
	case getopt.ArgumentRequired:
		text += " <arg>"
	case getopt.ArgumentOptional:
		text += " [arg]"
	}

	return text
}
