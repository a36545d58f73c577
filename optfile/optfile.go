package optfile

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/getopt"
)

// Document is the on-disk shape of a settings file.
type Document struct {
	Usage   string      `yaml:"usage"`
	Wrap    int         `yaml:"wrap"`
	First   bool        `yaml:"first"`
	Options []OptionDoc `yaml:"options"`
}

// OptionDoc is the on-disk shape of one option definition.
type OptionDoc struct {
	Name     List   `yaml:"name"`
	Short    List   `yaml:"short"`
	Long     List   `yaml:"long"`
	Argument Mode   `yaml:"argument"`
	Help     string `yaml:"help"`
}

// List accepts either a single scalar or a sequence of strings.
type List []string

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (l *List) UnmarshalYAML(data []byte) error {
	var one string
	if err := yaml.Unmarshal(data, &one); err == nil {
		*l = List{one}

		return nil
	}

	var many []string
	if err := yaml.Unmarshal(data, &many); err != nil {
		return err
	}

	*l = List(many)

	return nil
}

// Mode accepts either a boolean (true meaning a required argument) or one
// of the names "none", "optional", and "required".
type Mode getopt.ArgumentMode

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (m *Mode) UnmarshalYAML(data []byte) error {
	var flag bool
	if err := yaml.Unmarshal(data, &flag); err == nil {
		if flag {
			*m = Mode(getopt.ArgumentRequired)
		} else {
			*m = Mode(getopt.ArgumentNone)
		}

		return nil
	}

	var name string
	if err := yaml.Unmarshal(data, &name); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		*m = Mode(getopt.ArgumentNone)
	case "optional":
		*m = Mode(getopt.ArgumentOptional)
	case "required":
		*m = Mode(getopt.ArgumentRequired)
	default:
		return getopt.ErrConfiguration.
			Wrap(errors.New("invalid argument mode")).
			With(slog.String("argument", name))
	}

	return nil
}

// Load reads a settings document from path.
func Load(path string) (getopt.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return getopt.Settings{}, getopt.ErrConfiguration.Wrap(err)
	}

	return Parse(data)
}

// Parse decodes a settings document.
func Parse(data []byte) (getopt.Settings, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return getopt.Settings{}, getopt.ErrConfiguration.Wrap(err)
	}

	return doc.Settings(), nil
}

// Settings converts the document to parser settings.
func (doc Document) Settings() getopt.Settings {
	options := make([]getopt.Option, len(doc.Options))

	for i, opt := range doc.Options {
		options[i] = getopt.Option{
			Name:     opt.Name,
			Short:    opt.Short,
			Long:     opt.Long,
			Argument: getopt.ArgumentMode(opt.Argument),
			Help:     opt.Help,
		}
	}

	return getopt.Settings{
		Usage:   doc.Usage,
		Wrap:    doc.Wrap,
		First:   doc.First,
		Options: options,
	}
}
