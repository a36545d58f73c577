package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles applied by the pretty handler, keyed by level.
//
//nolint:gochecknoglobals
var (
	styleTime  = lipgloss.NewStyle().Faint(true)
	styleKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleTrace = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func levelStyle(level slog.Level) lipgloss.Style {
	switch {
	case level < slog.LevelDebug:
		return styleTrace
	case level < slog.LevelInfo:
		return styleDebug
	case level < slog.LevelWarn:
		return styleInfo
	case level < slog.LevelError:
		return styleWarn
	default:
		return styleError
	}
}

// prettyHandler implements a colorized text handler for log messages.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	prefix []slog.Attr
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		buf.WriteString(styleTime.Render(r.Time.Format("15:04:05.000")))
		buf.WriteByte(' ')
	}

	buf.WriteString(levelStyle(r.Level).Render(Level(r.Level).String()))
	buf.WriteByte(' ')

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			buf.WriteString(styleTime.Render(
				fmt.Sprintf("%s:%d", src.File, src.Line)))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(r.Message)

	for _, a := range h.prefix {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()

	buf.WriteByte(' ')
	buf.WriteString(styleKey.Render(a.Key))
	buf.WriteByte('=')

	val := a.Value.String()
	if a.Value.Kind() == slog.KindString {
		val = strconv.Quote(val)
	}

	buf.WriteString(val)
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.prefix = append(clone.prefix[:len(clone.prefix):len(clone.prefix)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(string) slog.Handler {
	// Groups are flattened; the pretty format is for human eyes only.
	return h
}
