package console

import (
	"io"
	"os"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"github.com/cory-johannsen/magicruby/internal/config"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves a colour mode against the output stream. In auto
// mode colour is used only on a terminal and when NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		if _, set := os.LookupEnv("NO_COLOR"); set {
			return false
		}
		return IsTerminal(w)
	}
}

// wrapWriter word-wraps every write at a fixed width.
type wrapWriter struct {
	w     io.Writer
	width int
}

// NewWrapWriter returns w itself when width is zero, or a writer that
// word-wraps each write at width columns.
func NewWrapWriter(w io.Writer, width int) io.Writer {
	if width <= 0 {
		return w
	}
	return &wrapWriter{w: w, width: width}
}

// Write wraps p and forwards it.
//
// Postcondition: reports len(p) on success so callers see a full write.
func (ww *wrapWriter) Write(p []byte) (int, error) {
	if _, err := ww.w.Write(wordwrap.Bytes(p, ww.width)); err != nil {
		return 0, err
	}
	return len(p), nil
}
