package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tern/internal/diag"
	"tern/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	posColor     = color.New(color.Faint)
)

const maxMessageWidth = 120

// WriteDiagnostics prints every diagnostic in the bag, one per line with
// location prefix and severity tag. Color follows the package-level
// color.NoColor setting the CLI configures.
func WriteDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet) {
	pos := d.Primary.String()
	if fs != nil {
		if f := fs.Get(d.Primary.File); f != nil {
			start, _ := fs.Resolve(d.Primary)
			pos = fmt.Sprintf("%s:%d:%d", f.Path, start.Line, start.Col)
		}
	}

	msg := d.Message
	if runewidth.StringWidth(msg) > maxMessageWidth {
		msg = runewidth.Truncate(msg, maxMessageWidth-3, "") + "..."
	}

	fmt.Fprintf(w, "%s %s[%s] %s\n",
		posColor.Sprint(pos), severityColor(d.Severity).Sprint(d.Severity), d.Code, msg)
	for _, note := range d.Notes {
		fmt.Fprintf(w, "  %s %s\n", posColor.Sprint(note.Span.String()), note.Msg)
	}
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
