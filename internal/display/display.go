// Package display renders the remaining time as large FIGlet glyphs on a
// terminal.
package display

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	figure "github.com/common-nighthawk/go-figure"
	"golang.org/x/term"
)

// DefaultFont is the FIGlet font used when none is configured.
const DefaultFont = "standard"

const clearSequence = "\x1B[2J\x1B[1;1H"

// Error reports a failure to load the font or write glyphs.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return "display: " + e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Terminal draws glyphs to an output stream. The font is parsed from its
// embedded asset once, in New, and reused for every frame.
type Terminal struct {
	out  io.Writer
	font []byte
	tty  bool
	fd   int
}

// New loads fontName and returns a Terminal writing to out. Escape
// sequences and centring are only used when out is a terminal.
func New(out io.Writer, fontName string) (*Terminal, error) {
	if fontName == "" {
		fontName = DefaultFont
	}
	font, err := figure.Asset(path.Join("fonts", fontName+".flf"))
	if err != nil {
		return nil, &Error{Op: "load font " + strconv.Quote(fontName), Err: err}
	}
	t := &Terminal{out: out, font: font, fd: -1}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.tty = true
		t.fd = int(f.Fd())
	}
	return t, nil
}

// Fonts lists the names of the embedded FIGlet fonts.
func Fonts() []string {
	names, _ := figure.AssetDir("fonts")
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.TrimSuffix(n, ".flf"))
	}
	sort.Strings(out)
	return out
}

// Clear blanks the terminal and homes the cursor.
func (t *Terminal) Clear() error {
	if !t.tty {
		return nil
	}
	if _, err := io.WriteString(t.out, clearSequence); err != nil {
		return &Error{Op: "clear", Err: err}
	}
	return nil
}

// Render draws remaining as glyph text.
func (t *Terminal) Render(remaining int64) error {
	rows := t.Lines(strconv.FormatInt(remaining, 10))
	pad := ""
	if width := t.width(); width > 0 {
		pad = strings.Repeat(" ", leftPad(rows, width))
	}
	var buf bytes.Buffer
	for _, r := range rows {
		buf.WriteString(pad)
		buf.WriteString(r)
		buf.WriteByte('\n')
	}
	if _, err := t.out.Write(buf.Bytes()); err != nil {
		return &Error{Op: fmt.Sprintf("render %d", remaining), Err: err}
	}
	return nil
}

// Lines returns the glyph rows for text in the loaded font.
func (t *Terminal) Lines(text string) []string {
	return figure.NewFigureWithFont(text, bytes.NewReader(t.font), false).Slicify()
}

func (t *Terminal) width() int {
	if !t.tty {
		return 0
	}
	w, _, err := term.GetSize(t.fd)
	if err != nil {
		return 0
	}
	return w
}

func leftPad(rows []string, width int) int {
	widest := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > widest {
			widest = n
		}
	}
	if widest >= width {
		return 0
	}
	return (width - widest) / 2
}
