package layout

import (
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Printer writes HTML fragments and remembers the first write error,
// so components can emit markup without checking every call.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Raw writes trusted markup as-is
func (p *Printer) Raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// Text writes HTML-escaped text
func (p *Printer) Text(s string) {
	p.Raw(templ.EscapeString(s))
}

// Int writes an integer
func (p *Printer) Int(n int) {
	p.Raw(strconv.Itoa(n))
}

// Attr writes ` name="value"` with the value escaped
func (p *Printer) Attr(name, value string) {
	p.Raw(" " + name + `="`)
	p.Text(value)
	p.Raw(`"`)
}

// Err returns the first write error, if any
func (p *Printer) Err() error {
	return p.err
}
