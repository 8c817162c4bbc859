package canon

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrQuoteCollision is reported in strict mode for a string that cannot be
// written between quotes unchanged.
var ErrQuoteCollision = errors.New("quote collision")

// CollisionError locates the offending string in the document.
type CollisionError struct {
	Path  string
	Value string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s at %s: %q", ErrQuoteCollision, e.Path, e.Value)
}

func (e *CollisionError) Unwrap() error { return ErrQuoteCollision }

// Encoder renders value trees. The zero value escapes quotes, backslashes
// and control characters; Strict refuses them instead.
type Encoder struct {
	Strict bool
}

type printer struct {
	buf    []byte
	strict bool
}

func (p *printer) value(v Value, path string) error {
	if v == nil {
		p.buf = append(p.buf, "null"...)
		return nil
	}
	return v.render(p, path)
}

func (p *printer) quoted(s, path string) error {
	if NeedsEscape(s) {
		if p.strict {
			return &CollisionError{Path: path, Value: s}
		}
		s = Escape(s)
	}
	p.buf = append(p.buf, '"')
	p.buf = append(p.buf, s...)
	p.buf = append(p.buf, '"')
	return nil
}

// Marshal renders v.
func (e Encoder) Marshal(v Value) (string, error) {
	p := &printer{strict: e.Strict}
	if err := p.value(v, ""); err != nil {
		return "", err
	}
	return string(p.buf), nil
}

// WriteList writes {"key":[entries...]} with a line break after the
// opening bracket and before the closing one, entries separated by sep.
func (e Encoder) WriteList(w io.Writer, key string, sep string, entries []Value) error {
	p := &printer{strict: e.Strict}
	p.buf = append(p.buf, "{\n"...)
	if err := p.quoted(key, key); err != nil {
		return err
	}
	p.buf = append(p.buf, ":[\n"...)
	for i, entry := range entries {
		if i > 0 {
			p.buf = append(p.buf, sep...)
		}
		if err := p.value(entry, fmt.Sprintf("%s[%d]", key, i)); err != nil {
			return err
		}
	}
	p.buf = append(p.buf, "\n]}\n"...)
	_, err := w.Write(p.buf)
	return err
}

// Check walks v and returns every string that would collide, joined.
func Check(v Value) error {
	var errs []error
	walk(v, "", func(path, s string) {
		if NeedsEscape(s) {
			errs = append(errs, &CollisionError{Path: path, Value: s})
		}
	})
	return errors.Join(errs...)
}

func walk(v Value, path string, visit func(path, s string)) {
	switch t := v.(type) {
	case String:
		visit(path, string(t))
	case Array:
		for i, item := range t {
			walk(item, fmt.Sprintf("%s[%d]", path, i), visit)
		}
	case Object:
		for _, m := range t {
			child := m.Name
			if path != "" {
				child = path + "." + m.Name
			}
			visit(child, m.Name)
			walk(m.Value, child, visit)
		}
	}
}

// NeedsEscape reports whether s contains a quote, a backslash, a control
// character or invalid UTF-8.
func NeedsEscape(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' || c < 0x20 {
			return true
		}
	}
	return false
}

const hex = "0123456789abcdef"

// Escape makes s safe to write between double quotes. It is the only
// place the document format escapes anything.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(`�`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20:
			b.WriteString(`\u00`)
			b.WriteByte(hex[r>>4])
			b.WriteByte(hex[r&0xf])
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
