package canon

import "strconv"

// Value is a node of the document tree.
type Value interface {
	render(p *printer, path string) error
}

// String is rendered between double quotes.
type String string

// Number is an integer literal.
type Number int

// Null is the null literal.
type Null struct{}

// Array keeps its items in the order given.
type Array []Value

// Member is one named property of an object.
type Member struct {
	Name  string
	Value Value
}

// Object keeps its members in the order given.
type Object []Member

// Str quotes s.
func Str(s string) Value { return String(s) }

// Int renders n as a number.
func Int(n int) Value { return Number(n) }

// Arr builds the member "name":[items...].
func Arr(name string, items ...Value) Member {
	return Member{Name: name, Value: Array(items)}
}

// Strings builds the member "name":["a","b",...].
func Strings(name string, values []string) Member {
	items := make([]Value, 0, len(values))
	for _, v := range values {
		items = append(items, String(v))
	}
	return Arr(name, items...)
}

// Ints builds the member "name":[1,2,...].
func Ints(name string, values []int) Member {
	items := make([]Value, 0, len(values))
	for _, v := range values {
		items = append(items, Number(v))
	}
	return Arr(name, items...)
}

// Obj builds {props...} when anonymous, otherwise {"name":{props...}}.
func Obj(name string, anonymous bool, props ...Member) Value {
	if anonymous {
		return Object(props)
	}
	return Object{{Name: name, Value: Object(props)}}
}

// Prop builds "name":"value".
func Prop(name, value string) Member {
	return Member{Name: name, Value: String(value)}
}

// Field builds "name":value from an already typed value.
func Field(name string, value Value) Member {
	return Member{Name: name, Value: value}
}

func (s String) render(p *printer, path string) error {
	return p.quoted(string(s), path)
}

func (n Number) render(p *printer, _ string) error {
	p.buf = strconv.AppendInt(p.buf, int64(n), 10)
	return nil
}

func (Null) render(p *printer, _ string) error {
	p.buf = append(p.buf, "null"...)
	return nil
}

func (a Array) render(p *printer, path string) error {
	p.buf = append(p.buf, '[')
	for i, item := range a {
		if i > 0 {
			p.buf = append(p.buf, ',')
		}
		if err := p.value(item, path+"["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
	}
	p.buf = append(p.buf, ']')
	return nil
}

func (o Object) render(p *printer, path string) error {
	p.buf = append(p.buf, '{')
	for i, m := range o {
		if i > 0 {
			p.buf = append(p.buf, ',')
		}
		child := m.Name
		if path != "" {
			child = path + "." + m.Name
		}
		if err := p.quoted(m.Name, child); err != nil {
			return err
		}
		p.buf = append(p.buf, ':')
		if err := p.value(m.Value, child); err != nil {
			return err
		}
	}
	p.buf = append(p.buf, '}')
	return nil
}
