package manifest

import (
	"bytes"
	"strconv"
	"strings"
)

// Node is one value in an ordered document.
type Node interface {
	encode(e *encoder, depth int)
}

// Member is a key/value pair inside an Object. Members keep insertion order.
type Member struct {
	Key   string
	Value Node
}

// Object is an ordered JSON object. An empty Object with Inline set renders
// as "{}" on the key's line; otherwise the braces go on separate lines.
type Object struct {
	Members []Member
	Inline  bool
}

// Add appends a member and returns the object for chaining.
func (o *Object) Add(key string, value Node) *Object {
	o.Members = append(o.Members, Member{Key: key, Value: value})
	return o
}

// Array is an ordered JSON array. Inline has the same meaning as for Object.
type Array struct {
	Elements []Node
	Inline   bool
}

// String is emitted between double quotes exactly as given. No escaping is
// applied; the Unity editor writes names the same way.
type String string

// Bool is emitted as true or false.
type Bool bool

// Strings builds an Array of String elements.
func Strings(values []string, inline bool) *Array {
	a := &Array{Inline: inline}
	for _, v := range values {
		a.Elements = append(a.Elements, String(v))
	}
	return a
}

type encoder struct {
	buf    bytes.Buffer
	indent string
}

// Encode renders root with one indent unit per nesting level. Every member
// and element except the last in its container is followed by a comma, and
// the output ends with a newline.
func Encode(root Node, indent string) []byte {
	e := &encoder{indent: indent}
	root.encode(e, 0)
	e.buf.WriteByte('\n')
	return e.buf.Bytes()
}

func (e *encoder) pad(depth int) {
	e.buf.WriteString(strings.Repeat(e.indent, depth))
}

func (e *encoder) sep(i, n int) {
	if i < n-1 {
		e.buf.WriteByte(',')
	}
	e.buf.WriteByte('\n')
}

func (o *Object) encode(e *encoder, depth int) {
	if len(o.Members) == 0 && o.Inline {
		e.buf.WriteString("{}")
		return
	}
	e.buf.WriteString("{\n")
	for i, m := range o.Members {
		e.pad(depth + 1)
		e.buf.WriteString(strconv.Quote(m.Key))
		e.buf.WriteString(": ")
		m.Value.encode(e, depth+1)
		e.sep(i, len(o.Members))
	}
	e.pad(depth)
	e.buf.WriteByte('}')
}

func (a *Array) encode(e *encoder, depth int) {
	if len(a.Elements) == 0 && a.Inline {
		e.buf.WriteString("[]")
		return
	}
	e.buf.WriteString("[\n")
	for i, el := range a.Elements {
		e.pad(depth + 1)
		el.encode(e, depth+1)
		e.sep(i, len(a.Elements))
	}
	e.pad(depth)
	e.buf.WriteByte(']')
}

func (s String) encode(e *encoder, _ int) {
	e.buf.WriteByte('"')
	e.buf.WriteString(string(s))
	e.buf.WriteByte('"')
}

func (b Bool) encode(e *encoder, _ int) {
	e.buf.WriteString(strconv.FormatBool(bool(b)))
}
