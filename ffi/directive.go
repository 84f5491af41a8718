// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ffi

import (
	"errors"
	"strconv"
	"strings"
)

// DirectiveKind identifies a code-generation directive.
type DirectiveKind int

const (
	// `%lib C "m"`
	Lib DirectiveKind = iota
	// `%include C "math.h"`
	Include
	// `%link C "obj.o"`
	Link
	// `%dynamic "libm.so"`
	Dynamic
)

var directiveNames = [...]string{Lib: "lib", Include: "include", Link: "link", Dynamic: "dynamic"}

func (k DirectiveKind) String() string {
	if k < 0 || int(k) >= len(directiveNames) {
		return "directive(" + strconv.Itoa(int(k)) + ")"
	}
	return directiveNames[k]
}

// Directive is inert metadata for the code generator or linker. The payload is never
// inspected.
type Directive struct {
	Kind DirectiveKind
	// Target names the code-generation backend, e.g. `C`. Dynamic directives have no target.
	Target  string
	Payload string
}

func (d Directive) String() string {
	var sb strings.Builder
	sb.WriteByte('%')
	sb.WriteString(d.Kind.String())
	if d.Target != "" {
		sb.WriteByte(' ')
		sb.WriteString(d.Target)
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Quote(d.Payload))
	return sb.String()
}

// ParseDirective parses a directive line: `%kind [target] "payload"`.
func ParseDirective(line string) (Directive, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "%") {
		return Directive{}, errors.New("Directive must start with %: " + line)
	}
	name, rest, _ := strings.Cut(line[1:], " ")
	var d Directive
	switch name {
	case "lib":
		d.Kind = Lib
	case "include":
		d.Kind = Include
	case "link":
		d.Kind = Link
	case "dynamic":
		d.Kind = Dynamic
	default:
		return Directive{}, errors.New("Unknown directive %" + name)
	}
	rest = strings.TrimSpace(rest)
	if d.Kind != Dynamic && !strings.HasPrefix(rest, `"`) {
		d.Target, rest, _ = strings.Cut(rest, " ")
		rest = strings.TrimSpace(rest)
	}
	payload, err := strconv.Unquote(rest)
	if err != nil {
		return Directive{}, errors.New("Invalid payload for %" + name + ": " + rest)
	}
	d.Payload = payload
	return d, nil
}
