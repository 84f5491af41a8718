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

// Package config loads session configuration from YAML.
//
//	parallelism: 4
//	defer_unresolved: false
//	directives:
//	  - '%lib C "m"'
//	  - '%include C "math.h"'
//	foreign:
//	  - {name: sqrt, args: [Float], ret: Float}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/elab/ffi"
)

// Config configures a checking session.
type Config struct {
	// Maximum number of units checked at once; 0 means no limit.
	Parallelism int `yaml:"parallelism"`
	// Surface unresolved implicit arguments as open obligations instead of errors.
	DeferUnresolved bool `yaml:"defer_unresolved"`
	// Directive lines, e.g. `%lib C "m"`.
	Directives []string `yaml:"directives"`
	// Foreign function declarations.
	Foreign []ForeignDecl `yaml:"foreign"`
}

// ForeignDecl declares a foreign function over primitive types.
type ForeignDecl struct {
	Name string   `yaml:"name"`
	Args []string `yaml:"args"`
	Ret  string   `yaml:"ret"`
}

// Load decodes a configuration. Unknown fields are rejected.
func Load(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	cfg := &Config{}
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads and decodes a configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every directive and foreign declaration is well-formed.
func (c *Config) Validate() error {
	if c.Parallelism < 0 {
		return errors.New("parallelism must not be negative")
	}
	if _, err := c.ParsedDirectives(); err != nil {
		return err
	}
	_, err := c.ForeignDeclarations()
	return err
}

// ParsedDirectives parses the directive lines, in order.
func (c *Config) ParsedDirectives() ([]ffi.Directive, error) {
	out := make([]ffi.Directive, 0, len(c.Directives))
	for _, line := range c.Directives {
		d, err := ffi.ParseDirective(line)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ForeignDeclarations resolves the primitive types of each foreign declaration.
func (c *Config) ForeignDeclarations() ([]*ffi.Foreign, error) {
	out := make([]*ffi.Foreign, 0, len(c.Foreign))
	for _, decl := range c.Foreign {
		if decl.Name == "" {
			return nil, errors.New("foreign declaration must be named")
		}
		f := &ffi.Foreign{Name: decl.Name, Args: make([]ffi.Prim, len(decl.Args))}
		for i, arg := range decl.Args {
			p, err := ffi.ParsePrim(arg)
			if err != nil {
				return nil, fmt.Errorf("foreign %s: %w", decl.Name, err)
			}
			f.Args[i] = p
		}
		ret := decl.Ret
		if ret == "" {
			ret = ffi.Unit.String()
		}
		p, err := ffi.ParsePrim(ret)
		if err != nil {
			return nil, fmt.Errorf("foreign %s: %w", decl.Name, err)
		}
		f.Ret = p
		out = append(out, f)
	}
	return out, nil
}
