/*
Package catalog provides rule catalogues: rules and groups supplied as data.

A catalogue is a YAML document listing groups and rule descriptors.
Every rule names the groups it belongs to:

  name: cs
  groups:
    - name: preposition
      description: prepositions
  rules:
    - name: cs.ksvz
      words: ['\b[ksvzKSVZ]', '\w']
      examples: [k mostu]
      groups: [preposition]

Rules register in the order they appear in the document. Two catalogues are
built in, one for Czech and one for English typography; users may load
additional catalogues from files.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/nbspacer"
	"github.com/npillmayer/nbspacer/controller"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

//go:embed cs.yaml en.yaml
var builtin embed.FS

// Builtin lists the names of the built-in catalogues in registration order.
var Builtin = []string{"cs", "en"}

// Catalog is a parsed rule catalogue.
type Catalog struct {
	Name   string  `yaml:"name"`
	Groups []Group `yaml:"groups"`
	Rules  []Entry `yaml:"rules"`
}

// Group describes a group to register.
type Group struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Examples    []string `yaml:"examples,omitempty"`
}

// Entry is a rule descriptor together with the names of its groups.
type Entry struct {
	nbspacer.Descriptor `yaml:",inline"`
	Groups              []string `yaml:"groups,omitempty"`
}

// Parse reads a catalogue from YAML. Unknown fields are rejected.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	c := &Catalog{}
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil // empty catalogue
		}
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalogue file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Name == "" {
		c.Name = path
	}
	return c, nil
}

// Open returns one of the built-in catalogues.
func Open(name string) (*Catalog, error) {
	data, err := builtin.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: no built-in catalogue %q", name)
	}
	return Parse(bytes.NewReader(data))
}

// Register adds the groups and rules of c to a registry builder.
// Rules may refer to groups registered by earlier catalogues.
func (c *Catalog) Register(b *controller.Builder) error {
	for _, g := range c.Groups {
		if _, err := b.AddGroup(g.Name, g.Description, g.Examples...); err != nil {
			return fmt.Errorf("catalog %s: %w", c.Name, err)
		}
	}
	for _, e := range c.Rules {
		if err := b.AddDescriptor(e.Descriptor, e.Groups...); err != nil {
			return fmt.Errorf("catalog %s: %w", c.Name, err)
		}
	}
	tracer().Infof("catalog %s: registered %d groups and %d rules", c.Name, len(c.Groups), len(c.Rules))
	return nil
}

// RegisterBuiltin registers all built-in catalogues with b.
func RegisterBuiltin(b *controller.Builder) error {
	for _, name := range Builtin {
		c, err := Open(name)
		if err != nil {
			return err
		}
		if err = c.Register(b); err != nil {
			return err
		}
	}
	return nil
}

// Default builds a registry from the built-in catalogues, followed by the
// catalogue files given.
func Default(paths ...string) (*controller.Registry, error) {
	b := controller.NewBuilder()
	if err := RegisterBuiltin(b); err != nil {
		return nil, err
	}
	for _, path := range paths {
		c, err := Load(path)
		if err != nil {
			return nil, err
		}
		if err = c.Register(b); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
