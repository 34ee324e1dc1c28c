/*
Package controller registers rules and groups, and runs selections of them
over documents.

A process builds one Registry at start-up, using a Builder:

  b := controller.NewBuilder()
  b.AddGroup("cs", "Czech language")
  b.AddDescriptor(nbspacer.Descriptor{Name: "cs.ksvz", Words: ...}, "cs")
  ...
  reg, err := b.Build()

The registry is immutable afterwards and may be shared between goroutines.
For every document (or run of the program), clients derive a Selection from
rule and group names and transduce documents with it:

  sel, err := reg.Select(ruleNames, groupNames)
  output, err := sel.Transduce(document)

The rules of a selection always execute in the order they have been
registered, independent of the order of names given to Select.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package controller

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/nbspacer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors for registration and selection.
var (
	ErrDuplicateRule  = errors.New("controller: duplicate rule")
	ErrDuplicateGroup = errors.New("controller: duplicate group")
	ErrUnknownRule    = errors.New("controller: unknown rule")
	ErrUnknownGroup   = errors.New("controller: unknown group")
	ErrFrozen         = errors.New("controller: registry already built")
)

// Registry holds uniquely named rules and groups, in order of registration.
// Rule names and group names live in separate namespaces.
//
// A Registry is read-only and safe for concurrent use.
type Registry struct {
	rules  *linkedhashmap.Map // name → nbspacer.Rule
	groups *linkedhashmap.Map // name → *nbspacer.Group
}

// Builder collects rules and groups for a Registry.
// The first registration error is sticky and will be reported by Build as well.
type Builder struct {
	registry *Registry
	built    bool
	err      error
}

// NewBuilder creates a builder for an empty registry.
func NewBuilder() *Builder {
	return &Builder{
		registry: &Registry{
			rules:  linkedhashmap.New(),
			groups: linkedhashmap.New(),
		},
	}
}

func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	tracer().Errorf("%v", err)
	return err
}

// AddGroup registers a new, empty group. Rules are added to groups with Add.
func (b *Builder) AddGroup(name, description string, examples ...string) (*nbspacer.Group, error) {
	if b.built {
		return nil, b.fail(fmt.Errorf("%w: cannot add group %q", ErrFrozen, name))
	}
	if _, found := b.registry.groups.Get(name); found {
		return nil, b.fail(fmt.Errorf("%w: %q", ErrDuplicateGroup, name))
	}
	g := nbspacer.NewGroup(name, description, examples...)
	b.registry.groups.Put(name, g)
	return g, nil
}

// Add registers a rule and appends it to the groups given by name.
// Rules will execute in the order they have been added, both within groups
// and within selections.
func (b *Builder) Add(rule nbspacer.Rule, groups ...string) error {
	if b.built {
		return b.fail(fmt.Errorf("%w: cannot add rule %q", ErrFrozen, rule.Name()))
	}
	name := rule.Name()
	if name == "" {
		return b.fail(fmt.Errorf("%w: rule without a name", nbspacer.ErrInvalidDescriptor))
	}
	if _, found := b.registry.rules.Get(name); found {
		return b.fail(fmt.Errorf("%w: %q", ErrDuplicateRule, name))
	}
	members := make([]*nbspacer.Group, 0, len(groups))
	for _, gname := range groups {
		g, found := b.registry.groups.Get(gname)
		if !found {
			return b.fail(fmt.Errorf("%w: %q for rule %q", ErrUnknownGroup, gname, name))
		}
		members = append(members, g.(*nbspacer.Group))
	}
	b.registry.rules.Put(name, rule)
	for _, g := range members {
		g.Add(rule)
	}
	return nil
}

// AddDescriptor compiles a rule descriptor to a leaf rule and registers it
// with Add.
func (b *Builder) AddDescriptor(d nbspacer.Descriptor, groups ...string) error {
	leaf, err := nbspacer.NewLeaf(d)
	if err != nil {
		return b.fail(err)
	}
	return b.Add(leaf, groups...)
}

// Build finishes registration. It returns the first error that occurred
// during registration, if any. No registrations are accepted afterwards.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.built = true
	tracer().Infof("controller: registry with %d rules in %d groups",
		b.registry.rules.Size(), b.registry.groups.Size())
	return b.registry, nil
}

// Rule returns the rule registered under name.
func (reg *Registry) Rule(name string) (nbspacer.Rule, bool) {
	r, found := reg.rules.Get(name)
	if !found {
		return nil, false
	}
	return r.(nbspacer.Rule), true
}

// Group returns the group registered under name.
func (reg *Registry) Group(name string) (*nbspacer.Group, bool) {
	g, found := reg.groups.Get(name)
	if !found {
		return nil, false
	}
	return g.(*nbspacer.Group), true
}

// Rules returns all rules in order of registration.
func (reg *Registry) Rules() []nbspacer.Rule {
	values := reg.rules.Values()
	rules := make([]nbspacer.Rule, len(values))
	for i, v := range values {
		rules[i] = v.(nbspacer.Rule)
	}
	return rules
}

// Groups returns all groups in order of registration.
func (reg *Registry) Groups() []*nbspacer.Group {
	values := reg.groups.Values()
	groups := make([]*nbspacer.Group, len(values))
	for i, v := range values {
		groups[i] = v.(*nbspacer.Group)
	}
	return groups
}

// RuleNames returns the names of all rules in order of registration.
func (reg *Registry) RuleNames() []string {
	return names(reg.rules)
}

// GroupNames returns the names of all groups in order of registration.
func (reg *Registry) GroupNames() []string {
	return names(reg.groups)
}

func names(m *linkedhashmap.Map) []string {
	keys := m.Keys()
	n := make([]string, len(keys))
	for i, k := range keys {
		n[i] = k.(string)
	}
	return n
}
