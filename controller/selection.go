package controller

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/nbspacer"
	"github.com/npillmayer/nbspacer/markup"
)

// SelectionName is the rule name of every Selection.
const SelectionName = "selection"

// Selection is an ordered, duplicate-free list of registered rules.
// It acts as a single composite rule.
type Selection struct {
	rules []nbspacer.Rule
}

// Select activates the rules given by name, together with all members of the
// groups given by name. Every rule is activated at most once, and rules are
// ordered as in the registry. If no names are given at all, every registered
// rule is activated.
//
// Unknown names result in ErrUnknownRule or ErrUnknownGroup.
func (reg *Registry) Select(rules, groups []string) (*Selection, error) {
	if len(rules) == 0 && len(groups) == 0 {
		return &Selection{rules: reg.Rules()}, nil
	}
	wanted := hashset.New()
	for _, gname := range groups {
		g, found := reg.Group(gname)
		if !found {
			tracer().Errorf("controller: no group named %q", gname)
			return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, gname)
		}
		for _, r := range g.Rules() {
			wanted.Add(r.Name())
		}
	}
	for _, name := range rules {
		if _, found := reg.Rule(name); !found {
			tracer().Errorf("controller: no rule named %q", name)
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		wanted.Add(name)
	}
	sel := &Selection{}
	for _, r := range reg.Rules() {
		if wanted.Contains(r.Name()) {
			sel.rules = append(sel.rules, r)
		}
	}
	tracer().Debugf("controller: selected %d of %d rules", len(sel.rules), reg.rules.Size())
	return sel, nil
}

// Rules returns the activated rules in execution order.
func (sel *Selection) Rules() []nbspacer.Rule {
	rules := make([]nbspacer.Rule, len(sel.rules))
	copy(rules, sel.rules)
	return rules
}

// Names returns the names of the activated rules in execution order.
func (sel *Selection) Names() []string {
	n := make([]string, len(sel.rules))
	for i, r := range sel.rules {
		n[i] = r.Name()
	}
	return n
}

// Name is part of interface nbspacer.Rule.
func (sel *Selection) Name() string {
	return SelectionName
}

// Description is part of interface nbspacer.Rule.
func (sel *Selection) Description() string {
	return fmt.Sprintf("%d selected rules", len(sel.rules))
}

// Examples is part of interface nbspacer.Rule.
func (sel *Selection) Examples() []string {
	return nil
}

// Substitute folds s through all activated rules. The first failing rule
// aborts the whole run.
//
// Interface nbspacer.Rule
func (sel *Selection) Substitute(s nbspacer.Stream) (nbspacer.Stream, error) {
	var err error
	for _, r := range sel.rules {
		if s, err = r.Substitute(s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Transduce runs the selection over a document. Markup is left untouched.
func (sel *Selection) Transduce(document string) (string, error) {
	return markup.Transduce(document, sel)
}

// Controller is the entry point for running rules of a registry.
type Controller struct {
	registry *Registry
}

// New creates a controller for a registry.
func New(reg *Registry) *Controller {
	return &Controller{registry: reg}
}

// Registry returns the registry of c.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Transduce selects rules by name (see Registry.Select) and runs them over a
// document. In case of an error, no output is produced.
func (c *Controller) Transduce(document string, rules, groups []string) (string, error) {
	sel, err := c.registry.Select(rules, groups)
	if err != nil {
		return "", err
	}
	return sel.Transduce(document)
}

// Process reads a complete document from r, transduces it and writes the
// result to w. Nothing is written if selection or transduction fails.
func (c *Controller) Process(r io.Reader, w io.Writer, rules, groups []string) error {
	sel, err := c.registry.Select(rules, groups)
	if err != nil {
		return err
	}
	document, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	out, err := sel.Transduce(string(document))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
