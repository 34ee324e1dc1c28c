package controller

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/nbspacer"
	"github.com/npillmayer/nbspacer/markup"
)

// Kinds of described objects.
const (
	KindRule  = "rule"
	KindGroup = "group"
)

// Description is a human readable account of a rule or a group, including a
// live demonstration of its examples.
type Description struct {
	Kind        string
	Name        string
	Description string
	Examples    []Example
	Members     []string // groups only
	Leaf        *nbspacer.Leaf
}

// Example is an input string together with the output of the described
// rule or group for it.
type Example struct {
	Before string
	After  string
	Err    error
}

// DescribeRule describes the rule registered under name. Examples are
// transduced by this rule alone.
func (reg *Registry) DescribeRule(name string) (*Description, error) {
	r, found := reg.Rule(name)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	d := describe(KindRule, r)
	if leaf, ok := r.(*nbspacer.Leaf); ok {
		d.Leaf = leaf
	}
	if g, ok := r.(*nbspacer.Group); ok {
		d.Members = memberNames(g)
	}
	return d, nil
}

// DescribeGroup describes the group registered under name. Examples are
// transduced by the members of this group only.
func (reg *Registry) DescribeGroup(name string) (*Description, error) {
	g, found := reg.Group(name)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
	d := describe(KindGroup, g)
	d.Members = memberNames(g)
	return d, nil
}

func describe(kind string, r nbspacer.Rule) *Description {
	d := &Description{
		Kind:        kind,
		Name:        r.Name(),
		Description: r.Description(),
	}
	for _, before := range r.Examples() {
		after, err := markup.Transduce(before, r)
		d.Examples = append(d.Examples, Example{Before: before, After: after, Err: err})
	}
	return d
}

func memberNames(g *nbspacer.Group) []string {
	rules := g.Rules()
	n := make([]string, len(rules))
	for i, r := range rules {
		n[i] = r.Name()
	}
	return n
}

// WriteTo renders d in a form suitable for terminal output.
func (d *Description) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	if d.Kind == KindGroup {
		fmt.Fprintf(&sb, "Transducer group %q:\n", d.Name)
	} else {
		fmt.Fprintf(&sb, "Transducer %q:\n", d.Name)
	}
	if d.Description != "" {
		fmt.Fprintf(&sb, "  Description: %s\n", d.Description)
	}
	if len(d.Examples) > 0 {
		sb.WriteString("  Examples:\n")
		for _, ex := range d.Examples {
			fmt.Fprintf(&sb, "    -%s\n", ex.Before)
			if ex.Err != nil {
				fmt.Fprintf(&sb, "    !%v\n", ex.Err)
			} else {
				fmt.Fprintf(&sb, "    +%s\n", ex.After)
			}
		}
	}
	if d.Leaf != nil {
		fmt.Fprintf(&sb, "  Pattern: %s\n", d.Leaf.Pattern())
		fmt.Fprintf(&sb, "  Replacement: %s\n", formatReplacement(d.Leaf.Replacement()))
		fmt.Fprintf(&sb, "  Align: %s\n", d.Leaf.Align())
		fmt.Fprintf(&sb, "  Fixpoint: %v\n", d.Leaf.Fixpoint())
	}
	if len(d.Members) > 0 {
		fmt.Fprintf(&sb, "  Transducers:\n    %s\n", strings.Join(d.Members, "\n    "))
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func formatReplacement(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %q", k, m[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
