package nbspacer

// Group is a named, ordered collection of rules. Applying a group applies its
// members in order, each one receiving the output of its predecessor.
// Members may be leaves or groups; a rule may be a member of many groups.
type Group struct {
	meta
	rules []Rule
}

// NewGroup creates an empty group.
func NewGroup(name, description string, examples ...string) *Group {
	return &Group{
		meta: meta{
			name:        name,
			description: description,
			examples:    examples,
		},
	}
}

// Add appends a rule to g. Groups are meant to be filled before any document
// is processed; Add is not safe for concurrent use with Substitute.
func (g *Group) Add(r Rule) *Group {
	g.rules = append(g.rules, r)
	return g
}

// Rules returns the members of g in order.
func (g *Group) Rules() []Rule {
	rules := make([]Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

// Len returns the number of members of g.
func (g *Group) Len() int {
	return len(g.rules)
}

// Substitute folds s through all members of g.
//
// Interface Rule
func (g *Group) Substitute(s Stream) (Stream, error) {
	var err error
	for _, r := range g.rules {
		if s, err = r.Substitute(s); err != nil {
			return s, err
		}
	}
	return s, nil
}
