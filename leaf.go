package nbspacer

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dlclark/regexp2"
)

// Leaf is a rule consisting of a regular expression and replacement tokens
// for some of its capture groups.
//
// A single substitution pass searches for the leftmost match of the pattern
// and replaces the text of every addressed capture group by its token. All
// characters outside of these groups, including the rest of the match, are
// left untouched, together with their indices.
type Leaf struct {
	meta
	pattern  *regexp2.Regexp
	spans    []spanReplacement // ordered by key
	align    Align
	fixpoint bool
}

// spanReplacement holds the token for one capture group.
type spanReplacement struct {
	key   string
	group int
	token []rune
}

// span is the location of a capture group within a match.
type span struct {
	start, end int
	token      []rune
	key        string
}

// NewLeaf compiles a rule descriptor into a leaf rule.
//
// Errors are returned for descriptors without a name, with an invalid
// pattern, or with replacement entries addressing a capture group which is
// not present in the pattern (ErrUnknownSpan).
func NewLeaf(d Descriptor) (*Leaf, error) {
	pattern, replacement, err := d.resolve()
	if err != nil {
		return nil, err
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidDescriptor, d.Name, err)
	}
	leaf := &Leaf{
		meta: meta{
			name:        d.Name,
			description: d.Description,
			examples:    d.Examples,
		},
		pattern:  re,
		align:    d.Align,
		fixpoint: d.Fixpoint == nil || *d.Fixpoint,
	}
	if leaf.align == "" {
		leaf.align = AlignLeft
	}
	for key, token := range replacement {
		group := groupNumber(re, key)
		if group < 0 {
			return nil, fmt.Errorf("%w: rule %q has no group %q in /%s/", ErrUnknownSpan,
				d.Name, key, pattern)
		}
		leaf.spans = append(leaf.spans, spanReplacement{
			key:   key,
			group: group,
			token: []rune(token),
		})
	}
	sort.Slice(leaf.spans, func(i, j int) bool {
		return leaf.spans[i].key < leaf.spans[j].key
	})
	CT().P("rule", d.Name).Debugf("compiled /%s/ with %d replacements", pattern, len(leaf.spans))
	return leaf, nil
}

// groupNumber finds the capture group addressed by key, which is either an
// ordinal or a group name. Returns -1 if the pattern lacks the group.
func groupNumber(re *regexp2.Regexp, key string) int {
	if n, err := strconv.Atoi(key); err == nil {
		for _, g := range re.GetGroupNumbers() {
			if g == n {
				return n
			}
		}
		return -1
	}
	return re.GroupNumberFromName(key)
}

// Pattern returns the source of the regular expression of l.
func (l *Leaf) Pattern() string {
	return l.pattern.String()
}

// Replacement returns a copy of the map from span-ids to tokens.
func (l *Leaf) Replacement() map[string]string {
	m := make(map[string]string, len(l.spans))
	for _, s := range l.spans {
		m[s.key] = string(s.token)
	}
	return m
}

// Align returns the alignment mode of l.
func (l *Leaf) Align() Align {
	return l.align
}

// Fixpoint is true if l will be iterated until its input stops changing.
func (l *Leaf) Fixpoint() bool {
	return l.fixpoint
}

// Substitute applies l to s. For fixpoint rules, substitution passes are
// repeated until a pass leaves the content unchanged.
//
// Interface Rule
func (l *Leaf) Substitute(s Stream) (Stream, error) {
	out, changed, err := l.SubstituteOnce(s)
	if err != nil || !l.fixpoint {
		return out, err
	}
	// Every pass consumes at least one character matched by the pattern,
	// so a well-formed rule cannot need more passes than there are characters.
	limit := s.Len() + 1
	prev, passes := s, 1
	for changed && !out.SameContent(prev) {
		if passes > limit {
			CT().P("rule", l.name).Errorf("no fixpoint after %d passes; does a token re-match /%s/?",
				passes, l.Pattern())
			return s, fmt.Errorf("%w: %q after %d passes", ErrFixpointDiverges, l.name, passes)
		}
		prev = out
		if out, changed, err = l.SubstituteOnce(prev); err != nil {
			return s, err
		}
		passes++
	}
	if passes > 1 {
		CT().P("rule", l.name).Debugf("fixpoint reached after %d passes", passes)
	}
	return out, nil
}

// SubstituteOnce performs a single substitution pass of l on s. It returns
// the resulting stream and a flag indicating whether the pattern matched.
//
// Replaced spans have to be strictly increasing and must not overlap within
// a match. Otherwise ErrOverlappingSpans will be returned.
func (l *Leaf) SubstituteOnce(s Stream) (Stream, bool, error) {
	m, err := l.pattern.FindRunesMatch(s.Content)
	if err != nil {
		return s, false, fmt.Errorf("rule %q: %w", l.name, err)
	}
	if m == nil {
		return s, false, nil
	}
	spans, err := l.collect(m)
	if err != nil {
		return s, false, err
	}
	grow := 0
	for _, sp := range spans {
		grow += len(sp.token)
	}
	b := newBuilder(s.Len() + grow)
	cursor := 0
	for _, sp := range spans {
		b.copy(s, cursor, sp.start)
		b.insert(sp.token, l.provenance(s, sp))
		cursor = sp.end
	}
	b.copy(s, cursor, s.Len())
	CT().P("rule", l.name).Debugf("match at %d: %q", m.Index, m.String())
	return b.stream(), true, nil
}

// collect gets the spans of all participating replacement groups of a match,
// sorted by position.
func (l *Leaf) collect(m *regexp2.Match) ([]span, error) {
	spans := make([]span, 0, len(l.spans))
	for _, r := range l.spans {
		g := m.GroupByNumber(r.group)
		if g == nil || len(g.Captures) == 0 { // optional group did not participate
			continue
		}
		spans = append(spans, span{
			start: g.Index,
			end:   g.Index + g.Length,
			token: r.token,
			key:   r.key,
		})
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start == spans[j].start {
			return spans[i].end < spans[j].end
		}
		return spans[i].start < spans[j].start
	})
	cursor := 0
	for i, sp := range spans {
		if sp.start < cursor || (i > 0 && sp.start == spans[i-1].start) {
			CT().P("rule", l.name).Errorf("span %q at %d…%d collides with preceding span",
				sp.key, sp.start, sp.end)
			return nil, fmt.Errorf("%w: rule %q, group %q at %d", ErrOverlappingSpans,
				l.name, sp.key, sp.start)
		}
		cursor = sp.end
	}
	return spans, nil
}

// provenance selects the index the token of sp will carry.
func (l *Leaf) provenance(s Stream, sp span) int {
	at := sp.start
	if l.align == AlignRight && sp.end > sp.start {
		at = sp.end - 1
	}
	if at >= s.Len() { // empty span at the end of the content
		at = s.Len() - 1
	}
	if at < 0 {
		return 0
	}
	return s.Indices[at]
}
