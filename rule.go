package nbspacer

import "errors"

// Rule represents a transformation of an indexed stream. Rules are used by
// the controller to transduce the content of documents.
//
// Substitute must not modify its input. It returns a stream satisfying the
// length invariant, or an error if the rule cannot be applied sensibly, in
// which case processing of the document has to be aborted.
//
// There are two implementations of Rule in this package, *Leaf and *Group.
type Rule interface {
	Name() string
	Description() string
	Examples() []string
	Substitute(Stream) (Stream, error)
}

// Errors signalled during construction and application of rules.
var (
	ErrInvalidDescriptor = errors.New("nbspacer: invalid rule descriptor")
	ErrUnknownSpan       = errors.New("nbspacer: replacement addresses a span not present in pattern")
	ErrOverlappingSpans  = errors.New("nbspacer: replacement spans overlap or are not increasing")
	ErrFixpointDiverges  = errors.New("nbspacer: rule does not reach a fixpoint")
	ErrLengthMismatch    = errors.New("nbspacer: stream content and indices differ in length")
)

// Align determines which character of a replaced span lends its provenance
// index to the replacement token.
type Align string

// Alignments. The zero value is treated as AlignLeft.
const (
	AlignLeft  Align = "left"  // index of the first character of the span
	AlignRight Align = "right" // index of the last character of the span
)

func (a Align) valid() bool {
	return a == "" || a == AlignLeft || a == AlignRight
}

// Apply runs rule r on s and verifies the length invariant of the result.
func Apply(r Rule, s Stream) (Stream, error) {
	if err := s.Check(); err != nil {
		return s, err
	}
	out, err := r.Substitute(s)
	if err != nil {
		return s, err
	}
	if err = out.Check(); err != nil {
		CT().P("rule", r.Name()).Errorf("rule breaks stream invariant: %v", err)
		return s, err
	}
	return out, nil
}

// Rule metadata shared by leaves and groups.
type meta struct {
	name        string
	description string
	examples    []string
}

// Name returns the unique name of a rule.
func (m *meta) Name() string {
	return m.name
}

// Description returns a human readable description, possibly empty.
func (m *meta) Description() string {
	return m.description
}

// Examples returns literal input strings to demonstrate a rule with.
func (m *meta) Examples() []string {
	return m.examples
}
