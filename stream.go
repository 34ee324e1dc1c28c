package nbspacer

import "fmt"

// Stream is an indexed text stream: the text content of a document, where
// every character carries the position of the document character it derives
// from. Content and Indices always have the same length.
//
// Streams are treated as values. Rules never modify the slices of a stream
// they receive, but return a new stream instead.
type Stream struct {
	Content []rune
	Indices []int
}

// StreamFromString creates a stream for a plain string, where every character
// derives from its own position.
func StreamFromString(s string) Stream {
	content := []rune(s)
	indices := make([]int, len(content))
	for i := range indices {
		indices[i] = i
	}
	return Stream{Content: content, Indices: indices}
}

// Len returns the number of characters in the stream.
func (s Stream) Len() int {
	return len(s.Content)
}

// String returns the content of s.
func (s Stream) String() string {
	return string(s.Content)
}

// Check tests the length invariant of a stream.
func (s Stream) Check() error {
	if len(s.Content) != len(s.Indices) {
		return fmt.Errorf("%w: %d characters, %d indices", ErrLengthMismatch,
			len(s.Content), len(s.Indices))
	}
	return nil
}

// SameContent is true if s and other carry the same text, regardless of indices.
func (s Stream) SameContent(other Stream) bool {
	if len(s.Content) != len(other.Content) {
		return false
	}
	for i, r := range s.Content {
		if other.Content[i] != r {
			return false
		}
	}
	return true
}

// builder collects the output of a substitution pass.
type builder struct {
	content []rune
	indices []int
}

func newBuilder(capacity int) *builder {
	return &builder{
		content: make([]rune, 0, capacity),
		indices: make([]int, 0, capacity),
	}
}

// copy appends s[from:to] unchanged.
func (b *builder) copy(s Stream, from, to int) {
	b.content = append(b.content, s.Content[from:to]...)
	b.indices = append(b.indices, s.Indices[from:to]...)
}

// insert appends token, every character of it carrying index pos.
func (b *builder) insert(token []rune, pos int) {
	b.content = append(b.content, token...)
	for range token {
		b.indices = append(b.indices, pos)
	}
}

func (b *builder) stream() Stream {
	return Stream{Content: b.content, Indices: b.indices}
}
