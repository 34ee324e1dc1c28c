/*
Package markup separates HTML markup from text content and merges both again.

Splitting a document yields a content stream, in which every character knows
its offset within the document, and an ordered list of tags. Rules operate on
the content stream only. Reassembling merges the transformed content stream
with the original tags, guided by the provenance indices of the stream.

  stream, tags := markup.Split(document)
  stream, err := rule.Substitute(stream)
  ...
  output := markup.Reassemble(stream, tags)

Limitations

The splitter knows nothing about HTML. A '<' starts a tag, a '>' ends it.
There is no nesting, no special treatment of quoted attribute values, comments
or <pre> sections. Unbalanced brackets produce a deterministic result: a
stray '>' outside of a tag is a tag of its own, a tag still open at the end
of the document is kept as a tag. No input character is ever lost.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import (
	"github.com/npillmayer/nbspacer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Tag is a literal piece of markup, including its angle brackets.
type Tag struct {
	Literal string
	Anchor  int // number of content characters preceding the tag
	Offset  int // rune offset of the tag's first character within the document
}

// Split scans a document once and separates tags from content.
// Indices of the resulting stream are absolute rune offsets into the document.
func Split(document string) (nbspacer.Stream, []Tag) {
	var stream nbspacer.Stream
	var tags []Tag
	var literal []rune
	inside, start, pos := false, 0, 0
	for _, r := range document {
		switch {
		case r == '<' && !inside:
			inside, start = true, pos
			literal = append(literal[:0], r)
		case r == '>':
			if !inside { // stray closing bracket
				start = pos
				literal = literal[:0]
			}
			literal = append(literal, r)
			tags = append(tags, Tag{
				Literal: string(literal),
				Anchor:  len(stream.Content),
				Offset:  start,
			})
			inside = false
		case inside:
			literal = append(literal, r)
		default:
			stream.Content = append(stream.Content, r)
			stream.Indices = append(stream.Indices, pos)
		}
		pos++
	}
	if inside {
		tracer().Infof("markup: tag at offset %d is not closed", start)
		tags = append(tags, Tag{
			Literal: string(literal),
			Anchor:  len(stream.Content),
			Offset:  start,
		})
	}
	tracer().Debugf("markup: split %d runes into %d content runes and %d tags",
		pos, len(stream.Content), len(tags))
	return stream, tags
}

// Reassemble merges a (transformed) content stream with tags.
//
// Tags and content characters are emitted in ascending order of their keys:
// the offset of a tag and the provenance index of a character. If a tag and
// a character share a key, the tag goes first. Tags are expected in the order
// Split returned them.
func Reassemble(s nbspacer.Stream, tags []Tag) string {
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	i, j := 0, 0
	for i < len(tags) || j < len(s.Content) {
		if i < len(tags) && (j >= len(s.Content) || tagFirst(tags[i], s.Indices[j])) {
			buf.WriteString(tags[i].Literal)
			i++
			continue
		}
		buf.WriteRune(s.Content[j])
		j++
	}
	return buf.String()
}

// tagFirst is the single comparison of the merge: a tag precedes a content
// character unless its key is greater.
func tagFirst(tag Tag, index int) bool {
	return tag.Offset <= index
}

// Transduce applies a single rule to a document, leaving its markup intact.
// If the rule fails, no output is produced.
func Transduce(document string, rule nbspacer.Rule) (string, error) {
	stream, tags := Split(document)
	out, err := nbspacer.Apply(rule, stream)
	if err != nil {
		tracer().P("rule", rule.Name()).Errorf("markup: transduction aborted: %v", err)
		return "", err
	}
	return Reassemble(out, tags), nil
}
