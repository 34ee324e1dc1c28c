package markup

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/npillmayer/nbspacer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ExampleTransduce() {
	ksvz, _ := nbspacer.WordsRule("cs.ksvz", "", nil, `\b[ksvzKSVZ]`, `\w`)
	out, _ := Transduce(`<p class="x">Jdu k mostu.</p>`, ksvz)
	fmt.Println(out)
	// Output: <p class="x">Jdu k&nbsp;mostu.</p>
}

func TestSplit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	stream, tags := Split("<b>k</b> mostu")
	if stream.String() != "k mostu" {
		t.Errorf("expected content 'k mostu', have %q", stream.String())
	}
	if !reflect.DeepEqual(stream.Indices, []int{3, 8, 9, 10, 11, 12, 13}) {
		t.Errorf("unexpected indices %v", stream.Indices)
	}
	expected := []Tag{
		{Literal: "<b>", Anchor: 0, Offset: 0},
		{Literal: "</b>", Anchor: 1, Offset: 4},
	}
	if !reflect.DeepEqual(tags, expected) {
		t.Errorf("expected tags %v, have %v", expected, tags)
	}
}

func TestSplitUnicodeOffsets(t *testing.T) {
	stream, tags := Split("č<i>ř</i>")
	if !reflect.DeepEqual(stream.Indices, []int{0, 4}) {
		t.Errorf("offsets must count runes, have %v", stream.Indices)
	}
	if len(tags) != 2 || tags[0].Offset != 1 || tags[1].Offset != 5 {
		t.Errorf("unexpected tags %v", tags)
	}
}

func TestRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	documents := []string{
		"",
		"plain text",
		"<html>",
		"<p>starts with a tag</p>",
		"<i><b>k</b></i> x",
		"trailing <br/>",
		"a > b",     // stray '>'
		"a < b",     // tag never closed
		"x <a<b> y", // '<' inside a tag
		"<!-- comment --><p title=\"a b\">ž</p>",
	}
	for _, doc := range documents {
		stream, tags := Split(doc)
		if out := Reassemble(stream, tags); out != doc {
			t.Errorf("round trip failed: %q → %q", doc, out)
		}
	}
}

func TestUnbalanced(t *testing.T) {
	stream, tags := Split("a > b")
	if stream.String() != "a  b" || len(tags) != 1 || tags[0].Literal != ">" {
		t.Errorf("stray '>' should be a tag, have %q, %v", stream.String(), tags)
	}
	stream, tags = Split("a < b")
	if stream.String() != "a " || len(tags) != 1 || tags[0].Literal != "< b" {
		t.Errorf("unclosed tag should be kept, have %q, %v", stream.String(), tags)
	}
}

func TestTagsAroundPreposition(t *testing.T) {
	ksvz, err := nbspacer.WordsRule("cs.ksvz", "", nil, `\b[ksvzKSVZ]`, `\w`)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct{ in, out string }{
		{"k mostu", "k&nbsp;mostu"},
		{"<b>k</b> mostu", "<b>k</b>&nbsp;mostu"},
		{"<i><b>k</b></i> x", "<i><b>k</b></i>&nbsp;x"},
		{"k <em>mostu</em>", "k&nbsp;<em>mostu</em>"},
		{`<a title="k mostu">k</a>`, `<a title="k mostu">k</a>`},
		{"<p></p>", "<p></p>"},
	}
	for _, c := range cases {
		out, err := Transduce(c.in, ksvz)
		if err != nil {
			t.Fatal(err)
		}
		if out != c.out {
			t.Errorf("%q: expected %q, have %q", c.in, c.out, out)
		}
	}
}

func TestAlignmentMovesTags(t *testing.T) {
	for _, c := range []struct {
		align nbspacer.Align
		out   string
	}{
		{nbspacer.AlignLeft, "X<i></i>"},
		{nbspacer.AlignRight, "<i></i>X"},
	} {
		leaf, err := nbspacer.NewLeaf(nbspacer.Descriptor{
			Name:        "km",
			Pattern:     `(k m)`,
			Replacement: map[string]string{"1": "X"},
			Align:       c.align,
		})
		if err != nil {
			t.Fatal(err)
		}
		out, err := Transduce("k<i> </i>m", leaf)
		if err != nil {
			t.Fatal(err)
		}
		if out != c.out {
			t.Errorf("align %s: expected %q, have %q", c.align, c.out, out)
		}
	}
}

func TestMarkupPreserved(t *testing.T) {
	sep, err := nbspacer.WordsRule("thousands_separator", "", nil, `\b\d{1,3}`, `\d{3}\b`)
	if err != nil {
		t.Fatal(err)
	}
	doc := `<table><tr><td>1 000 <b>000</b></td><td data-x="1 000"> 2 500</td></tr></table>`
	out, err := Transduce(doc, sep)
	if err != nil {
		t.Fatal(err)
	}
	_, before := Split(doc)
	_, after := Split(out)
	if len(before) != len(after) {
		t.Fatalf("expected %d tags, have %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Literal != after[i].Literal {
			t.Errorf("tag #%d changed: %q → %q", i, before[i].Literal, after[i].Literal)
		}
	}
	expected := `<table><tr><td>1&nbsp;000&nbsp;<b>000</b></td><td data-x="1 000"> 2&nbsp;500</td></tr></table>`
	if out != expected {
		t.Errorf("expected %q, have %q", expected, out)
	}
}
