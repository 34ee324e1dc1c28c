package locale

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

func TestEnvironment(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tag := FromEnvironment()
	if tag == language.Und {
		t.Logf("environment has no usable locale")
	}
	tag2, err := Parse(Auto)
	if err != nil || tag2 != tag {
		t.Errorf("expected auto to detect %v, got %v (%v)", tag, tag2, err)
	}
	if _, err = Parse("cs-CZ"); err != nil {
		t.Error(err)
	}
	if _, err = Parse("not a tag"); err == nil {
		t.Errorf("expected invalid tag to be rejected")
	}
}

func TestMatchGroup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	groups := []string{"cs", "prirucka", "preposition", "vlna", "cs.strana", "en", "ellipsis"}
	for _, tc := range []struct {
		tag   string
		group string
		found bool
	}{
		{"cs-CZ", "cs", true},
		{"cs", "cs", true},
		{"en-GB", "en", true},
		{"en-US", "en", true},
	} {
		g, ok := MatchGroup(language.MustParse(tc.tag), groups)
		if ok != tc.found || g != tc.group {
			t.Errorf("%s: expected group %q (%v), got %q (%v)", tc.tag, tc.group, tc.found, g, ok)
		}
	}
	if g, ok := MatchGroup(language.English, []string{"preposition", "vlna"}); ok {
		t.Errorf("expected no group among non-language names, got %q", g)
	}
}
