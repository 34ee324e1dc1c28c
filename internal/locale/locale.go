/*
Package locale finds the language of the user and matches it against the
language groups of a registry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package locale

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultLocale is assumed if the environment does not tell.
const DefaultLocale = "en-US"

// Auto is the pseudo tag requesting detection of the user locale.
const Auto = "auto"

// FromEnvironment returns the language tag of the user's locale.
func FromEnvironment() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("locale: %v; using default %v", err, DefaultLocale)
		userLocale = DefaultLocale
	} else {
		tracer().Debugf("locale: detected user locale %v", userLocale)
	}
	return language.Make(userLocale)
}

// Parse interprets a tag given by the user. Auto (or an empty string) means
// the locale of the environment.
func Parse(tag string) (language.Tag, error) {
	if tag == "" || tag == Auto {
		return FromEnvironment(), nil
	}
	return language.Parse(tag)
}

// MatchGroup selects the group name best matching a language tag. Only
// names which are valid language tags themselves ("cs", "en") are
// considered. If no group matches with at least low confidence, the result
// is empty and false.
func MatchGroup(tag language.Tag, groups []string) (string, bool) {
	var names []string
	var tags []language.Tag
	for _, g := range groups {
		t, err := language.Parse(g)
		if err != nil {
			continue
		}
		if b, conf := t.Base(); conf == language.No || b.String() != g {
			continue // group names are bare language subtags
		}
		names = append(names, g)
		tags = append(tags, t)
	}
	if len(tags) == 0 {
		return "", false
	}
	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		tracer().Debugf("locale: no language group for %v", tag)
		return "", false
	}
	tracer().Debugf("locale: %v matches group %s (%v)", tag, names[index], confidence)
	return names[index], true
}
