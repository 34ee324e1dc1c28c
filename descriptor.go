package nbspacer

import (
	"fmt"
	"strings"
)

// Descriptor describes a leaf rule. Descriptors are what rule catalogues
// consist of.
//
// A descriptor specifies its pattern in exactly one of three ways:
// as a regular expression in Pattern, together with Replacement; as a
// sequence of Words; or as a sequence of Dotted abbreviation parts.
// For the latter two, pattern and replacement are generated (see Words and
// Dotted).
//
// Keys of Replacement address capture groups, either by number ("1") or by
// name.
type Descriptor struct {
	Name        string            `yaml:"name"`
	Pattern     string            `yaml:"pattern,omitempty"`
	Words       []string          `yaml:"words,omitempty"`
	Dotted      []string          `yaml:"dotted,omitempty"`
	Replacement map[string]string `yaml:"replacement,omitempty"`
	Align       Align             `yaml:"align,omitempty"`
	Fixpoint    *bool             `yaml:"fixpoint,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Examples    []string          `yaml:"examples,omitempty"`
}

// resolve returns the effective pattern and replacement of d.
func (d Descriptor) resolve() (string, map[string]string, error) {
	if d.Name == "" {
		return "", nil, fmt.Errorf("%w: missing name", ErrInvalidDescriptor)
	}
	if !d.Align.valid() {
		return "", nil, fmt.Errorf("%w: rule %q: align must be 'left' or 'right', is %q",
			ErrInvalidDescriptor, d.Name, d.Align)
	}
	forms := 0
	for _, set := range []bool{d.Pattern != "", len(d.Words) > 0, len(d.Dotted) > 0} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return "", nil, fmt.Errorf("%w: rule %q needs exactly one of pattern, words, dotted",
			ErrInvalidDescriptor, d.Name)
	}
	if d.Pattern != "" {
		if len(d.Replacement) == 0 {
			return "", nil, fmt.Errorf("%w: rule %q has no replacement", ErrInvalidDescriptor, d.Name)
		}
		return d.Pattern, d.Replacement, nil
	}
	if len(d.Replacement) > 0 {
		return "", nil, fmt.Errorf("%w: rule %q: replacement is generated for words and dotted",
			ErrInvalidDescriptor, d.Name)
	}
	words := d.Words
	if len(d.Dotted) > 0 {
		words = dot(d.Dotted)
	}
	if len(words) < 2 {
		return "", nil, fmt.Errorf("%w: rule %q needs at least two words", ErrInvalidDescriptor, d.Name)
	}
	pattern, replacement := Words(words...)
	return pattern, replacement, nil
}

// Words creates a pattern joining word patterns by a single space, and a
// replacement turning every one of these spaces into NBSP.
// The spaces are captured by groups named "sp1", "sp2", ….
//
// Word patterns should not contain capturing groups of their own; use (?:…).
func Words(words ...string) (string, map[string]string) {
	var sb strings.Builder
	replacement := make(map[string]string, len(words))
	for i, w := range words {
		if i > 0 {
			key := fmt.Sprintf("sp%d", i)
			fmt.Fprintf(&sb, "(?<%s> )", key)
			replacement[key] = NBSP
		}
		sb.WriteString(w)
	}
	return sb.String(), replacement
}

// Dotted creates a pattern for an abbreviation made of dotted parts, like
// "s. r. o.". Each part is followed by a literal dot, and the first part has
// to start at a word boundary. Spaces between the parts are replaced as by
// Words.
func Dotted(parts ...string) (string, map[string]string) {
	return Words(dot(parts)...)
}

func dot(parts []string) []string {
	dotted := make([]string, len(parts))
	for i, p := range parts {
		if i == 0 {
			dotted[i] = `\b` + p + `\.`
		} else {
			dotted[i] = p + `\.`
		}
	}
	return dotted
}

// WordsRule is a shortcut to create a leaf from word patterns.
func WordsRule(name, description string, examples []string, words ...string) (*Leaf, error) {
	return NewLeaf(Descriptor{
		Name:        name,
		Words:       words,
		Description: description,
		Examples:    examples,
	})
}

// DottedRule is a shortcut to create a leaf from abbreviation parts.
func DottedRule(name, description string, examples []string, parts ...string) (*Leaf, error) {
	return NewLeaf(Descriptor{
		Name:        name,
		Dotted:      parts,
		Description: description,
		Examples:    examples,
	})
}
