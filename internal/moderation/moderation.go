// Package moderation screens user-supplied text (custom poll options, post
// content) against a deterministic disallowed-term list before acceptance.
package moderation

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed terms.yaml
var termsYAML []byte

type termList struct {
	Version string   `yaml:"version"`
	Terms   []string `yaml:"terms"`
}

var disallowed termList

func init() {
	if err := yaml.Unmarshal(termsYAML, &disallowed); err != nil {
		panic(fmt.Sprintf("moderation: bad embedded term list: %v", err))
	}
}

// TermListVersion returns the version of the embedded term list.
func TermListVersion() string { return disallowed.Version }

var leetFolder = strings.NewReplacer(
	"0", "o",
	"1", "i",
	"3", "e",
	"4", "a",
	"5", "s",
	"7", "t",
	"$", "s",
	"@", "a",
)

// Normalize lowercases text, folds common leetspeak substitutions and strips
// everything that is not a letter, digit or space, so variant spellings match
// the plain term list.
func Normalize(text string) string {
	s := leetFolder.Replace(strings.ToLower(strings.TrimSpace(text)))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsDisallowedTerm reports whether text matches any disallowed term,
// either as a whole word or as a substring of the normalized text.
func ContainsDisallowedTerm(text string) bool {
	normalized := Normalize(text)
	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		words[w] = struct{}{}
	}
	for _, term := range disallowed.Terms {
		if _, ok := words[term]; ok {
			return true
		}
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}

// ValidateText checks that content is non-empty after trimming and free of
// disallowed terms. The returned reason is safe to show to the user.
func ValidateText(content string) (ok bool, reason string) {
	if strings.TrimSpace(content) == "" {
		return false, "Content cannot be empty"
	}
	if ContainsDisallowedTerm(content) {
		return false, "Your message contains inappropriate language. Please revise and try again."
	}
	return true, ""
}
