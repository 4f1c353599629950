// Package textclean repairs OCR and typesetting artifacts in extracted text.
// Cleaning is an ordered pipeline of pattern rewrites grouped into stages;
// order matters because later stages assume earlier normalization (whitespace
// collapsing must run after hyphen joining or it would merge words).
package textclean

import "github.com/dlclark/regexp2"

// Rule is a single pattern rewrite: every non-overlapping occurrence of the
// pattern is replaced in one left-to-right pass. Rules are fixed constants
// compiled at init; a malformed pattern is a programming error and panics.
//
// Patterns use regexp2 rather than stdlib regexp because the wrap-joining
// rules need lookahead (the joined character must stay available to the next
// match).
type Rule struct {
	Label string
	re    *regexp2.Regexp
	repl  string
}

// NewRule compiles a rule. Panics on a malformed pattern.
func NewRule(label, pattern, repl string, opts regexp2.RegexOptions) Rule {
	return Rule{
		Label: label,
		re:    regexp2.MustCompile(pattern, opts),
		repl:  repl,
	}
}

// Apply performs the rule's global substitution pass.
func (r Rule) Apply(text string) string {
	out, err := r.re.Replace(text, r.repl, -1, -1)
	if err != nil {
		// Replace only errors on timeout, which is never configured here.
		return text
	}
	return out
}

// Stage is an ordered group of rules applied as one logical cleanup phase.
type Stage struct {
	Name  string
	Rules []Rule
}

// Apply runs the stage's rules in listed order.
func (s Stage) Apply(text string) string {
	for _, r := range s.Rules {
		text = r.Apply(text)
	}
	return text
}
