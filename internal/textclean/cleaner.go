package textclean

import (
	"strings"

	"github.com/dlclark/regexp2"
)

const (
	ci = regexp2.IgnoreCase
	ml = regexp2.Multiline
)

// normalize maps typographic variants to plain ASCII equivalents.
var normalize = Stage{Name: "normalize", Rules: []Rule{
	NewRule("curly single quotes", "[‘’‚‛‹›]", "'", regexp2.None),
	NewRule("curly double quotes", "[“”„‟«»]", `"`, regexp2.None),
	NewRule("unicode spaces", "[   -​  　]", " ", regexp2.None),
	NewRule("ellipsis glyph", "…", "...", regexp2.None),
	NewRule("primes as apostrophes", "([A-Za-z])[`´′]([A-Za-z])", "$1'$2", regexp2.None),
	NewRule("1/4", "¼", "1/4", regexp2.None),
	NewRule("1/2", "½", "1/2", regexp2.None),
	NewRule("3/4", "¾", "3/4", regexp2.None),
}}

// misreads fixes whole words the OCR engine consistently gets wrong.
var misreads = Stage{Name: "misreads", Rules: []Rule{
	NewRule("tbe->the", `\btbe\b`, "the", ci),
	NewRule("tbis->this", `\btbis\b`, "this", ci),
	NewRule("tbat->that", `\btbat\b`, "that", ci),
	NewRule("wbat->what", `\bwbat\b`, "what", ci),
	NewRule("wbich->which", `\bwbich\b`, "which", ci),
	NewRule("wbo->who", `\bwbo\b`, "who", ci),
}}

// contractions restores apostrophes dropped by OCR.
// "Ill", "I m" and "Ive" stay case-sensitive: lowercase "ill" and "ive" are
// real words.
var contractions = Stage{Name: "contractions", Rules: []Rule{
	NewRule("cant", `\bcant\b`, "can't", ci),
	NewRule("wont", `\bwont\b`, "won't", ci),
	NewRule("dont", `\bdont\b`, "don't", ci),
	NewRule("Ill", `\bIll\b`, "I'll", regexp2.None),
	NewRule("I m", `\bI m\b`, "I'm", regexp2.None),
	NewRule("Ive", `\bIve\b`, "I've", regexp2.None),
	NewRule("youre", `\byoure\b`, "you're", ci),
	NewRule("theyre", `\btheyre\b`, "they're", ci),
}}

// confusions fixes character-level shape confusions, each anchored to a
// specific whole word to avoid collateral damage.
var confusions = Stage{Name: "confusions", Rules: []Rule{
	NewRule("rn->m (make)", `\brnake\b`, "make", ci),
	NewRule("rn->m (many)", `\brnany\b`, "many", ci),
	NewRule("0f->of", `\b0f\b`, "of", regexp2.None),
	NewRule("t0->to", `\bt0\b`, "to", regexp2.None),
	NewRule("0r->or", `\b0r\b`, "or", regexp2.None),
}}

// merged splits function-word pairs the OCR ran together.
var merged = Stage{Name: "merged", Rules: []Rule{
	NewRule("ofthe", `\bofthe\b`, "of the", ci),
	NewRule("andthe", `\bandthe\b`, "and the", ci),
	NewRule("inthe", `\binthe\b`, "in the", ci),
}}

// hyphensWrap undoes hyphenation and hard line wraps.
var hyphensWrap = Stage{Name: "hyphens_wrap", Rules: []Rule{
	NewRule("soft hyphen", "­", "", regexp2.None),
	NewRule("dash normalize", "[—–]", " - ", regexp2.None),
	NewRule("EOL hyphen + lowercase", `([a-z])-\s*\r?\n\s*(?=[a-z])`, "$1", regexp2.None),
	NewRule("join simple wraps", `([a-z,;])\s*\r?\n(?=[a-z])`, "$1 ", regexp2.None),
	NewRule("inword hyphen + spaces", `(\b[A-Za-z]+)-\s+([A-Za-z]+\b)`, "$1$2", regexp2.None),
}}

// whitespace normalizes spacing and punctuation runs. Runs last so the wrap
// joins above see original line structure.
var whitespace = Stage{Name: "whitespace", Rules: []Rule{
	NewRule("trim trailing", `[ \t]+$`, "", ml),
	NewRule("collapse 3+ spaces", `[ \t]{3,}`, " ", regexp2.None),
	NewRule("collapse 4+ blank lines", `(?:\r?\n){4,}`, "\n\n", regexp2.None),
	NewRule("no space before punct", `\s+([,.;:!?])`, "$1", regexp2.None),
	NewRule("space after sentence", `([.?!])([A-Z])`, "$1 $2", regexp2.None),
	NewRule("collapse 4+ periods", `\.{4,}`, "...", regexp2.None),
	// Single word stranded on its own line rejoins the next line when that
	// line starts with a word character.
	NewRule("single word lines", `^(\w+)\s*\n(?=\w)`, "$1 ", ml),
}}

// Stages is the canonical cleaning pipeline in application order.
var Stages = []Stage{normalize, misreads, contractions, confusions, merged, hyphensWrap, whitespace}

// Clean applies every stage in order and trims the result. It is pure and
// total: any well-formed UTF-8 input yields a result without error. Callers
// are responsible for decoding raw bytes with a replacement policy first.
func Clean(text string) string {
	for _, stage := range Stages {
		text = stage.Apply(text)
	}
	return strings.TrimSpace(text)
}
