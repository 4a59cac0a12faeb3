package cgen

import (
	"fmt"
	"strings"

	"github.com/rehan678p/tree-sitter/rules"
)

const lookaheadChar = "LOOKAHEAD_CHAR()"

// characterCode renders one character for use inside a C character literal.
func characterCode(ch rune) string {
	switch ch {
	case 0:
		return `\0`
	case '"':
		return `\"`
	case '\\':
		return `\\`
	case '\'':
		return `\'`
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	// C universal character names may not name codes below 0xa0, so the
	// low non-printable stretch uses hex escapes instead.
	if ch < ' ' || (ch >= 0x7f && ch < 0xa0) {
		return fmt.Sprintf(`\x%02x`, ch)
	}
	if ch > 0xffff {
		return fmt.Sprintf(`\U%08x`, ch)
	}
	if ch > '~' {
		return fmt.Sprintf(`\u%04x`, ch)
	}
	return string(ch)
}

func conditionForRange(r rules.CharacterRange) string {
	if r.Least == r.Greatest {
		return lookaheadChar + " == '" + characterCode(r.Least) + "'"
	}
	return "'" + characterCode(r.Least) + "' <= " + lookaheadChar +
		" && " + lookaheadChar + " <= '" + characterCode(r.Greatest) + "'"
}

func conditionForSet(cs rules.CharacterSet) string {
	if cs.NumRanges() == 1 {
		return conditionForRange(cs.Range(0))
	}
	parts := make([]string, 0, cs.NumRanges())
	for i := 0; i < cs.NumRanges(); i++ {
		parts = append(parts, "("+conditionForRange(cs.Range(i))+")")
	}
	return strings.Join(parts, " || ")
}

// conditionForRule emits whichever of the set or its complement needs fewer
// range comparisons.  The choice never changes which characters match.
func conditionForRule(cs rules.CharacterSet) string {
	rep, direct := cs.MostCompactRepresentation()
	if direct {
		return conditionForSet(rep)
	}
	if rep.Empty() {
		// Complement of the full domain; the guard always holds.
		return "1"
	}
	return "!(" + conditionForSet(rep) + ")"
}
