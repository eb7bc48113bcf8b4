package intake

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxUsernameLen = 20

// foldTransformer strips combining marks so accented names ("José") fold to
// their ASCII base before the character filter runs.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DeriveUsername builds a PPPoE username candidate from a customer name:
// lower-case, every rune outside [a-z0-9] replaced by '_', truncated to 20
// characters. "John O'Brien #2" becomes "john_o_brien__2".
func DeriveUsername(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	lower := strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	out := b.String()
	if len(out) > maxUsernameLen {
		out = out[:maxUsernameLen]
	}
	return out
}
