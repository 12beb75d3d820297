package extraction

import "strings"

var ocrConfusions = strings.NewReplacer(
	"l", "1",
	"|", "1",
	",", ".",
)

// Normalize canonicalizes raw OCR text before any pattern matching:
// `l` and `|` become `1`, `,` becomes `.`, and the result is uppercased.
// Nothing else is touched, so line breaks and spacing survive.
//
// Normalize is idempotent.
func Normalize(raw string) string {
	return strings.ToUpper(ocrConfusions.Replace(raw))
}
