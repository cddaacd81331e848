package numparse

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Languages whose conventional decimal separator is a comma. Regional
// variants resolve through the base language, so de-AT and de-DE both
// land on "de".
var commaDecimalBases = map[string]bool{
	"bg": true, "ca": true, "cs": true, "da": true, "de": true,
	"el": true, "es": true, "et": true, "fi": true, "fr": true,
	"hr": true, "hu": true, "id": true, "is": true, "it": true,
	"lt": true, "lv": true, "nb": true, "nl": true, "nn": true,
	"no": true, "pl": true, "pt": true, "ro": true, "ru": true,
	"sk": true, "sl": true, "sq": true, "sr": true, "sv": true,
	"tr": true, "uk": true, "vi": true,
}

// localeUsesCommaDecimal inspects the usual POSIX locale variables, in
// precedence order. The C and POSIX locales keep the invariant dot.
func localeUsesCommaDecimal() bool {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		// de_DE.UTF-8 -> de_DE
		if i := strings.IndexAny(raw, ".@"); i >= 0 {
			raw = raw[:i]
		}
		if raw == "C" || raw == "POSIX" {
			return false
		}
		tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
		if err != nil {
			return false
		}
		base, _ := tag.Base()
		return commaDecimalBases[base.String()]
	}
	return false
}
