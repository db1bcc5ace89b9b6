package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// ScriptClass is a coarse grouping of writing systems that drives spacing
// policy during merging. CJK text packs glyphs without word separators and
// with tighter gaps relative to glyph height; Latin-like text uses visible
// word spacing.
type ScriptClass int

const (
	// ScriptLatin covers Latin, Cyrillic, and other space-separated scripts.
	ScriptLatin ScriptClass = iota
	// ScriptCJK covers Chinese, Japanese, and Korean.
	ScriptCJK
)

// String returns a string representation of the script class.
func (s ScriptClass) String() string {
	if s == ScriptCJK {
		return "cjk"
	}
	return "latin"
}

// languageAliases maps provider-specific language identifiers that are not
// valid BCP 47 tags to the class they belong to. EasyOCR in particular uses
// its own naming ("japan", "ch_sim").
var languageAliases = map[string]ScriptClass{
	"japan":    ScriptCJK,
	"japanese": ScriptCJK,
	"chinese":  ScriptCJK,
	"ch":       ScriptCJK,
	"ch_sim":   ScriptCJK,
	"ch_tra":   ScriptCJK,
	"korean":   ScriptCJK,
}

// cjkScripts are the ISO 15924 script codes classified as CJK.
var cjkScripts = map[string]bool{
	"Hani": true, // Han
	"Hans": true, // Simplified Han
	"Hant": true, // Traditional Han
	"Jpan": true, // Japanese (Han + Hiragana + Katakana)
	"Hira": true, // Hiragana
	"Kana": true, // Katakana
	"Hang": true, // Hangul
	"Kore": true, // Korean (Hangul + Han)
}

// ClassifyLanguage maps a source-language code to its script class. The code
// may be a BCP 47 tag ("ja", "zh-Hant", "ko-KR") or a provider-specific
// identifier ("japan", "ch_sim"). Unknown or empty codes classify as Latin.
func ClassifyLanguage(code string) ScriptClass {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ScriptLatin
	}

	if class, ok := languageAliases[code]; ok {
		return class
	}

	tag, err := language.Parse(code)
	if err != nil {
		return ScriptLatin
	}

	script, _ := tag.Script()
	if cjkScripts[script.String()] {
		return ScriptCJK
	}

	return ScriptLatin
}

// ClassifyText returns ScriptCJK when the sample contains any CJK runes.
// It is the fallback classifier for providers that do not report a source
// language.
func ClassifyText(sample string) ScriptClass {
	for _, r := range sample {
		if IsCJKRune(r) {
			return ScriptCJK
		}
	}
	return ScriptLatin
}

// IsCJKRune reports whether a rune belongs to a CJK script.
func IsCJKRune(r rune) bool {
	return isHan(r) || isKana(r) || isHangul(r)
}

// isHan checks if a rune is a Han ideograph (including extensions and
// compatibility forms).
func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		(r >= 0x3000 && r <= 0x303F) // CJK symbols and punctuation
}

// isKana checks if a rune is Hiragana or Katakana (including half-width forms).
func isKana(r rune) bool {
	return unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		(r >= 0xFF65 && r <= 0xFF9F) // Half-width Katakana
}

// isHangul checks if a rune is Hangul.
func isHangul(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}
