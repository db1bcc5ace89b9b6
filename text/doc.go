// Package text provides script classification and join policy for OCR text
// assembly.
//
// OCR fragments are merged differently depending on the writing system of the
// source material: CJK text concatenates with no separator and tolerates
// tighter gaps relative to glyph height, while Latin-like text joins with
// spaces and wider glue.
//
// # Script Classification
//
// [ClassifyLanguage] maps a configured source-language code (BCP 47 or a
// provider-specific identifier such as EasyOCR's "japan") to a [ScriptClass].
// When no language is configured, [ClassifyText] falls back to inspecting the
// recognized runes.
//
// # Join Policy
//
// [PolicyFor] returns the [JoinPolicy] for a class: the text separator and
// the gap-scaling factors used by the grouping stages. Keeping the policy in
// one strategy table avoids repeated language branching at each merge site.
package text
