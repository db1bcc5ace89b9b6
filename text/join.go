package text

// JoinPolicy is the spacing strategy for one script class. Merge sites look
// the policy up once instead of re-branching on the source language at every
// comparison.
type JoinPolicy struct {
	// Separator is inserted between merged fragments ("" for CJK, a single
	// space otherwise).
	Separator string

	// CharGapScale multiplies the average glyph height to derive the maximum
	// horizontal gap between characters of the same word. Latin glyphs sit
	// closer together relative to their height than CJK glyphs do.
	CharGapScale float64

	// GlueScale multiplies the provider's horizontal glue factor during line
	// assembly. Word spacing in space-separated scripts is visually wider
	// relative to character height, so the glue stretches by ~20%.
	GlueScale float64
}

var joinPolicies = map[ScriptClass]JoinPolicy{
	ScriptCJK: {
		Separator:    "",
		CharGapScale: 0.8,
		GlueScale:    1.0,
	},
	ScriptLatin: {
		Separator:    " ",
		CharGapScale: 0.4,
		GlueScale:    1.2,
	},
}

// PolicyFor returns the join policy for a script class.
func PolicyFor(class ScriptClass) JoinPolicy {
	if p, ok := joinPolicies[class]; ok {
		return p
	}
	return joinPolicies[ScriptLatin]
}
