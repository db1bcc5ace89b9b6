package text

import "testing"

func TestClassifyLanguage(t *testing.T) {
	tests := []struct {
		code     string
		expected ScriptClass
	}{
		{"ja", ScriptCJK},
		{"jpn", ScriptCJK},
		{"japan", ScriptCJK},
		{"Japanese", ScriptCJK},
		{"zh", ScriptCJK},
		{"zh-Hant", ScriptCJK},
		{"ch_sim", ScriptCJK},
		{"ko", ScriptCJK},
		{"korean", ScriptCJK},
		{"en", ScriptLatin},
		{"de", ScriptLatin},
		{"fr-CA", ScriptLatin},
		{"ru", ScriptLatin},
		{"", ScriptLatin},
		{"not-a-language", ScriptLatin},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ClassifyLanguage(tt.code); got != tt.expected {
				t.Errorf("ClassifyLanguage(%q): expected %v, got %v", tt.code, tt.expected, got)
			}
		})
	}
}

func TestClassifyText(t *testing.T) {
	tests := []struct {
		sample   string
		expected ScriptClass
	}{
		{"こんにちは", ScriptCJK},
		{"漢字テスト", ScriptCJK},
		{"한국어", ScriptCJK},
		{"hello world", ScriptLatin},
		{"mixed これ text", ScriptCJK},
		{"", ScriptLatin},
		{"12345", ScriptLatin},
	}

	for _, tt := range tests {
		if got := ClassifyText(tt.sample); got != tt.expected {
			t.Errorf("ClassifyText(%q): expected %v, got %v", tt.sample, tt.expected, got)
		}
	}
}

func TestIsCJKRune(t *testing.T) {
	cjk := []rune{'あ', 'ア', '漢', '한', 'ｱ', '、'}
	for _, r := range cjk {
		if !IsCJKRune(r) {
			t.Errorf("Expected %q to be CJK", r)
		}
	}

	latin := []rune{'a', 'Z', '1', ' ', 'é', 'д'}
	for _, r := range latin {
		if IsCJKRune(r) {
			t.Errorf("Expected %q not to be CJK", r)
		}
	}
}

func TestPolicyFor(t *testing.T) {
	cjk := PolicyFor(ScriptCJK)
	if cjk.Separator != "" {
		t.Errorf("Expected empty CJK separator, got %q", cjk.Separator)
	}
	if cjk.CharGapScale != 0.8 {
		t.Errorf("Expected CJK char gap scale 0.8, got %v", cjk.CharGapScale)
	}
	if cjk.GlueScale != 1.0 {
		t.Errorf("Expected CJK glue scale 1.0, got %v", cjk.GlueScale)
	}

	latin := PolicyFor(ScriptLatin)
	if latin.Separator != " " {
		t.Errorf("Expected single-space Latin separator, got %q", latin.Separator)
	}
	if latin.CharGapScale >= cjk.CharGapScale {
		t.Error("Expected Latin char gap scale smaller than CJK")
	}
	if latin.GlueScale <= cjk.GlueScale {
		t.Error("Expected Latin glue scale larger than CJK")
	}
}

func TestScriptClassString(t *testing.T) {
	if ScriptCJK.String() != "cjk" {
		t.Errorf("Expected 'cjk', got '%s'", ScriptCJK.String())
	}
	if ScriptLatin.String() != "latin" {
		t.Errorf("Expected 'latin', got '%s'", ScriptLatin.String())
	}
}
