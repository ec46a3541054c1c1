package vocab

import "testing"

func TestSpacingPx(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"0.5", 2},
		{"4", 16},
		{"16", 64},
		{"96", 384},
		{"13", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := SpacingPx(tt.in); got != tt.want {
			t.Errorf("SpacingPx(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSpacingToken(t *testing.T) {
	tests := []struct {
		prop  SpacingProp
		side  Side
		value string
		want  string
	}{
		{Padding, Top, "4", "pt-4"},
		{Padding, Left, "0.5", "pl-0.5"},
		{Margin, Right, "8", "mr-8"},
		{Margin, Bottom, "0", "mb-0"},
	}
	for _, tt := range tests {
		if got := SpacingToken(tt.prop, tt.side, tt.value); got != tt.want {
			t.Errorf("SpacingToken(%s, %s, %s) = %q, want %q", tt.prop, tt.side, tt.value, got, tt.want)
		}
	}
	if got := GapToken("x", "6"); got != "gap-x-6" {
		t.Errorf("GapToken = %q", got)
	}
}

func TestColorToken(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"blue-500", "bg-blue-500"},
		{"white", "bg-white"},
		{"#ff0000", "bg-[#ff0000]"},
		{"rgb(1, 2, 3)", "bg-[rgb(1,_2,_3)]"},
		{"blue-550", "bg-[blue-550]"},
	}
	for _, tt := range tests {
		if got := ColorToken("bg", tt.value); got != tt.want {
			t.Errorf("ColorToken(bg, %q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestVocabularyChecks(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		ok    []string
		bad   []string
	}{
		{"order", IsOrder, []string{"none", "first", "last", "1", "12"}, []string{"0", "13", "middle"}},
		{"justify", IsJustify, []string{"start", "between", "evenly"}, []string{"stretch", ""}},
		{"align", IsAlign, []string{"stretch", "baseline"}, []string{"between", "auto"}},
		{"alignSelf", IsAlignSelf, []string{"auto", "center"}, []string{"evenly"}},
		{"animation", IsAnimation, []string{"none", "float", "spin"}, []string{"wobble"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.ok {
				if !tt.check(v) {
					t.Errorf("%q should be accepted", v)
				}
			}
			for _, v := range tt.bad {
				if tt.check(v) {
					t.Errorf("%q should be rejected", v)
				}
			}
		})
	}
}

func TestTokenCSSCoversTokens(t *testing.T) {
	for name := range shadowTokens {
		if _, ok := TokenCSS(ShadowToken(name)); !ok {
			t.Errorf("no css for shadow %q", name)
		}
	}
	for name := range blurTokens {
		if _, ok := TokenCSS(BlurToken(name)); !ok {
			t.Errorf("no css for blur %q", name)
		}
	}
}
