package cssvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/parse/v2/css"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    []string
		wantErr string
	}{
		{
			name:  "animation shorthand",
			value: "slide-in 0.5s ease-out forwards",
			want:  []string{"slide-in", "0.5s", "ease-out", "forwards"},
		},
		{
			name:  "function",
			value: "translateX(100%)",
			want:  []string{"translateX(", "100%", ")"},
		},
		{
			name:  "nested functions",
			value: "translate(calc(100% - 1rem), 0)",
			want:  []string{"translate(", "calc(", "100%", "-", "1rem", ")", ",", "0", ")"},
		},
		{
			name:  "comments dropped",
			value: "1 /* full */",
			want:  []string{"1"},
		},
		{
			name:    "empty",
			value:   "  ",
			wantErr: "empty value",
		},
		{
			name:    "unclosed function",
			value:   "translateX(100%",
			wantErr: "unclosed parenthesis",
		},
		{
			name:    "stray close",
			value:   "100%)",
			wantErr: "unbalanced",
		},
		{
			name:    "mismatched bracket",
			value:   "foo(]",
			wantErr: "unbalanced",
		},
		{
			name:    "unterminated string",
			value:   `"abc`,
			wantErr: "unterminated string",
		},
		{
			name:    "semicolon",
			value:   "1; color: red",
			wantErr: "unexpected \";\"",
		},
		{
			name:    "brace",
			value:   "red }",
			wantErr: "unexpected \"}\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			got := make([]string, len(tokens))
			for i, tok := range tokens {
				got[i] = tok.Text
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitTopLevel(t *testing.T) {
	tokens, err := Lex("spin 1s cubic-bezier(0, 0, 0.2, 1) infinite, fade 2s")
	require.NoError(t, err)

	groups := SplitTopLevel(tokens)
	require.Len(t, groups, 2)
	assert.Equal(t, "spin", groups[0][0].Text)
	assert.Equal(t, css.IdentToken, groups[1][0].Type)
	assert.Equal(t, "fade", groups[1][0].Text)
}

func TestAnimationNames(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "single layer",
			value: "slide-in 0.5s ease-out forwards",
			want:  []string{"slide-in"},
		},
		{
			name:  "name after keywords",
			value: "1s ease-in-out infinite alternate bounce",
			want:  []string{"bounce"},
		},
		{
			name:  "multiple layers",
			value: "spin 1s linear infinite, ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			want:  []string{"spin", "ping"},
		},
		{
			name:  "steps arguments skipped",
			value: "2s steps(4, end) typing",
			want:  []string{"typing"},
		},
		{
			name:  "none",
			value: "none",
			want:  nil,
		},
		{
			name:  "quoted name",
			value: `"wiggle" 1s`,
			want:  []string{"wiggle"},
		},
		{
			name:  "keywords are case insensitive",
			value: "1s EASE-OUT Forwards fade",
			want:  []string{"fade"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnimationNames(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnimationNames_InvalidValue(t *testing.T) {
	_, err := AnimationNames("spin 1s cubic-bezier(0, 0")
	require.Error(t, err)
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		offset  string
		want    float64
		wantErr bool
	}{
		{offset: "0%", want: 0},
		{offset: "100%", want: 100},
		{offset: "12.5%", want: 12.5},
		{offset: "from", want: 0},
		{offset: "TO", want: 100},
		{offset: " 50% ", want: 50},
		{offset: "101%", wantErr: true},
		{offset: "-1%", wantErr: true},
		{offset: "50", wantErr: true},
		{offset: "half%", wantErr: true},
		{offset: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			got, err := ParseOffset(tt.offset)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestParseOffsets(t *testing.T) {
	got, err := ParseOffsets("0%, 50%,to")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 50, 100}, got)

	_, err = ParseOffsets("0%, nope")
	require.Error(t, err)
}

func TestSortOffsets(t *testing.T) {
	keys := []string{"100%", "bogus", "50%", "from", "12.5%", "0%, 100%", "abc"}
	SortOffsets(keys)
	assert.Equal(t, []string{"0%, 100%", "from", "12.5%", "50%", "100%", "abc", "bogus"}, keys)
}

func TestNormalizeProperty(t *testing.T) {
	tests := map[string]string{
		"opacity":         "opacity",
		"backgroundColor": "background-color",
		"WebkitTransform": "-webkit-transform",
		"--tw-translate":  "--tw-translate",
		"border-top":      "border-top",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeProperty(in), in)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		property string
		want     Category
	}{
		{"transform", CategoryEffects},
		{"opacity", CategoryVisual},
		{"margin-inline-start", CategoryLayout},
		{"border-bottom-width", CategoryVisual},
		{"scroll-margin-top", CategoryLayout},
		{"font-stretch", CategoryTypography},
		{"--progress", CategoryCustom},
		{"-webkit-mask-image", CategoryVendor},
		{"opcity", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.property))
		})
	}

	assert.True(t, IsKnownProperty("transform"))
	assert.False(t, IsKnownProperty("transfrom"))
}

func TestIsIdent(t *testing.T) {
	valid := []string{"opacity", "-webkit-transform", "--tw-ring", "_private", "x1"}
	for _, name := range valid {
		assert.True(t, IsIdent(name), name)
	}

	invalid := []string{"", "-", "--", "1x", "-1x", "color:", "a b", "width;"}
	for _, name := range invalid {
		assert.False(t, IsIdent(name), name)
	}
}
