package sourcepos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `content:
  - "./internal/**/*.templ"
safelist:
  - alert-error
  - alert-success
theme:
  extend:
    animation:
      slide-in: slide-in 0.5s ease-out forwards
    keyframes:
      slide-in:
        "0%": { transform: translateX(100%), opacity: "0" }
        "12.5%":
          opacity: "0.5"
`

func TestBuild_Lookup(t *testing.T) {
	idx, err := Build([]byte(doc))
	require.NoError(t, err)

	tests := []struct {
		name string
		path []string
		want Position
	}{
		{"top-level key", []string{"content"}, Position{Line: 1, Column: 1}},
		{"sequence item", []string{"content", "0"}, Position{Line: 2, Column: 5}},
		{"second safelist entry", []string{"safelist", "1"}, Position{Line: 5, Column: 5}},
		{"animation key", []string{"theme", "extend", "animation", "slide-in"}, Position{Line: 9, Column: 7}},
		{"quoted offset", []string{"theme", "extend", "keyframes", "slide-in", "0%"}, Position{Line: 12, Column: 9}},
		{"flow mapping key", []string{"theme", "extend", "keyframes", "slide-in", "0%", "opacity"}, Position{Line: 12, Column: 46}},
		{"dotted key", []string{"theme", "extend", "keyframes", "slide-in", "12.5%", "opacity"}, Position{Line: 14, Column: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.Lookup(tt.path...)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNearest(t *testing.T) {
	idx, err := Build([]byte(doc))
	require.NoError(t, err)

	// keyframes for "fade" do not exist; the parent key is reported
	got := idx.Nearest("theme", "extend", "keyframes", "fade")
	assert.Equal(t, Position{Line: 10, Column: 5}, got)

	assert.False(t, idx.Nearest("missing").IsValid())
}

func TestKeys(t *testing.T) {
	idx, err := Build([]byte("a:\n  b: 1\nc: [x, y]\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"a"}, {"a", "b"}, {"c"}}, idx.Keys())
}

func TestLine(t *testing.T) {
	idx, err := Build([]byte("a: 1\r\nb: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, "a: 1", idx.Line(1))
	assert.Equal(t, "b: 2", idx.Line(2))
	assert.Empty(t, idx.Line(0))
	assert.Empty(t, idx.Line(99))
}

func TestBuild_JSON(t *testing.T) {
	idx, err := Build([]byte(`{
  "content": ["./src/**/*.html"],
  "safelist": []
}`))
	require.NoError(t, err)

	pos, ok := idx.Lookup("safelist")
	require.True(t, ok)
	assert.Equal(t, 3, pos.Line)
}

func TestNilIndex(t *testing.T) {
	var idx *Index

	_, ok := idx.Lookup("content")
	assert.False(t, ok)
	assert.Nil(t, idx.Keys())
	assert.Empty(t, idx.Line(1))
}

func TestBuild_InvalidYAML(t *testing.T) {
	_, err := Build([]byte("content: [unclosed"))
	require.Error(t, err)
}

func TestBuild_MergeKeys(t *testing.T) {
	idx, err := Build([]byte(`shared: &shared
  animation:
    fade: fade 1s
  keyframes:
    fade: {}
theme:
  extend:
    <<: *shared
    animation:
      spin: spin 1s
`))
	require.NoError(t, err)

	pos, ok := idx.Lookup("theme", "extend", "keyframes")
	require.True(t, ok)
	assert.Equal(t, Position{Line: 4, Column: 3}, pos)

	pos, ok = idx.Lookup("theme", "extend", "animation")
	require.True(t, ok)
	assert.Equal(t, Position{Line: 9, Column: 5}, pos)

	// the explicit animation mapping replaces the merged one
	_, ok = idx.Lookup("theme", "extend", "animation", "fade")
	assert.False(t, ok)

	_, ok = idx.Lookup("theme", "extend", "<<")
	assert.False(t, ok)
	assert.NotContains(t, idx.Keys(), []string{"theme", "extend", "<<"})
}

func TestBuild_Alias(t *testing.T) {
	idx, err := Build([]byte("base: &base\n  opacity: 0\nstep: *base\n"))
	require.NoError(t, err)

	pos, ok := idx.Lookup("step", "opacity")
	require.True(t, ok)
	assert.Equal(t, Position{Line: 2, Column: 3}, pos)
}
