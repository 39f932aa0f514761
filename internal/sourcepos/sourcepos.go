// Package sourcepos maps paths inside a YAML or JSON document to the line and
// column where they appear, so findings about a decoded value can point back
// at the text a maintainer edits.
package sourcepos

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Position is a 1-based location in a source file.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position refers to a real location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Index records the position of every mapping key and sequence item in a
// document. Paths are the chain of mapping keys and sequence indexes leading
// to a node, for example ["theme", "extend", "keyframes", "slide-in", "0%"]
// or ["safelist", "2"].
type Index struct {
	lines     []string
	positions map[string]Position
	keys      [][]string
	following map[*yaml.Node]bool
}

// sep never appears in keys produced by a YAML parser from printable text.
const sep = "\x00"

// Build parses data (YAML, or JSON as a YAML subset) and indexes it.
func Build(data []byte) (*Index, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	idx := &Index{
		lines:     strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"),
		positions: make(map[string]Position),
		following: make(map[*yaml.Node]bool),
	}
	idx.walk(&root, nil, false)
	return idx, nil
}

// walk indexes n under path. Nodes reached through a merge key ("<<") are
// indexed with merged set: they never replace a position the mapping
// declares itself.
func (idx *Index) walk(n *yaml.Node, path []string, merged bool) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			idx.walk(c, path, merged)
		}
	case yaml.MappingNode:
		var merges []*yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if isMergeKey(key) {
				merges = append(merges, value)
				continue
			}
			p := appendPath(path, key.Value)
			if !idx.record(p, key, merged) {
				// merges are shallow: the mapping's own value wins whole
				continue
			}
			idx.keys = append(idx.keys, p)
			idx.walk(value, p, merged)
		}
		for _, m := range merges {
			idx.merge(m, path)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			p := appendPath(path, strconv.Itoa(i))
			idx.record(p, c, merged)
			idx.walk(c, p, merged)
		}
	case yaml.AliasNode:
		idx.follow(n.Alias, path, merged)
	}
}

// merge indexes the mappings named by a merge key value: an alias, an
// inline mapping or a sequence of either. Earlier mappings win.
func (idx *Index) merge(n *yaml.Node, path []string) {
	if n.Kind == yaml.SequenceNode {
		for _, c := range n.Content {
			idx.follow(c, path, true)
		}
		return
	}
	idx.follow(n, path, true)
}

// follow walks an aliased node unless it is already being walked, which
// happens when an anchor refers to itself.
func (idx *Index) follow(n *yaml.Node, path []string, merged bool) {
	if n == nil || idx.following[n] {
		return
	}
	idx.following[n] = true
	idx.walk(n, path, merged)
	delete(idx.following, n)
}

// record stores the position of path and reports whether it was stored.
func (idx *Index) record(path []string, n *yaml.Node, merged bool) bool {
	k := strings.Join(path, sep)
	if _, ok := idx.positions[k]; ok && merged {
		return false
	}
	idx.positions[k] = Position{Line: n.Line, Column: n.Column}
	return true
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!merge"
}

func appendPath(path []string, elem string) []string {
	p := make([]string, len(path), len(path)+1)
	copy(p, path)
	return append(p, elem)
}

// Lookup returns the exact position of path.
func (idx *Index) Lookup(path ...string) (Position, bool) {
	if idx == nil {
		return Position{}, false
	}
	pos, ok := idx.positions[strings.Join(path, sep)]
	return pos, ok
}

// Nearest returns the position of path, or of its longest indexed prefix when
// path itself is absent (a missing key is reported at its parent).
func (idx *Index) Nearest(path ...string) Position {
	for n := len(path); n > 0; n-- {
		if pos, ok := idx.Lookup(path[:n]...); ok {
			return pos
		}
	}
	return Position{}
}

// Keys returns the path of every mapping key in document order.
func (idx *Index) Keys() [][]string {
	if idx == nil {
		return nil
	}
	return idx.keys
}

// Line returns the text of a 1-based line, or "" when out of range.
func (idx *Index) Line(n int) string {
	if idx == nil || n < 1 || n > len(idx.lines) {
		return ""
	}
	return idx.lines[n-1]
}
