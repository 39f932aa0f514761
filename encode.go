package twconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/twconfig/internal/cssvalue"
	"gopkg.in/yaml.v3"
)

// jsHeader annotates the JavaScript module for editor type checking.
const jsHeader = "/** @type {import('tailwindcss').Config} */\nmodule.exports = "

// Encode writes cfg in the given format. Output is deterministic: top-level
// keys keep document order, names are sorted, and keyframe selectors are
// sorted by offset so "100%" follows "50%".
func Encode(w io.Writer, cfg *Config, format Format) error {
	tree := orderedTree(cfg)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()

	case FormatJSON:
		data, err := marshalJSON(tree)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err

	case FormatJS:
		data, err := marshalJSON(tree)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s%s;\n", jsHeader, data)
		return err
	}

	return fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, format)
}

// Marshal returns the encoded document.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalJSON(tree orderedMap) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// orderedMap is a mapping that encodes its entries in slice order.
type orderedMap []orderedEntry

type orderedEntry struct {
	Key   string
	Value any
}

// MarshalJSON implements json.Marshaler.
func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, e.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONValue appends v without escaping HTML characters, which are
// common in arbitrary-variant class names such as "[&>svg]:w-4".
func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // trailing newline
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m orderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		value := &yaml.Node{}
		if err := value.Encode(e.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

func orderedTree(cfg *Config) orderedMap {
	content := cfg.Content
	if content == nil {
		content = []string{}
	}
	safelist := cfg.Safelist
	if safelist == nil {
		safelist = []string{}
	}

	extend := cfg.Theme.Extend
	keyframes := make(orderedMap, 0, len(extend.Keyframes))
	for _, name := range sortedKeys(extend.Keyframes) {
		frames := extend.Keyframes[name]

		offsets := sortedKeys(frames)
		cssvalue.SortOffsets(offsets)

		steps := make(orderedMap, 0, len(frames))
		for _, offset := range offsets {
			steps = append(steps, orderedEntry{Key: offset, Value: stringMap(frames[offset])})
		}
		keyframes = append(keyframes, orderedEntry{Key: name, Value: steps})
	}

	return orderedMap{
		{Key: "content", Value: content},
		{Key: "safelist", Value: safelist},
		{Key: "theme", Value: orderedMap{
			{Key: "extend", Value: orderedMap{
				{Key: "animation", Value: stringMap(extend.Animation)},
				{Key: "keyframes", Value: keyframes},
			}},
		}},
	}
}

func stringMap[M ~map[string]string](m M) orderedMap {
	out := make(orderedMap, 0, len(m))
	for _, k := range sortedKeys(m) {
		out = append(out, orderedEntry{Key: k, Value: m[k]})
	}
	return out
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
