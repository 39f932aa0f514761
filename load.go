package twconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/yacobolo/twconfig/internal/sourcepos"
)

// Format is a serialization format of the document.
type Format string

// Supported formats. FormatJS is write-only.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatJS   Format = "js"
)

// ErrUnknownFormat is returned for file extensions and format names that
// are not supported.
var ErrUnknownFormat = errors.New("unknown config format")

// docDelim separates koanf key paths. Keyframe offsets such as "12.5%"
// contain dots, so the usual "." delimiter cannot be used.
const docDelim = "\x1f"

// ParseFormat resolves a format name ("yaml", "yml", "json", "js").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "js", "cjs":
		return FormatJS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Document is a loaded configuration together with the source it was
// decoded from.
type Document struct {
	// Path is the file the document was read from, or a display name.
	Path   string
	Format Format
	Config *Config
	// Source holds the raw bytes; nil for documents built in code.
	Source []byte

	index *sourcepos.Index
}

// NewDocument wraps a Config built in code. Issues found in it carry no
// line information.
func NewDocument(name string, cfg *Config) *Document {
	return &Document{Path: name, Config: cfg}
}

// Load reads and decodes the document at path. The format is inferred from
// the extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a document from data. Scalar values are decoded weakly, so
// `opacity: 0` yields the string "0".
func Parse(data []byte, format Format) (*Document, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: cannot parse %q", ErrUnknownFormat, format)
	}

	k := koanf.New(docDelim)
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", format, err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	doc := &Document{
		Format: format,
		Config: cfg,
		Source: data,
	}

	// Positions are best effort: tab-indented JSON is valid JSON but not
	// valid YAML, and issues are still reported without line numbers.
	if idx, err := sourcepos.Build(data); err == nil {
		doc.index = idx
	}

	return doc, nil
}

// name returns the display name used in issue positions.
func (d *Document) name() string {
	if d.Path != "" {
		return d.Path
	}
	return "<config>"
}
