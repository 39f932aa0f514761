// Package twconfig loads, validates and writes the configuration document
// of a utility-CSS generator.
//
// The document names the template files the generator scans for class
// names (content), the classes it must always emit (safelist), and theme
// extensions: named animations and the keyframes they run.
//
// # Loading
//
// Documents are read from YAML or JSON:
//
//	doc, err := twconfig.Load("twconfig.yaml")
//
// # Validation
//
// Validate checks the data contract and reports findings as issues with
// source positions:
//
//	result, err := twconfig.Validate(doc, twconfig.ValidateOptions{})
//	if result.HasErrors() {
//		// an animation without keyframes, a duplicate safelist entry, ...
//	}
//
// # Writing
//
// Encode writes a Config as YAML, JSON or a CommonJS module the generator
// can import directly:
//
//	err := twconfig.Encode(os.Stdout, twconfig.Default(), twconfig.FormatJS)
//
// # CLI Tool
//
// twconfig also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/twconfig/cmd/twconfig@latest
package twconfig
