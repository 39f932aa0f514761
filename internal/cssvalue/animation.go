package cssvalue

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// animationKeywords are identifiers that belong to an animation longhand
// other than animation-name. An identifier outside this set names keyframes.
var animationKeywords = map[string]bool{
	// animation-timing-function
	"ease":        true,
	"ease-in":     true,
	"ease-out":    true,
	"ease-in-out": true,
	"linear":      true,
	"step-start":  true,
	"step-end":    true,
	// animation-iteration-count
	"infinite": true,
	// animation-direction
	"normal":            true,
	"reverse":           true,
	"alternate":         true,
	"alternate-reverse": true,
	// animation-fill-mode
	"forwards":  true,
	"backwards": true,
	"both":      true,
	// animation-play-state
	"running": true,
	"paused":  true,
	// css-wide
	"initial": true,
	"inherit": true,
	"unset":   true,
	"revert":  true,
}

// AnimationNames returns the keyframes names referenced by an animation
// shorthand, one per comma-separated layer. Layers whose name is "none" or
// that only contain timing keywords contribute nothing.
//
//	AnimationNames("slide-in 0.5s ease-out forwards") // ["slide-in"]
//	AnimationNames("spin 1s linear infinite, fade 2s") // ["spin", "fade"]
func AnimationNames(value string) ([]string, error) {
	tokens, err := Lex(value)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, layer := range SplitTopLevel(tokens) {
		if name := layerName(layer); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// layerName picks the animation-name out of a single shorthand layer.
// Arguments of functions such as cubic-bezier() and steps() are skipped.
func layerName(layer []Token) string {
	depth := 0
	for _, tok := range layer {
		switch tok.Type {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
			continue
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
			continue
		}
		if depth > 0 {
			continue
		}

		switch tok.Type {
		case css.IdentToken:
			ident := strings.ToLower(tok.Text)
			if ident == "none" {
				return ""
			}
			if !animationKeywords[ident] {
				return tok.Text
			}
		case css.StringToken:
			return strings.Trim(tok.Text, `"'`)
		}
	}
	return ""
}
