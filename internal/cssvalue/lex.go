// Package cssvalue lexes the CSS fragments that appear inside a config
// document: animation shorthands, keyframe offsets and declaration values.
package cssvalue

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Token is a single significant token of a CSS value.
// Whitespace and comments are dropped by Lex.
type Token struct {
	Type css.TokenType
	Text string
}

// Lex tokenizes a CSS component value such as "slide-in 0.5s ease-out forwards"
// or "translateX(100%)". It rejects values that could not appear on the right
// hand side of a declaration: unbalanced parentheses, unterminated strings,
// bad urls, braces and semicolons.
func Lex(value string) ([]Token, error) {
	if strings.TrimSpace(value) == "" {
		return nil, errors.New("empty value")
	}

	lexer := css.NewLexer(parse.NewInputString(value))

	var tokens []Token
	var depth []css.TokenType // open ( and [ in nesting order

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("lex %q: %w", value, err)
			}
			break
		}

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.BadStringToken:
			return nil, fmt.Errorf("unterminated string in %q", value)
		case css.StringToken:
			// the lexer accepts a string cut off by the end of input
			if len(text) < 2 || text[len(text)-1] != text[0] {
				return nil, fmt.Errorf("unterminated string in %q", value)
			}
		case css.BadURLToken:
			return nil, fmt.Errorf("malformed url() in %q", value)
		case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken:
			return nil, fmt.Errorf("unexpected %q in %q", string(text), value)
		case css.FunctionToken, css.LeftParenthesisToken:
			depth = append(depth, css.LeftParenthesisToken)
		case css.LeftBracketToken:
			depth = append(depth, css.LeftBracketToken)
		case css.RightParenthesisToken, css.RightBracketToken:
			want := css.LeftParenthesisToken
			if tt == css.RightBracketToken {
				want = css.LeftBracketToken
			}
			if len(depth) == 0 || depth[len(depth)-1] != want {
				return nil, fmt.Errorf("unbalanced %q in %q", string(text), value)
			}
			depth = depth[:len(depth)-1]
		}

		// the lexer reuses its buffer
		tokens = append(tokens, Token{Type: tt, Text: string(text)})
	}

	if len(depth) > 0 {
		return nil, fmt.Errorf("unclosed parenthesis in %q", value)
	}
	return tokens, nil
}

// SplitTopLevel splits tokens on commas that are not nested inside a function
// or parenthesis. "a 1s, b 2s" yields two groups.
func SplitTopLevel(tokens []Token) [][]Token {
	var groups [][]Token
	var current []Token
	depth := 0

	for _, tok := range tokens {
		switch tok.Type {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				groups = append(groups, current)
				current = nil
				continue
			}
		}
		current = append(current, tok)
	}

	return append(groups, current)
}
