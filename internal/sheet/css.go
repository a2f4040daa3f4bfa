package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/scaledstyle"
)

// cssToken is a lexer token copied out of the input buffer
type cssToken struct {
	tt   css.TokenType
	text string
}

// cssParser maintains context while parsing one CSS definition file
type cssParser struct {
	lexer    *css.Lexer
	filename string
	sheet    *Sheet
}

// ParseCSS parses CSS definitions. Class selectors (".card") and bare
// names ("card") both name a block; "@media (orientation: landscape)"
// routes the enclosed blocks to the landscape table.
func ParseCSS(content string, filename string) (*Sheet, error) {
	p := &cssParser{
		lexer:    css.NewLexer(parse.NewInputString(content)),
		filename: filename,
		sheet:    New(),
	}
	if err := p.parseRules(p.sheet.Base, false); err != nil {
		return nil, err
	}
	return p.sheet, nil
}

// next returns the next token that is neither whitespace nor a comment
func (p *cssParser) next() (css.TokenType, []byte) {
	for {
		tt, text := p.lexer.Next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, text
		}
	}
}

// lexErr returns the lexer error, or nil at a clean end of input
func (p *cssParser) lexErr() error {
	if err := p.lexer.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("%s: %w", p.filename, err)
	}
	return nil
}

// parseRules reads rules until the end of input, or until the closing
// brace of the enclosing at-rule when nested
func (p *cssParser) parseRules(target scaledstyle.Table, nested bool) error {
	for {
		tt, text := p.next()
		switch tt {
		case css.ErrorToken:
			if err := p.lexErr(); err != nil {
				return err
			}
			if nested {
				return fmt.Errorf("%s: unexpected end of input in @media block", p.filename)
			}
			return nil

		case css.RightBraceToken:
			if nested {
				return nil
			}

		case css.AtKeywordToken:
			if err := p.handleAtRule(strings.ToLower(string(text))); err != nil {
				return err
			}

		case css.DelimToken:
			if len(text) > 0 && text[0] == '.' {
				tt2, name := p.lexer.Next()
				if tt2 != css.IdentToken {
					return fmt.Errorf("%s: expected class name after '.'", p.filename)
				}
				if err := p.handleRule(target, string(name)); err != nil {
					return err
				}
			}

		case css.IdentToken:
			if err := p.handleRule(target, string(text)); err != nil {
				return err
			}
		}
	}
}

// handleAtRule routes landscape @media blocks to the landscape table and
// skips every other at-rule, including other media queries
func (p *cssParser) handleAtRule(name string) error {
	landscape := false
	for {
		tt, text := p.next()
		switch tt {
		case css.ErrorToken:
			if err := p.lexErr(); err != nil {
				return err
			}
			return fmt.Errorf("%s: unexpected end of input in %s", p.filename, name)

		case css.IdentToken:
			if strings.EqualFold(string(text), "landscape") {
				landscape = true
			}

		case css.SemicolonToken:
			// @import "x"; and friends
			return nil

		case css.LeftBraceToken:
			if name != "@media" || !landscape {
				return p.skipBlock()
			}
			return p.parseRules(p.sheet.Landscape, true)
		}
	}
}

// skipBlock consumes tokens up to the brace closing the current block
func (p *cssParser) skipBlock() error {
	depth := 1
	for depth > 0 {
		tt, _ := p.next()
		switch tt {
		case css.ErrorToken:
			if err := p.lexErr(); err != nil {
				return err
			}
			return fmt.Errorf("%s: unexpected end of input in skipped block", p.filename)
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
	return nil
}

// handleRule reads the rest of a selector list and its declarations
func (p *cssParser) handleRule(target scaledstyle.Table, first string) error {
	names := []string{first}

	for {
		tt, text := p.next()
		if tt == css.ErrorToken {
			if err := p.lexErr(); err != nil {
				return err
			}
			return fmt.Errorf("%s: unexpected end of input after selector %q", p.filename, first)
		}
		if tt == css.LeftBraceToken {
			break
		}

		// Pseudo-classes do not name blocks
		if tt == css.ColonToken {
			p.lexer.Next()
			continue
		}

		// Additional selectors in a list (.a, .b) or bare names (a, b)
		if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
			if tt2, name := p.lexer.Next(); tt2 == css.IdentToken {
				names = append(names, string(name))
			}
			continue
		}
		if tt == css.IdentToken {
			names = append(names, string(text))
		}
	}

	props, err := p.parseDeclarations(first)
	if err != nil {
		return err
	}

	for _, name := range names {
		b := block(target, name)
		for k, v := range props {
			b[k] = v
		}
	}
	return nil
}

// parseDeclarations reads "key: value;" pairs up to the closing brace
func (p *cssParser) parseDeclarations(blockName string) (scaledstyle.Block, error) {
	props := scaledstyle.Block{}

	for {
		tt, text := p.next()
		switch tt {
		case css.ErrorToken:
			if err := p.lexErr(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%s: unexpected end of input in block %q", p.filename, blockName)

		case css.RightBraceToken:
			return props, nil

		case css.SemicolonToken:
			continue

		case css.IdentToken:
			key := propertyKey(string(text))
			if tt2, _ := p.next(); tt2 != css.ColonToken {
				return nil, fmt.Errorf("%s: expected ':' after %q in block %q", p.filename, key, blockName)
			}

			tokens, closed, err := p.readValue()
			if err != nil {
				return nil, fmt.Errorf("%s: block %q, key %q: %w", p.filename, blockName, key, err)
			}
			if value, ok := cssValue(tokens); ok {
				props[key] = value
			}
			if closed {
				return props, nil
			}

		default:
			return nil, fmt.Errorf("%s: unexpected %s %q in block %q", p.filename, tt, text, blockName)
		}
	}
}

// readValue collects value tokens up to ';' or '}' at nesting level zero.
// closed reports whether the block's closing brace ended the value.
func (p *cssParser) readValue() (tokens []cssToken, closed bool, err error) {
	depth := 0
	for {
		tt, text := p.lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := p.lexErr(); err != nil {
				return nil, false, err
			}
			return nil, false, fmt.Errorf("unexpected end of input")
		case css.CommentToken:
			continue
		case css.SemicolonToken:
			if depth == 0 {
				return tokens, false, nil
			}
		case css.RightBraceToken:
			if depth == 0 {
				return tokens, true, nil
			}
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		}
		tokens = append(tokens, cssToken{tt: tt, text: string(text)})
	}
}

// cssValue converts value tokens. "[a, b]" is a device-class pair, a lone
// number is a number and everything else is kept as a string.
func cssValue(tokens []cssToken) (scaledstyle.Value, bool) {
	tokens = trimWhitespace(tokens)
	if len(tokens) == 0 {
		return scaledstyle.Value{}, false
	}

	last := len(tokens) - 1
	if tokens[0].tt == css.LeftBracketToken && tokens[last].tt == css.RightBracketToken {
		var slots []scaledstyle.Value
		for _, slot := range splitTopLevel(tokens[1:last]) {
			if slot = trimWhitespace(slot); len(slot) > 0 {
				slots = append(slots, cssScalar(slot))
			}
		}
		return scaledstyle.Pair(slots...), true
	}

	return cssScalar(tokens), true
}

// cssScalar converts a single term to a number or a string
func cssScalar(tokens []cssToken) scaledstyle.Value {
	if len(tokens) == 1 {
		switch tokens[0].tt {
		case css.NumberToken:
			if f, err := strconv.ParseFloat(tokens[0].text, 64); err == nil {
				return scaledstyle.Number(f)
			}
		case css.StringToken:
			return scaledstyle.String(unquote(tokens[0].text))
		}
	}

	var sb strings.Builder
	for _, t := range tokens {
		if t.tt == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(t.text)
	}
	return scaledstyle.String(sb.String())
}

// splitTopLevel splits tokens on commas outside parentheses and brackets
func splitTopLevel(tokens []cssToken) [][]cssToken {
	var parts [][]cssToken
	var current []cssToken
	depth := 0
	for _, t := range tokens {
		switch t.tt {
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, current)
				current = nil
				continue
			}
		}
		current = append(current, t)
	}
	return append(parts, current)
}

func trimWhitespace(tokens []cssToken) []cssToken {
	for len(tokens) > 0 && tokens[0].tt == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].tt == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// propertyKey converts kebab-case CSS names to the camelCase keys the
// rules use ("align-self" -> "alignSelf"). Vendor-prefixed names and
// names without dashes are returned unchanged.
func propertyKey(name string) string {
	if strings.HasPrefix(name, "-") || !strings.Contains(name, "-") {
		return name
	}
	parts := strings.Split(name, "-")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}
