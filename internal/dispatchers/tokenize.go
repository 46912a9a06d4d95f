package dispatchers

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenize splits a command line on whitespace. Double quotes group words
// into one token and a backslash escapes the next character, so
//
//	msg steve "meet at spawn"
//
// yields three tokens.
func Tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		inToken bool
		quoted  bool
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			inToken = true
		case r == '"':
			quoted = !quoted
			inToken = true
		case unicode.IsSpace(r) && !quoted:
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if escaped {
		return nil, fmt.Errorf("trailing backslash in %q", line)
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
