package picker

import (
	"errors"
	"strings"
)

// ErrEmptyCommand is returned when the invocation string contains no
// program at all.
var ErrEmptyCommand = errors.New("empty picker command")

// Tokenize splits a picker invocation string into a program name and
// its arguments with shell-like quoting rules:
//
//   - unquoted spaces separate tokens, and runs of spaces emit empty
//     tokens (plain split semantics)
//   - double or single quotes open a quoted span closed by the same
//     character; the other quote character is literal inside
//   - '\' copies the next character literally, so an escaped space or
//     quote loses its special meaning
//
// A quote left open at the end of input is tolerated: the partial
// token is emitted as-is rather than reported as an error.
func Tokenize(command string) (string, []string, error) {
	if command == "" {
		return "", nil, ErrEmptyCommand
	}

	var tokens []string
	var buf strings.Builder

	var quote rune // active quote character, 0 outside quoted spans
	escaped := false
	justClosed := false // a quote just emitted its token

	for _, ch := range command {
		if escaped {
			buf.WriteRune(ch)
			escaped = false
			justClosed = false
			continue
		}

		if quote != 0 {
			if ch == quote {
				tokens = append(tokens, buf.String())
				buf.Reset()
				quote = 0
				justClosed = true
			} else {
				buf.WriteRune(ch)
			}
			continue
		}

		switch ch {
		case ' ':
			if justClosed {
				// the closing quote already emitted this token
				justClosed = false
				continue
			}
			tokens = append(tokens, buf.String())
			buf.Reset()
		case '"', '\'':
			quote = ch
			justClosed = false
		case '\\':
			escaped = true
			justClosed = false
		default:
			buf.WriteRune(ch)
			justClosed = false
		}
	}

	// flush the trailing token, including a partial one left behind by
	// an unterminated quote
	if buf.Len() > 0 || quote != 0 {
		tokens = append(tokens, buf.String())
	}

	if len(tokens) == 0 {
		return "", nil, ErrEmptyCommand
	}
	return tokens[0], tokens[1:], nil
}
