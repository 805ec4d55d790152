package asm

import (
	"regexp"
	"strings"
	"unicode"
)

// labelRe matches a leading label definition.
var labelRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*:`)

// identRe matches a valid label name.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// splitLabels removes the leading label definitions of a line.
func splitLabels(text string) (labels []string, rest string) {
	rest = strings.TrimSpace(text)
	for {
		match := labelRe.FindStringSubmatch(rest)
		if match == nil {
			return
		}
		labels = append(labels, match[1])
		rest = strings.TrimSpace(rest[len(match[0]):])
	}
}

// tokenize splits a line into words. Operands are separated by
// whitespace and commas, quoted character and string literals are kept
// whole, brackets are words of their own and a '#' outside of quotes
// ends the line.
func tokenize(text string) (words []string, err error) {
	var word strings.Builder
	var quote rune
	escape := false

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for _, ru := range text {
		switch {
		case quote != 0:
			word.WriteRune(ru)
			if escape {
				escape = false
			} else if ru == '\\' {
				escape = true
			} else if ru == quote {
				quote = 0
			}
		case ru == '\'' || ru == '"':
			quote = ru
			word.WriteRune(ru)
		case ru == '#':
			flush()
			return
		case ru == ',' || unicode.IsSpace(ru):
			flush()
		case ru == '[' || ru == ']':
			flush()
			words = append(words, string(ru))
		default:
			word.WriteRune(ru)
		}
	}

	if quote != 0 {
		err = ErrQuoteUnterminated
		return
	}

	flush()
	return
}

// unescape decodes the body of a quoted literal.
func unescape(body string) (text string, ok bool) {
	var sb strings.Builder
	escape := false
	for _, ru := range body {
		if escape {
			switch ru {
			case 'n':
				ru = '\n'
			case 'r':
				ru = '\r'
			case 't':
				ru = '\t'
			case '0':
				ru = 0
			case '\\', '\'', '"':
			default:
				return
			}
			escape = false
		} else if ru == '\\' {
			escape = true
			continue
		}
		if ru > unicode.MaxASCII {
			return
		}
		sb.WriteRune(ru)
	}

	if escape {
		return
	}

	text = sb.String()
	ok = true
	return
}
