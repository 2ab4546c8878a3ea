package extract

// Structural scanning helpers for the object-literal subset used by the
// upstream source. This is not a grammar: it only understands balanced
// braces, string literals, and comments well enough to carve out block and
// entry boundaries without being fooled by braces inside strings.

// scanBalanced returns the index of the brace closing the one at openIdx,
// or -1 when the text ends before the brace is balanced. openIdx must point
// at '{' (or '[' when scanning a list).
func scanBalanced(text string, openIdx int) int {
	open := text[openIdx]
	var close byte
	switch open {
	case '{':
		close = '}'
	case '[':
		close = ']'
	default:
		return -1
	}

	depth := 0
	i := openIdx
	for i < len(text) {
		c := text[i]
		switch c {
		case '\'', '"', '`':
			i = skipString(text, i)
			continue
		case '/':
			if j := skipComment(text, i); j > i {
				i = j
				continue
			}
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return -1
}

// skipString advances past a string literal starting at i, honoring
// backslash escapes. Returns the index just past the closing quote, or
// len(text) when unterminated.
func skipString(text string, i int) int {
	quote := text[i]
	i++
	for i < len(text) {
		switch text[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		}
		i++
	}
	return len(text)
}

// skipComment advances past a // or /* */ comment starting at i. Returns i
// unchanged when i does not start a comment.
func skipComment(text string, i int) int {
	if i+1 >= len(text) {
		return i
	}
	switch text[i+1] {
	case '/':
		for i < len(text) && text[i] != '\n' {
			i++
		}
		return i
	case '*':
		j := i + 2
		for j+1 < len(text) {
			if text[j] == '*' && text[j+1] == '/' {
				return j + 2
			}
			j++
		}
		return len(text)
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
