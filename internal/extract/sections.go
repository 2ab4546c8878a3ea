package extract

import "regexp"

// section is one per-entry fragment of a block body: the quoted (or bare)
// identifier introducing a nested object, and the raw text from that
// identifier up to the next sibling identifier.
type section struct {
	Name     string
	Fragment string
}

// quotedKeyRe is the fallback boundary: a quoted identifier followed by a
// colon, used when the structural scan finds no entries at all (irregular
// formatting in the source).
var quotedKeyRe = regexp.MustCompile(`(['"])([^'"\n]+)['"]\s*:`)

// splitSections divides a block body into per-entry sections. The primary
// scan is depth-aware: it only recognizes "key: {" at the top nesting level
// of the body, so keys inside nested sub-objects can never open a new entry.
// Keys may be quoted model names or bare identifiers (provider settings use
// bare keys). Entries with an empty name are dropped.
func splitSections(body string) []section {
	starts := entryStarts(body)
	if len(starts) == 0 {
		return splitSectionsFallback(body)
	}

	sections := make([]section, 0, len(starts))
	for i, start := range starts {
		end := len(body)
		if i+1 < len(starts) {
			end = starts[i+1].pos
		}
		if start.name == "" {
			continue
		}
		sections = append(sections, section{Name: start.name, Fragment: body[start.pos:end]})
	}
	return sections
}

type entryStart struct {
	name string
	pos  int
}

// entryStarts scans the body once, tracking brace depth, and records every
// top-level "key: {" occurrence.
func entryStarts(body string) []entryStart {
	var starts []entryStart
	depth := 0
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			strEnd := skipString(body, i)
			if strEnd < i+2 || body[strEnd-1] != c {
				// unterminated literal, nothing structural can follow
				return starts
			}
			if depth == 0 {
				if name, ok := keyAt(body, strEnd, body[i+1:strEnd-1]); ok {
					starts = append(starts, entryStart{name: name, pos: i})
				}
			}
			i = strEnd
			continue
		case c == '/':
			if j := skipComment(body, i); j > i {
				i = j
				continue
			}
			i++
		case c == '{' || c == '[':
			depth++
			i++
		case c == '}' || c == ']':
			depth--
			i++
		case depth == 0 && isIdentStartByte(c):
			identEnd := i + 1
			for identEnd < len(body) && isIdentByte(body[identEnd]) {
				identEnd++
			}
			if name, ok := keyAt(body, identEnd, body[i:identEnd]); ok {
				starts = append(starts, entryStart{name: name, pos: i})
			}
			i = identEnd
		default:
			i++
		}
	}
	return starts
}

// keyAt reports whether the text following a candidate key (at index i, just
// past the key) is ": {", making the key an entry start.
func keyAt(body string, i int, name string) (string, bool) {
	for i < len(body) && isSpaceByte(body[i]) {
		i++
	}
	if i >= len(body) || body[i] != ':' {
		return "", false
	}
	i++
	for i < len(body) && isSpaceByte(body[i]) {
		i++
	}
	if i >= len(body) || body[i] != '{' {
		return "", false
	}
	return name, true
}

func isIdentStartByte(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// splitSectionsFallback splits immediately before each quoted identifier
// followed by a colon. Less precise than the structural scan but tolerant of
// bodies the scanner could not segment.
func splitSectionsFallback(body string) []section {
	matches := quotedKeyRe.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]section, 0, len(matches))
	for i, m := range matches {
		name := body[m[4]:m[5]]
		if name == "" {
			continue
		}
		end := len(body)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, section{Name: name, Fragment: body[m[0]:end]})
	}
	return sections
}
