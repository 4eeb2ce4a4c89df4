// Package toon parses and encodes TOON (Token-Oriented Object Notation)
// documents, the format used for the game's balance config files.
//
// A TOON document is indentation-structured. Objects are "key: value"
// lines with nested blocks indented below a bare "key:" line. Arrays
// declare their length in the header, either inline
//
//	tags[3]: a,b,c
//
// or as a block of "- item" lines under "[3]:". In strict mode a
// declared length that does not match the item count is an error.
package toon

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ParseError describes a malformed TOON construct.
type ParseError struct {
	Line int // 1-based line number, 0 if unknown
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toon: line %d: %s", e.Line, e.Msg)
	}
	return "toon: " + e.Msg
}

// Parser holds parse options. The zero value is a lenient parser;
// set Strict to enforce declared array lengths.
type Parser struct {
	Strict bool

	lines []string
}

var arrayHeaderRe = regexp.MustCompile(`^(?:([A-Za-z_][A-Za-z0-9_.]*))?\[([0-9]+)([|\t])?\]:(.*)$`)

// Parse decodes a TOON document. The result is a map[string]any for
// object roots, []any for array roots, or a bare primitive.
func (p *Parser) Parse(content string) (any, error) {
	p.lines = strings.Split(content, "\n")
	for i, ln := range p.lines {
		p.lines[i] = strings.TrimRight(ln, " \t\r")
	}

	first := ""
	for _, ln := range p.lines {
		if strings.TrimSpace(ln) != "" {
			first = ln
			break
		}
	}
	if first == "" {
		return map[string]any{}, nil
	}

	if m := arrayHeaderRe.FindStringSubmatch(strings.TrimSpace(first)); m != nil && m[1] == "" {
		arr, _, err := p.parseArray(p.indexOf(first), -1)
		return arr, err
	}
	return p.parseObject(0, -1)
}

// Parse decodes a TOON document with strict length checking.
func Parse(content string) (any, error) {
	p := &Parser{Strict: true}
	return p.Parse(content)
}

// ParseObject decodes a document whose root must be an object.
func ParseObject(content string) (map[string]any, error) {
	v, err := Parse(content)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ParseError{Msg: fmt.Sprintf("root is %T, want object", v)}
	}
	return obj, nil
}

// LoadFile reads and parses the TOON file at path.
func LoadFile(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("toon: %w", err)
	}
	return ParseObject(string(b))
}

func (p *Parser) indexOf(line string) int {
	for i, ln := range p.lines {
		if ln == line {
			return i
		}
	}
	return 0
}

func indentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

// parseObject consumes key/value lines indented deeper than
// parentIndent starting at line i. It returns when the indentation
// falls back to the parent level.
func (p *Parser) parseObject(i, parentIndent int) (map[string]any, error) {
	result := map[string]any{}

	for i < len(p.lines) {
		line := p.lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}
		indent := indentOf(line)
		if indent <= parentIndent {
			break
		}

		trimmed := strings.TrimSpace(line)

		if m := arrayHeaderRe.FindStringSubmatch(trimmed); m != nil && m[1] != "" {
			// keyed array: "key[N]: ..." or "key[N]:" with list items below
			arr, next, err := p.parseArray(i, indent-1)
			if err != nil {
				return nil, err
			}
			result[m[1]] = arr
			i = next
			continue
		}

		colon := strings.Index(trimmed, ":")
		if colon < 0 {
			i++
			continue
		}
		key := strings.TrimSpace(trimmed[:colon])
		val := strings.TrimSpace(trimmed[colon+1:])

		if val != "" {
			result[key] = parsePrimitive(val)
			i++
			continue
		}

		// Bare "key:" means a nested object, nested array header, or empty value.
		i++
		j := i
		for j < len(p.lines) && strings.TrimSpace(p.lines[j]) == "" {
			j++
		}
		if j >= len(p.lines) || indentOf(p.lines[j]) <= indent {
			result[key] = map[string]any{}
			continue
		}
		next := strings.TrimSpace(p.lines[j])
		if m := arrayHeaderRe.FindStringSubmatch(next); m != nil && m[1] == "" {
			arr, after, err := p.parseArray(j, indent)
			if err != nil {
				return nil, err
			}
			result[key] = arr
			i = after
			continue
		}
		obj, err := p.parseObject(j, indent)
		if err != nil {
			return nil, err
		}
		result[key] = obj
		// advance past the nested block
		i = j
		for i < len(p.lines) {
			if strings.TrimSpace(p.lines[i]) != "" && indentOf(p.lines[i]) <= indent {
				break
			}
			i++
		}
	}

	return result, nil
}

// parseArray consumes an array starting at the header on line i.
// Returns the values and the index of the first line after the array.
func (p *Parser) parseArray(i, parentIndent int) ([]any, int, error) {
	header := strings.TrimSpace(p.lines[i])
	m := arrayHeaderRe.FindStringSubmatch(header)
	if m == nil {
		if p.Strict {
			return nil, i, &ParseError{Line: i + 1, Msg: "invalid array header: " + header}
		}
		return []any{}, i + 1, nil
	}

	length, _ := strconv.Atoi(m[2])
	delim := byte(',')
	if m[3] != "" {
		delim = m[3][0]
	}

	if inline := strings.TrimSpace(m[4]); inline != "" {
		values := splitInline(inline, delim)
		if p.Strict && len(values) != length {
			return nil, i, &ParseError{Line: i + 1,
				Msg: fmt.Sprintf("array length mismatch: declared %d, got %d", length, len(values))}
		}
		if len(values) > length {
			values = values[:length]
		}
		return values, i + 1, nil
	}

	headerIndent := indentOf(p.lines[i])
	var result []any
	j := i + 1
	for j < len(p.lines) {
		line := p.lines[j]
		if strings.TrimSpace(line) == "" {
			j++
			continue
		}
		if indentOf(line) <= parentIndent || indentOf(line) < headerIndent {
			break
		}
		item := strings.TrimSpace(line)
		if item == "-" {
			result = append(result, map[string]any{})
			j++
			continue
		}
		if strings.HasPrefix(item, "- ") {
			body := strings.TrimSpace(item[2:])
			if strings.HasSuffix(body, ":") || strings.Contains(body, ": ") {
				// "- key: value" opens an object item spanning the
				// indented lines below the dash
				obj, after, err := p.parseListObject(j, indentOf(line))
				if err != nil {
					return nil, j, err
				}
				result = append(result, obj)
				j = after
				continue
			}
			result = append(result, parsePrimitive(body))
			j++
			continue
		}
		break
	}

	if p.Strict && len(result) != length {
		return nil, j, &ParseError{Line: i + 1,
			Msg: fmt.Sprintf("array length mismatch: declared %d, got %d", length, len(result))}
	}
	if len(result) > length {
		result = result[:length]
	}
	return result, j, nil
}

// parseListObject parses a "- key: value" list item plus any following
// lines indented past the dash as one object.
func (p *Parser) parseListObject(i, dashIndent int) (map[string]any, int, error) {
	obj := map[string]any{}

	first := strings.TrimSpace(p.lines[i])[2:]
	if colon := strings.Index(first, ":"); colon >= 0 {
		key := strings.TrimSpace(first[:colon])
		val := strings.TrimSpace(first[colon+1:])
		if val != "" {
			obj[key] = parsePrimitive(val)
		} else {
			obj[key] = map[string]any{}
		}
	}

	j := i + 1
	for j < len(p.lines) {
		line := p.lines[j]
		if strings.TrimSpace(line) == "" {
			j++
			continue
		}
		ind := indentOf(line)
		if ind <= dashIndent {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || trimmed == "-" {
			break
		}
		colon := strings.Index(trimmed, ":")
		if colon < 0 {
			j++
			continue
		}
		key := strings.TrimSpace(trimmed[:colon])
		val := strings.TrimSpace(trimmed[colon+1:])
		if val != "" {
			obj[key] = parsePrimitive(val)
		} else {
			obj[key] = map[string]any{}
		}
		j++
	}
	return obj, j, nil
}

// splitInline splits inline array values on delim, honoring quotes
// and backslash escapes.
func splitInline(s string, delim byte) []any {
	var values []any
	var cur strings.Builder
	inQuotes := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
			cur.WriteByte(c)
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == delim && !inQuotes:
			values = append(values, parsePrimitive(strings.TrimSpace(cur.String())))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		values = append(values, parsePrimitive(strings.TrimSpace(cur.String())))
	}
	return values
}

var (
	intRe   = regexp.MustCompile(`^-?\d+$`)
	floatRe = regexp.MustCompile(`^-?\d*\.\d+$`)
	sciRe   = regexp.MustCompile(`^-?\d+(?:\.\d+)?[eE][+-]?\d+$`)
)

func parsePrimitive(token string) any {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) && len(token) >= 2 {
		return unescape(token[1 : len(token)-1])
	}
	switch token {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if intRe.MatchString(token) {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return n
		}
	}
	if floatRe.MatchString(token) || sciRe.MatchString(token) {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return f
		}
	}
	return token
}

func unescape(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			b.WriteRune(r)
			continue
		}
		switch r {
		case 'n':
			b.WriteRune('\n')
		case 'r':
			b.WriteRune('\r')
		case 't':
			b.WriteRune('\t')
		default:
			b.WriteRune(r)
		}
		escaped = false
	}
	return b.String()
}
