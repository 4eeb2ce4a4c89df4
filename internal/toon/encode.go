package toon

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var bareKeyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Marshal encodes data as a TOON document. Nested objects are written
// as indented blocks, slices as inline arrays with a declared length.
// Map keys are emitted in sorted order so output is deterministic.
func Marshal(data map[string]any) []byte {
	var b strings.Builder
	writeObject(&b, data, 0)
	return []byte(b.String())
}

// WriteFile writes data as TOON to path.
func WriteFile(path string, data map[string]any) error {
	if err := os.WriteFile(path, Marshal(data), 0o644); err != nil {
		return fmt.Errorf("toon: %w", err)
	}
	return nil
}

func writeObject(b *strings.Builder, obj map[string]any, indent int) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pad := strings.Repeat(" ", indent)
	for _, k := range keys {
		switch v := obj[k].(type) {
		case map[string]any:
			fmt.Fprintf(b, "%s%s:\n", pad, formatKey(k))
			writeObject(b, v, indent+2)
		case []any:
			vals := make([]string, len(v))
			for i, item := range v {
				vals[i] = formatPrimitive(item)
			}
			fmt.Fprintf(b, "%s%s[%d]: %s\n", pad, formatKey(k), len(v), strings.Join(vals, ","))
		default:
			fmt.Fprintf(b, "%s%s: %s\n", pad, formatKey(k), formatPrimitive(v))
		}
	}
}

func formatKey(k string) string {
	if bareKeyRe.MatchString(k) {
		return k
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(k) + `"`
}

func formatPrimitive(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		if strings.ContainsAny(t, ":\"\\\n\r\t[]{},") || strings.TrimSpace(t) != t {
			return `"` + strings.NewReplacer(
				`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`,
			).Replace(t) + `"`
		}
		return t
	default:
		return fmt.Sprint(t)
	}
}
