package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/yacobolo/scaledstyle"
)

// WriteCSS writes the resolved tables back as CSS definitions. The output
// parses with the sheet loader; opaque values cannot be expressed and are
// emitted as comments.
func WriteCSS(w io.Writer, r *Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "/* screen %s (%s), baseline %s */\n", r.Screen, r.Device, r.Baseline)

	writeCSSTable(&sb, r.Base, "")
	if len(r.Landscape) > 0 {
		sb.WriteString("\n@media (orientation: landscape) {\n")
		writeCSSTable(&sb, r.Landscape, "  ")
		sb.WriteString("}\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCSSTable(sb *strings.Builder, t scaledstyle.Table, indent string) {
	for _, name := range blockNames(t) {
		fmt.Fprintf(sb, "\n%s.%s {\n", indent, name)
		b := t[name]
		for _, key := range b.Keys() {
			v := b[key]
			if v.Kind() == scaledstyle.KindOpaque {
				fmt.Fprintf(sb, "%s  /* %s: %s */\n", indent, kebabCase(key), strings.ReplaceAll(v.String(), "*/", "* /"))
				continue
			}
			fmt.Fprintf(sb, "%s  %s: %s;\n", indent, kebabCase(key), cssText(v))
		}
		fmt.Fprintf(sb, "%s}\n", indent)
	}
}

func cssText(v scaledstyle.Value) string {
	switch v.Kind() {
	case scaledstyle.KindNumber:
		return formatValue(v)
	case scaledstyle.KindPair:
		parts := make([]string, len(v.Slots()))
		for i, s := range v.Slots() {
			parts[i] = cssText(s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		s, _ := v.Text()
		if needsQuote(s) {
			return strconv.Quote(s)
		}
		return s
	}
}

// needsQuote reports whether s would not read back as the same string
func needsQuote(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	return strings.ContainsAny(s, ";{}[],\"'\n")
}

// kebabCase turns camelCase keys into CSS property names. Suffix markers
// and vendor-prefixed names are kept.
func kebabCase(key string) string {
	if strings.HasPrefix(key, "-") {
		return key
	}
	var sb strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && runes[i-1] != '_' {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
