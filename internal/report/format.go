package report

import (
	"sort"
	"strconv"

	"github.com/maruel/natural"
	"github.com/yacobolo/scaledstyle"
)

// formatFloat prints ratios and scaled numbers without exponent notation
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatValue(v scaledstyle.Value) string {
	if n, ok := v.Float(); ok {
		return formatFloat(n)
	}
	return v.String()
}

// blockNames returns the names of t in natural order ("item2" before "item10")
func blockNames(t scaledstyle.Table) []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}
