package scaledstyle

import "strings"

// Key suffix markers. A key carrying one of these markers overrides the
// default classification of the key it decorates.
const (
	SuffixVertical   = "_V" // scale vertically, output key without marker
	SuffixHorizontal = "_H" // scale horizontally, output key without marker
	SuffixIgnore     = "_I" // pass through, key kept as-is
)

// suffixRule maps a key marker to the classification it implies.
type suffixRule struct {
	marker string
	axis   Axis
	ignore bool
	strip  bool
}

// suffixRules is checked in order; vertical wins over horizontal, which
// wins over ignore.
var suffixRules = []suffixRule{
	{marker: SuffixVertical, axis: AxisVertical, strip: true},
	{marker: SuffixHorizontal, axis: AxisHorizontal, strip: true},
	{marker: SuffixIgnore, ignore: true},
}

// matchSuffix finds the rule whose marker ends key. The key must be longer
// than the marker so a bare "_V" never classifies as an empty name.
func matchSuffix(key string) (suffixRule, bool) {
	for _, rule := range suffixRules {
		if len(key) > len(rule.marker) && strings.HasSuffix(key, rule.marker) {
			return rule, true
		}
	}
	return suffixRule{}, false
}

// outputKey returns the key written to the resolved block.
func (r suffixRule) outputKey(key string) string {
	if !r.strip {
		return key
	}
	return strings.TrimSuffix(key, r.marker)
}
