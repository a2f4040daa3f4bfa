package sheet

import (
	"fmt"

	"github.com/yacobolo/scaledstyle"
)

// Issue is a problem found in a definition file
type Issue struct {
	File      string `json:"file" yaml:"file"`
	Block     string `json:"block,omitempty" yaml:"block,omitempty"`
	Key       string `json:"key,omitempty" yaml:"key,omitempty"`
	Landscape bool   `json:"landscape,omitempty" yaml:"landscape,omitempty"`
	Severity  string `json:"severity" yaml:"severity"`
	Text      string `json:"message" yaml:"message"`
}

// Issue severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue messages
const (
	IssueKeyCollision = "%s resolve to %q; %q wins"
	IssueExtraSlots   = "pair has %d slots; only the first two are used"
	IssueOpaqueScaled = "%s key holds a value that is not a number or pair; it passes through unscaled"
	IssueParseFailed  = "%v"
)

// Check inspects the blocks of s as rules would classify them. It reports
// keys that resolve to the same output name, pairs with extra slots and
// non-numeric values under scaled keys.
func Check(s *Sheet, file string, rules scaledstyle.Rules) []Issue {
	var issues []Issue
	issues = append(issues, checkTable(s.Base, file, false, rules)...)
	issues = append(issues, checkTable(s.Landscape, file, true, rules)...)
	return issues
}

func checkTable(t scaledstyle.Table, file string, landscape bool, rules scaledstyle.Rules) []Issue {
	var issues []Issue
	for _, name := range t.Names() {
		b := t[name]
		issue := func(key, severity, text string) {
			issues = append(issues, Issue{
				File:      file,
				Block:     name,
				Key:       key,
				Landscape: landscape,
				Severity:  severity,
				Text:      text,
			})
		}

		// output key -> source keys, in resolution order
		targets := make(map[string][]string)
		var order []string

		for _, key := range b.Keys() {
			v := b[key]
			if v.Kind() == scaledstyle.KindString {
				continue
			}
			c := rules.Classify(key)

			if v.Kind() == scaledstyle.KindPair && len(v.Slots()) > 2 {
				issue(key, SeverityWarning, fmt.Sprintf(IssueExtraSlots, len(v.Slots())))
			}
			if v.Kind() == scaledstyle.KindOpaque && !c.Ignore && c.Axis != scaledstyle.AxisNone {
				issue(key, SeverityInfo, fmt.Sprintf(IssueOpaqueScaled, c.Axis))
			}

			if _, ok := targets[c.Key]; !ok {
				order = append(order, c.Key)
			}
			targets[c.Key] = append(targets[c.Key], key)
		}

		for _, out := range order {
			keys := targets[out]
			if len(keys) < 2 {
				continue
			}
			issue(out, SeverityWarning, fmt.Sprintf(IssueKeyCollision, quoteList(keys), out, collisionWinner(keys, out)))
		}
	}
	return issues
}

// collisionWinner mirrors the engine: plain keys are written first and
// marked keys overwrite them in sorted order. keys must be sorted.
func collisionWinner(keys []string, out string) string {
	winner := out
	for _, k := range keys {
		if k != out {
			winner = k
		}
	}
	return winner
}

func quoteList(keys []string) string {
	s := ""
	for i, k := range keys {
		switch {
		case i == 0:
		case i == len(keys)-1:
			s += " and "
		default:
			s += ", "
		}
		s += fmt.Sprintf("%q", k)
	}
	return s
}
