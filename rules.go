package scaledstyle

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

// defaultHorizontalKeys are scaled by the horizontal ratio out of the box.
var defaultHorizontalKeys = []string{
	// Sizing
	"width", "height", "minWidth", "lineHeight",

	// Position
	"top", "bottom", "left", "right",

	// Padding
	"padding", "paddingTop", "paddingBottom", "paddingLeft", "paddingRight",
	"paddingStart", "paddingVertical", "paddingHorizontal",

	// Margin
	"margin", "marginTop", "marginBottom", "marginLeft", "marginRight",
	"marginStart", "marginEnd", "marginVertical", "marginHorizontal",

	// Border
	"borderWidth", "borderTopWidth", "borderBottomWidth", "borderLeftWidth",
	"borderRightWidth", "borderRadius",
}

// defaultIgnoreKeys are unitless or structured properties that must never
// be scaled.
var defaultIgnoreKeys = []string{
	"flex", "flexGrow", "flexShrink", "flexBasis",
	"opacity", "zIndex", "fontWeight",
	"shadowOffset", "transform",
}

type keySet map[string]struct{}

func newKeySet(keys []string) keySet {
	s := make(keySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s keySet) has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s keySet) clone() keySet {
	out := make(keySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s keySet) sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Rules classifies style keys by scaling axis. Rules is an immutable value:
// every method returns a modified copy and leaves the receiver untouched.
//
// The zero Rules has no registered keys, so every key takes the suffix
// convention or the default path.
type Rules struct {
	vertical   keySet
	horizontal keySet
	ignore     keySet

	// DefaultAxis scales keys that match no set and no suffix.
	// AxisNone applies device-class selection only.
	DefaultAxis Axis
}

// DefaultRules returns the built-in key sets.
func DefaultRules() Rules {
	return Rules{
		vertical:   keySet{},
		horizontal: newKeySet(defaultHorizontalKeys),
		ignore:     newKeySet(defaultIgnoreKeys),
	}
}

// NewRules builds rules from explicit key lists.
func NewRules(vertical, horizontal, ignore []string) Rules {
	return Rules{
		vertical:   newKeySet(vertical),
		horizontal: newKeySet(horizontal),
		ignore:     newKeySet(ignore),
	}
}

func (r Rules) clone() Rules {
	return Rules{
		vertical:    r.vertical.clone(),
		horizontal:  r.horizontal.clone(),
		ignore:      r.ignore.clone(),
		DefaultAxis: r.DefaultAxis,
	}
}

// AddKeys merges keys into the vertical and horizontal sets, skipping keys
// already present. A key is not removed from the other sets, so registering
// one key on two axes leaves vertical precedence in charge; use the With*
// helpers for exclusive assignment.
func (r Rules) AddKeys(vertical, horizontal []string) Rules {
	out := r.clone()
	for _, k := range vertical {
		out.vertical[k] = struct{}{}
	}
	for _, k := range horizontal {
		out.horizontal[k] = struct{}{}
	}
	return out
}

// WithVerticalKeys moves keys into the vertical set.
func (r Rules) WithVerticalKeys(keys ...string) Rules {
	return r.assign(keys, func(out *Rules) keySet { return out.vertical })
}

// WithHorizontalKeys moves keys into the horizontal set.
func (r Rules) WithHorizontalKeys(keys ...string) Rules {
	return r.assign(keys, func(out *Rules) keySet { return out.horizontal })
}

// WithIgnoreKeys moves keys into the ignore set.
func (r Rules) WithIgnoreKeys(keys ...string) Rules {
	return r.assign(keys, func(out *Rules) keySet { return out.ignore })
}

// assign adds keys to one set and removes them from the other two.
func (r Rules) assign(keys []string, target func(*Rules) keySet) Rules {
	out := r.clone()
	dst := target(&out)
	for _, k := range keys {
		delete(out.vertical, k)
		delete(out.horizontal, k)
		delete(out.ignore, k)
		dst[k] = struct{}{}
	}
	return out
}

// WithDefaultAxis sets the axis used for unclassified keys.
func (r Rules) WithDefaultAxis(axis Axis) Rules {
	out := r.clone()
	out.DefaultAxis = axis
	return out
}

// VerticalKeys returns the vertical set, sorted.
func (r Rules) VerticalKeys() []string { return r.vertical.sorted() }

// HorizontalKeys returns the horizontal set, sorted.
func (r Rules) HorizontalKeys() []string { return r.horizontal.sorted() }

// IgnoreKeys returns the ignore set, sorted.
func (r Rules) IgnoreKeys() []string { return r.ignore.sorted() }

// Classification is the outcome of classifying one style key.
type Classification struct {
	Key    string // key written to the resolved block
	Axis   Axis   // scaling axis; AxisNone selects by device class only
	Ignore bool   // value passes through verbatim
	Source string // rule that matched, for diagnostics
}

// Classification sources.
const (
	SourceVerticalKey   = "vertical-key"
	SourceHorizontalKey = "horizontal-key"
	SourceSuffix        = "suffix"
	SourceIgnoreKey     = "ignore-key"
	SourceDefault       = "default"
)

// Classify resolves the precedence chain for key: explicit vertical key,
// explicit horizontal key, vertical suffix, horizontal suffix, ignore
// suffix or ignore key, then the default path.
func (r Rules) Classify(key string) Classification {
	switch {
	case r.vertical.has(key):
		return Classification{Key: key, Axis: AxisVertical, Source: SourceVerticalKey}
	case r.horizontal.has(key):
		return Classification{Key: key, Axis: AxisHorizontal, Source: SourceHorizontalKey}
	}

	if rule, ok := matchSuffix(key); ok {
		return Classification{
			Key:    rule.outputKey(key),
			Axis:   rule.axis,
			Ignore: rule.ignore,
			Source: SourceSuffix,
		}
	}

	if r.ignore.has(key) {
		return Classification{Key: key, Ignore: true, Source: SourceIgnoreKey}
	}
	return Classification{Key: key, Axis: r.DefaultAxis, Source: SourceDefault}
}

// Validate reports every key registered in more than one set. The engine
// never calls it; it backs strict mode in tooling.
func (r Rules) Validate() error {
	var err error
	for _, k := range r.vertical.sorted() {
		if r.horizontal.has(k) {
			err = multierr.Append(err, fmt.Errorf("key %q is registered as both vertical and horizontal", k))
		}
		if r.ignore.has(k) {
			err = multierr.Append(err, fmt.Errorf("key %q is registered as both vertical and ignored", k))
		}
	}
	for _, k := range r.horizontal.sorted() {
		if r.ignore.has(k) {
			err = multierr.Append(err, fmt.Errorf("key %q is registered as both horizontal and ignored", k))
		}
	}
	return err
}
