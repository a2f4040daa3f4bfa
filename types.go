package scaledstyle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Block maps a property key to its value ("width" -> 20).
type Block map[string]Value

// Table maps a block name to its properties ("container" -> Block).
type Table map[string]Block

// Props are the properties handed to a consumer component.
type Props map[string]any

// Style is an ordered composite of blocks. Consumers apply blocks in order,
// so later blocks override earlier ones on conflicting keys.
type Style []Block

// Size is a width/height pair in logical units.
type Size struct {
	Width  float64
	Height float64
}

// Landscape reports whether the size is wider than it is tall.
func (s Size) Landscape() bool {
	return s.Width > s.Height
}

// Normalize returns the orientation-independent frame: the shorter side
// becomes Width and the longer side becomes Height.
func (s Size) Normalize() Size {
	if s.Width > s.Height {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// ParseSize parses "WIDTHxHEIGHT" (for example "375x667").
func ParseSize(s string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return Size{Width: width, Height: height}, nil
}

// Axis is the scaling dimension of a property.
type Axis uint8

const (
	// AxisNone applies device-class selection without a screen ratio.
	AxisNone Axis = iota
	// AxisHorizontal scales by screenWidth / baselineWidth.
	AxisHorizontal
	// AxisVertical scales by screenHeight / baselineHeight.
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// ParseAxis parses "none", "horizontal" or "vertical" (also "h"/"v").
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AxisNone, nil
	case "horizontal", "h":
		return AxisHorizontal, nil
	case "vertical", "v":
		return AxisVertical, nil
	default:
		return AxisNone, fmt.Errorf("unknown axis %q", s)
	}
}

// DeviceClass picks the slot of a device-class pair.
type DeviceClass uint8

const (
	// Large devices use slot 1 of a pair and the full declared magnitude.
	Large DeviceClass = iota
	// Compact devices use slot 0 of a pair and half the declared magnitude.
	Compact
)

func (d DeviceClass) String() string {
	if d == Compact {
		return "compact"
	}
	return "large"
}

// ParseDeviceClass parses "compact" or "large".
func ParseDeviceClass(s string) (DeviceClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "large":
		return Large, nil
	case "compact":
		return Compact, nil
	default:
		return Large, fmt.Errorf("unknown device class %q", s)
	}
}

// Keys returns the block keys in sorted order.
func (b Block) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of b.
func (b Block) Clone() Block {
	if b == nil {
		return nil
	}
	out := make(Block, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Names returns the block names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for n := range t {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Flatten merges the composite into a single block. Later blocks win.
// A nil Style flattens to nil.
func (s Style) Flatten() Block {
	if s == nil {
		return nil
	}
	out := make(Block)
	for _, b := range s {
		for k, v := range b {
			out[k] = v
		}
	}
	return out
}

// Clone returns a shallow copy of p.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
