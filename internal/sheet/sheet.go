// Package sheet loads style-definition files into tables.
//
// Two formats are supported. CSS files use class selectors for blocks,
// bracketed pairs for device-class values and an orientation media query
// for landscape overrides:
//
//	.card {
//		width: 20;
//		padding: [5, 20];
//		gap_V: 8;
//		align-self: center;
//	}
//
//	@media (orientation: landscape) {
//		.card { width: 40; }
//	}
//
// YAML and JSON files map block names to properties; landscape overrides
// live under the "@landscape" key.
package sheet

import (
	"github.com/yacobolo/scaledstyle"
)

// LandscapeKey holds landscape overrides in YAML and JSON definitions.
const LandscapeKey = "@landscape"

// Sheet is a parsed definition: base blocks and landscape overrides.
type Sheet struct {
	Base      scaledstyle.Table
	Landscape scaledstyle.Table
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{
		Base:      scaledstyle.Table{},
		Landscape: scaledstyle.Table{},
	}
}

// Merge copies other into s. Properties of a block already present are
// merged; other wins on conflicting keys. It returns the block names that
// were present in both sheets.
func (s *Sheet) Merge(other *Sheet) []string {
	overlap := mergeTable(s.Base, other.Base)
	overlap = append(overlap, mergeTable(s.Landscape, other.Landscape)...)
	return overlap
}

func mergeTable(dst, src scaledstyle.Table) []string {
	var overlap []string
	for _, name := range src.Names() {
		block, ok := dst[name]
		if !ok {
			dst[name] = src[name].Clone()
			continue
		}
		overlap = append(overlap, name)
		for k, v := range src[name] {
			block[k] = v
		}
	}
	return overlap
}

// Resolve runs the engine over both tables.
func (s *Sheet) Resolve(e *scaledstyle.Engine) *Sheet {
	return &Sheet{
		Base:      e.ResolveTable(s.Base),
		Landscape: e.ResolveTable(s.Landscape),
	}
}

// block returns the named block of t, creating it when missing.
func block(t scaledstyle.Table, name string) scaledstyle.Block {
	b, ok := t[name]
	if !ok {
		b = scaledstyle.Block{}
		t[name] = b
	}
	return b
}
