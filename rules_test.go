package scaledstyle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestMatchSuffix(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantOK  bool
		wantKey string
		axis    Axis
		ignore  bool
	}{
		{name: "vertical", key: "height_V", wantOK: true, wantKey: "height", axis: AxisVertical},
		{name: "horizontal", key: "top_H", wantOK: true, wantKey: "top", axis: AxisHorizontal},
		{name: "ignore keeps key", key: "size_I", wantOK: true, wantKey: "size_I", ignore: true},
		{name: "bare marker", key: "_V", wantOK: false},
		{name: "lowercase marker", key: "height_v", wantOK: false},
		{name: "no marker", key: "paddingV", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := matchSuffix(tt.key)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantKey, rule.outputKey(tt.key))
			assert.Equal(t, tt.axis, rule.axis)
			assert.Equal(t, tt.ignore, rule.ignore)
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	rules := NewRules(
		[]string{"gap", "both"},
		[]string{"width", "both", "inset_V"},
		[]string{"flex", "zIndex_H"},
	)

	tests := []struct {
		key  string
		want Classification
	}{
		{"gap", Classification{Key: "gap", Axis: AxisVertical, Source: SourceVerticalKey}},
		{"both", Classification{Key: "both", Axis: AxisVertical, Source: SourceVerticalKey}},
		{"width", Classification{Key: "width", Axis: AxisHorizontal, Source: SourceHorizontalKey}},
		{"inset_V", Classification{Key: "inset_V", Axis: AxisHorizontal, Source: SourceHorizontalKey}},
		{"margin_V", Classification{Key: "margin", Axis: AxisVertical, Source: SourceSuffix}},
		{"margin_H", Classification{Key: "margin", Axis: AxisHorizontal, Source: SourceSuffix}},
		{"zIndex_H", Classification{Key: "zIndex", Axis: AxisHorizontal, Source: SourceSuffix}},
		{"margin_I", Classification{Key: "margin_I", Ignore: true, Source: SourceSuffix}},
		{"flex", Classification{Key: "flex", Ignore: true, Source: SourceIgnoreKey}},
		{"fontSize", Classification{Key: "fontSize", Axis: AxisNone, Source: SourceDefault}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Classify(tt.key))
		})
	}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	assert.Empty(t, rules.VerticalKeys())
	assert.Contains(t, rules.HorizontalKeys(), "borderRadius")
	assert.Contains(t, rules.HorizontalKeys(), "height")
	assert.Contains(t, rules.IgnoreKeys(), "opacity")
	assert.NoError(t, rules.Validate())
}

func TestAddKeys(t *testing.T) {
	base := DefaultRules()
	out := base.AddKeys([]string{"gap", "gap"}, []string{"width", "inset"})

	assert.Equal(t, []string{"gap"}, out.VerticalKeys())
	assert.Contains(t, out.HorizontalKeys(), "inset")
	assert.Len(t, out.HorizontalKeys(), len(base.HorizontalKeys())+1)

	// Receiver untouched.
	assert.Empty(t, base.VerticalKeys())
	assert.NotContains(t, base.HorizontalKeys(), "inset")
}

func TestAddKeysKeepsOtherSets(t *testing.T) {
	rules := DefaultRules().AddKeys([]string{"width"}, nil)

	assert.Contains(t, rules.VerticalKeys(), "width")
	assert.Contains(t, rules.HorizontalKeys(), "width")
	assert.Equal(t, AxisVertical, rules.Classify("width").Axis)
	assert.Error(t, rules.Validate())
}

func TestWithKeysIsExclusive(t *testing.T) {
	rules := DefaultRules().
		WithVerticalKeys("height", "top").
		WithIgnoreKeys("borderRadius").
		WithHorizontalKeys("fontSize")

	assert.Equal(t, []string{"height", "top"}, rules.VerticalKeys())
	assert.NotContains(t, rules.HorizontalKeys(), "height")
	assert.NotContains(t, rules.HorizontalKeys(), "borderRadius")
	assert.Contains(t, rules.IgnoreKeys(), "borderRadius")
	assert.Contains(t, rules.HorizontalKeys(), "fontSize")
	assert.NoError(t, rules.Validate())

	moved := rules.WithHorizontalKeys("top")
	assert.Equal(t, []string{"height"}, moved.VerticalKeys())
	assert.Contains(t, moved.HorizontalKeys(), "top")
}

func TestValidateReportsEveryConflict(t *testing.T) {
	rules := NewRules(
		[]string{"a", "b"},
		[]string{"a", "c"},
		[]string{"b", "c"},
	)
	err := rules.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), `"a"`)
	assert.Contains(t, errs[1].Error(), `"b"`)
	assert.Contains(t, errs[2].Error(), `"c"`)
}

func TestZeroRules(t *testing.T) {
	var rules Rules
	assert.Equal(t, SourceDefault, rules.Classify("width").Source)
	assert.Equal(t, AxisVertical, rules.Classify("width_V").Axis)

	added := rules.AddKeys(nil, []string{"width"})
	assert.Equal(t, AxisHorizontal, added.Classify("width").Axis)
}
