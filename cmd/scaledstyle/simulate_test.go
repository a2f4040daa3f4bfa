package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/scaledstyle"
)

const simulateCSS = `.card { width: 20; height: 10; }
@media (orientation: landscape) { .card { width: 40; } }`

func runSimulateForTest(t *testing.T, args []string) (string, error) {
	t.Helper()
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	var buf bytes.Buffer
	simulateCmd.SetOut(&buf)
	t.Cleanup(func() { simulateCmd.SetOut(nil) })

	err := runSimulate(simulateCmd, args)
	return buf.String(), err
}

func TestSimulateMerge(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("sizes", []string{"400x800", "800x400", "400x800"}))

	dir := writeDefinitions(t, map[string]string{"card.css": simulateCSS})
	out, err := runSimulateForTest(t, []string{dir + "/*.css"})
	require.NoError(t, err)

	assert.Equal(t, "portrait 400x800\n  height  10\n  width   20\n"+
		"landscape 800x400 (animated)\n  height  10\n  width   40\n"+
		"portrait 400x800 (animated)\n  height  10\n  width   20\n", out)
}

func TestSimulateReplaceWithoutAnimation(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("sizes", []string{"400x800", "800x400"}))
	require.NoError(t, k.Set("mode", "replace"))
	require.NoError(t, k.Set("animate", false))

	dir := writeDefinitions(t, map[string]string{"card.css": simulateCSS})
	out, err := runSimulateForTest(t, []string{dir + "/*.css"})
	require.NoError(t, err)

	assert.Equal(t, "portrait 400x800\n  height  10\n  width   20\n"+
		"landscape 800x400\n  width  40\n", out)
}

func TestSimulateErrors(t *testing.T) {
	dir := writeDefinitions(t, map[string]string{"card.css": simulateCSS})

	tests := []struct {
		name    string
		key     string
		value   any
		wantErr string
	}{
		{name: "unknown block", key: "block", value: "missing", wantErr: `block "missing" not found`},
		{name: "bad size", key: "sizes", value: []string{"wide"}, wantErr: "invalid size"},
		{name: "bad mode", key: "mode", value: "stack", wantErr: "unknown style mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			require.NoError(t, k.Set(tt.key, tt.value))

			_, err := runSimulateForTest(t, []string{dir + "/*.css"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes([]string{"375x667", "667X375"})
	require.NoError(t, err)
	assert.Equal(t, []scaledstyle.Size{{Width: 375, Height: 667}, {Width: 667, Height: 375}}, sizes)

	_, err = parseSizes(nil)
	require.Error(t, err)
}

func TestUnknownBlockError(t *testing.T) {
	names := []string{"card", "cardHeader", "title"}

	err := unknownBlockError("crd", names)
	assert.Contains(t, err.Error(), `block "crd" not found (did you mean card`)

	err = unknownBlockError("zzz", names)
	assert.Equal(t, `block "zzz" not found`, err.Error())
}
