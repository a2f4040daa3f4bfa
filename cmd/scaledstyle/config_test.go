package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/scaledstyle"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".scaledstyle.yaml")
	configContent := `
verbose: true
device: compact

baseline:
  width: 320
screen:
  width: 750
  height: 1334

rules:
  vertical: [gap]
  horizontal: [iconSize]
  default-axis: horizontal

include:
  - "custom/**/*.css"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "compact", k.String("device"))
	assert.InDelta(t, 750.0, k.Float64("screen.width"), 0.01)
	assert.Equal(t, []string{"gap"}, k.Strings("rules.vertical"))

	cfg, err := buildEngineConfig()
	require.NoError(t, err)
	assert.Equal(t, scaledstyle.Compact, cfg.Device)
	assert.Equal(t, scaledstyle.Size{Width: 750, Height: 1334}, cfg.Screen)
	assert.Equal(t, scaledstyle.Size{Width: 320, Height: 667}, cfg.Baseline)
	assert.Equal(t, scaledstyle.AxisHorizontal, cfg.Rules.DefaultAxis)
	assert.Equal(t, []string{"gap"}, cfg.Rules.VerticalKeys())
	assert.Contains(t, cfg.Rules.HorizontalKeys(), "iconSize")
	assert.Contains(t, cfg.Rules.HorizontalKeys(), "width")

	assert.Equal(t, []string{"custom/**/*.css"}, buildIncludes(nil))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.scaledstyle.yaml"))

	cfg, err := buildEngineConfig()
	require.NoError(t, err)
	assert.Equal(t, scaledstyle.DefaultBaseline, cfg.Screen)
	assert.Equal(t, scaledstyle.DefaultBaseline, cfg.Baseline)
	assert.Equal(t, scaledstyle.Large, cfg.Device)
	assert.Equal(t, scaledstyle.AxisNone, cfg.Rules.DefaultAxis)
	assert.Equal(t, defaultIncludes, buildIncludes(nil))
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".scaledstyle.yaml")
	configContent := `
screen:
  width: 375
output-format: text
rules:
  default-axis: none
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("SCALEDSTYLE_SCREEN_WIDTH", "750")
	t.Setenv("SCALEDSTYLE_OUTPUT_FORMAT", "json")
	t.Setenv("SCALEDSTYLE_RULES_DEFAULT_AXIS", "vertical")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.InDelta(t, 750.0, k.Float64("screen.width"), 0.01)
	assert.Equal(t, "json", k.String("output-format"))
	assert.Equal(t, "vertical", k.String("rules.default-axis"))
}

func TestFlagKeysWinOverConfigKeys(t *testing.T) {
	resetKoanf()

	require.NoError(t, k.Set("screen.width", 750))
	require.NoError(t, k.Set("screen-size", "400x800"))
	require.NoError(t, k.Set("default-axis", "vertical"))
	require.NoError(t, k.Set("rules.default-axis", "horizontal"))

	cfg, err := buildEngineConfig()
	require.NoError(t, err)
	assert.Equal(t, scaledstyle.Size{Width: 400, Height: 800}, cfg.Screen)
	assert.Equal(t, scaledstyle.AxisVertical, cfg.Rules.DefaultAxis)
}

func TestBuildEngineConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "device", key: "device", value: "tablet", wantErr: "unknown device class"},
		{name: "screen", key: "screen-size", value: "big", wantErr: "screen"},
		{name: "baseline", key: "baseline-size", value: "375by667", wantErr: "baseline"},
		{name: "axis", key: "rules.default-axis", value: "diagonal", wantErr: "unknown axis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			require.NoError(t, k.Set(tt.key, tt.value))

			_, err := buildEngineConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildRules_IgnoreConflictsWithAxisSet(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("rules.ignore", []string{"width"}))

	rules, err := buildRules()
	require.NoError(t, err)
	assert.Contains(t, rules.IgnoreKeys(), "width")
	assert.Contains(t, rules.HorizontalKeys(), "width")
	assert.Error(t, rules.Validate())
}

func TestBuildIncludes_ArgsWin(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("include", []string{"from/config/*.css"}))
	assert.Equal(t, []string{"a.css"}, buildIncludes([]string{"a.css"}))
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".scaledstyle.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "baseline:")
	assert.Contains(t, string(data), "rules:")
	assert.Contains(t, string(data), "simulate:")

	// The generated file must load cleanly
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".scaledstyle.yaml"))
	_, err = buildEngineConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"375x667", "667x375"}, k.Strings("simulate.sizes"))
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".scaledstyle.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".scaledstyle.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".scaledstyle.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "device: large")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetSizeWithFallback(t *testing.T) {
	resetKoanf()

	def := scaledstyle.Size{Width: 375, Height: 667}
	got, err := getSizeWithFallback("size-flag", "size", def)
	require.NoError(t, err)
	assert.Equal(t, def, got)

	require.NoError(t, k.Set("size.height", 1334))
	got, err = getSizeWithFallback("size-flag", "size", def)
	require.NoError(t, err)
	assert.Equal(t, scaledstyle.Size{Width: 375, Height: 1334}, got)
}
