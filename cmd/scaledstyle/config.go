package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/scaledstyle"
	"github.com/yacobolo/scaledstyle/internal/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = ".scaledstyle.yaml"

var k = koanf.New(".")

// envKeys restores the dashes of multi-word keys after underscores became dots
var envKeys = strings.NewReplacer(
	"output.format", "output-format",
	"default.axis", "default-axis",
)

// defaultIncludes are scanned when neither arguments nor config name files
var defaultIncludes = []string{
	"styles/**/*.css",
	"styles/**/*.yaml",
	"styles/**/*.yml",
	"styles/**/*.json",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set).
	// Defaults live in the get*WithFallback calls, so an unset flag never
	// shadows a file or env value.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SCALEDSTYLE_* prefix)
	if err := k.Load(env.Provider("SCALEDSTYLE_", ".", func(s string) string {
		// SCALEDSTYLE_SCREEN_WIDTH -> screen.width
		// SCALEDSTYLE_RULES_DEFAULT_AXIS -> rules.default-axis
		// SCALEDSTYLE_VERBOSE -> verbose
		return envKeys.Replace(strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SCALEDSTYLE_")),
			"_", ".",
		))
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildEngineConfig constructs the engine configuration from koanf state.
func buildEngineConfig() (scaledstyle.Config, error) {
	screen, err := getSizeWithFallback("screen-size", "screen", scaledstyle.DefaultBaseline)
	if err != nil {
		return scaledstyle.Config{}, fmt.Errorf("screen: %w", err)
	}
	baseline, err := getSizeWithFallback("baseline-size", "baseline", scaledstyle.DefaultBaseline)
	if err != nil {
		return scaledstyle.Config{}, fmt.Errorf("baseline: %w", err)
	}
	device, err := scaledstyle.ParseDeviceClass(getStringWithFallback("device", "device", "large"))
	if err != nil {
		return scaledstyle.Config{}, err
	}
	rules, err := buildRules()
	if err != nil {
		return scaledstyle.Config{}, err
	}

	cfg := scaledstyle.DefaultConfig(screen, device).WithBaselineSize(baseline.Width, baseline.Height)
	cfg.Rules = rules
	return cfg, nil
}

// buildRules adds configured keys to the built-in sets. Keys are added, not
// moved, so a key listed under two sets is a conflict that strict mode
// reports.
func buildRules() (scaledstyle.Rules, error) {
	vertical := getStringsWithFallback("vertical", "rules.vertical")
	horizontal := getStringsWithFallback("horizontal", "rules.horizontal")
	ignored := getStringsWithFallback("ignore", "rules.ignore")

	rules := scaledstyle.DefaultRules().AddKeys(vertical, horizontal)
	if len(ignored) > 0 {
		rules = scaledstyle.NewRules(
			rules.VerticalKeys(),
			rules.HorizontalKeys(),
			append(rules.IgnoreKeys(), ignored...),
		)
	}

	axis, err := scaledstyle.ParseAxis(getStringWithFallback("default-axis", "rules.default-axis", "none"))
	if err != nil {
		return scaledstyle.Rules{}, err
	}
	return rules.WithDefaultAxis(axis), nil
}

// buildIncludes picks definition patterns: arguments, then config, then defaults.
func buildIncludes(args []string) []string {
	if len(args) > 0 {
		return args
	}
	if includes := k.Strings("include"); len(includes) > 0 {
		return includes
	}
	return defaultIncludes
}

// buildReportConfig constructs the text reporter configuration.
func buildReportConfig() report.Config {
	return report.Config{
		UseColors: getBoolWithFallback("color", "color", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}
}

// newLogger builds the console logger for diagnostics on stderr. Results
// go to stdout through the reporter.
func newLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		level = zapcore.ErrorLevel
	case getBoolWithFallback("verbose", "verbose", false):
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getSizeWithFallback reads a "WxH" flag, then the width and height config
// keys under configKey. A missing dimension keeps the default.
func getSizeWithFallback(flagKey, configKey string, defaultVal scaledstyle.Size) (scaledstyle.Size, error) {
	if v := k.String(flagKey); v != "" {
		return scaledstyle.ParseSize(v)
	}
	size := defaultVal
	if k.Exists(configKey + ".width") {
		size.Width = k.Float64(configKey + ".width")
	}
	if k.Exists(configKey + ".height") {
		size.Height = k.Float64(configKey + ".height")
	}
	return size, nil
}
