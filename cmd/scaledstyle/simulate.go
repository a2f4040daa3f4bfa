package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/yacobolo/scaledstyle"
	"github.com/yacobolo/scaledstyle/internal/report"
	"github.com/yacobolo/scaledstyle/internal/sheet"
	"go.uber.org/zap"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [files...]",
	Short: "Replay window sizes through the orientation resolver",
	Long: `Resolve one block, then feed a sequence of window sizes to an
orientation resolver and print the style in effect after each change.
Landscape overrides for the block come from the same definition files.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSimulate,
}

// defaultSimulateSizes rotates the baseline frame once
var defaultSimulateSizes = []string{"375x667", "667x375"}

func init() {
	f := simulateCmd.Flags()
	f.String("block", "", "Block to simulate (default: first block by name)")
	f.StringSlice("sizes", defaultSimulateSizes, "Window sizes to replay, first is the initial size")
	f.String("mode", "merge", "Landscape style handling: merge|replace")
	f.Bool("animate", true, "Request an ease-in-ease-out animation before each change")
	f.StringToString("extra", nil, "Props applied only in landscape (key=value)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	sizeValues := getStringsWithFallback("sizes", "simulate.sizes")
	if len(sizeValues) == 0 {
		sizeValues = defaultSimulateSizes
	}
	sizes, err := parseSizes(sizeValues)
	if err != nil {
		return err
	}
	mode, err := scaledstyle.ParseMode(getStringWithFallback("mode", "simulate.mode", "merge"))
	if err != nil {
		return err
	}
	animate := getBoolWithFallback("animate", "simulate.animate", true)
	extra, _ := cmd.Flags().GetStringToString("extra")

	cfg, err := buildEngineConfig()
	if err != nil {
		return err
	}
	result, err := sheet.NewLoader(log).Load(buildIncludes(args))
	if result == nil {
		return err
	}
	if err != nil {
		log.Warn("Some definition files failed to load", zap.Error(err))
	}
	resolved := result.Sheet.Resolve(scaledstyle.NewEngine(cfg))

	name := getStringWithFallback("block", "simulate.block", "")
	if name == "" {
		names := resolved.Base.Names()
		if len(names) == 0 {
			return fmt.Errorf("no blocks to simulate")
		}
		name = names[0]
	}
	base, ok := resolved.Base[name]
	if !ok {
		return unknownBlockError(name, resolved.Base.Names())
	}

	opts := []scaledstyle.Option{
		scaledstyle.WithMode(mode),
		scaledstyle.WithAnimation(animate),
		scaledstyle.WithLogger(log),
		scaledstyle.WithAnimator(scaledstyle.AnimatorFunc(func() {
			log.Debug("Animating layout change", zap.String("curve", "ease-in-ease-out"))
		})),
	}
	if landscape, ok := resolved.Landscape[name]; ok {
		opts = append(opts, scaledstyle.WithLandscapeStyle(landscape))
	}
	if len(extra) > 0 {
		props := scaledstyle.Props{}
		for key, val := range extra {
			props[key] = val
		}
		opts = append(opts, scaledstyle.WithExtraProps(props))
	}

	display := scaledstyle.NewDisplay(sizes[0])
	resolver := scaledstyle.NewResolver(display, opts...)
	reporter := report.NewReporter(cmd.OutOrStdout(), buildReportConfig())
	quiet := getBoolWithFallback("quiet", "quiet", false)

	show := func(u scaledstyle.Update) {
		if quiet {
			return
		}
		style := resolver.EffectiveStyle(scaledstyle.Style{base}).Flatten()
		reporter.PrintUpdate(u, style, resolver.ExtraProps())
	}

	resolver.OnChange(show)
	resolver.Activate()
	defer resolver.Deactivate()

	show(scaledstyle.Update{Orientation: resolver.Orientation(), Size: display.Size()})
	for _, s := range sizes[1:] {
		display.Resize(s)
	}
	return nil
}

func parseSizes(values []string) ([]scaledstyle.Size, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one size is required")
	}
	sizes := make([]scaledstyle.Size, 0, len(values))
	for _, v := range values {
		s, err := scaledstyle.ParseSize(v)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, s)
	}
	return sizes, nil
}

// unknownBlockError names the closest blocks when any fuzzy-match name
func unknownBlockError(name string, names []string) error {
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return fmt.Errorf("block %q not found", name)
	}
	suggestions := make([]string, 0, 3)
	for _, m := range matches {
		if len(suggestions) == cap(suggestions) {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return fmt.Errorf("block %q not found (did you mean %s?)", name, strings.Join(suggestions, ", "))
}
