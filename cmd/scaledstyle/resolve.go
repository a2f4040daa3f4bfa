package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/scaledstyle"
	"github.com/yacobolo/scaledstyle/internal/report"
	"github.com/yacobolo/scaledstyle/internal/sheet"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [files...]",
	Short: "Resolve definition files for the target screen",
	Long: `Load CSS, YAML or JSON definition files, resolve every block for the
configured screen and device class, and print the result.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runResolve,
}

// runResolve is shared between `scaledstyle resolve` and the root command.
func runResolve(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	rep, rules, err := buildReport(log, buildIncludes(args))
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), rep); err != nil {
		return err
	}

	return checkResult(rep, rules, getBoolWithFallback("strict", "strict", false))
}

// buildReport loads and resolves definitions. A file that fails to parse
// becomes an error issue on the report; only discovery failures abort.
func buildReport(log *zap.Logger, includes []string) (*report.Report, scaledstyle.Rules, error) {
	cfg, err := buildEngineConfig()
	if err != nil {
		return nil, scaledstyle.Rules{}, err
	}

	for _, conflict := range multierr.Errors(cfg.Rules.Validate()) {
		log.Warn("Rule conflict", zap.Error(conflict))
	}

	result, err := sheet.NewLoader(log).WithRules(cfg.Rules).Load(includes)
	if result == nil {
		return nil, cfg.Rules, err
	}
	if err != nil {
		log.Warn("Some definition files failed to load", zap.Int("failed", len(multierr.Errors(err))))
	}
	if len(result.Files) == 0 {
		log.Info("No definition files found", zap.Strings("include", includes))
	}

	engine := scaledstyle.NewEngine(cfg)
	log.Debug("Resolving definitions",
		zap.Stringer("screen", cfg.Screen),
		zap.Stringer("baseline", engine.Config().Baseline),
		zap.Stringer("device", cfg.Device),
		zap.Int("files", len(result.Files)))

	return report.New(engine, result), cfg.Rules, nil
}

// writeReport prints rep in the configured format unless quiet is set.
func writeReport(w io.Writer, rep *report.Report) error {
	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	format, err := report.ParseOutputFormat(getStringWithFallback("output-format", "output-format", ""))
	if err != nil {
		return err
	}
	if err := report.WriteOutput(w, rep, format, buildReportConfig()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// checkResult decides the exit status. Only load errors fail by default;
// strict mode also fails on rule conflicts and warnings.
func checkResult(rep *report.Report, rules scaledstyle.Rules, strict bool) error {
	errors, warnings := rep.Counts()

	if strict {
		if err := rules.Validate(); err != nil {
			return fmt.Errorf("strict mode: %w", err)
		}
		if errors+warnings > 0 {
			return fmt.Errorf("strict mode: %d errors, %d warnings", errors, warnings)
		}
		return nil
	}

	if errors > 0 {
		return fmt.Errorf("%d definition files failed to load", errors)
	}
	return nil
}
