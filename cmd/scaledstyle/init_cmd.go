package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .scaledstyle.yaml config file",
	Long:  `Create a .scaledstyle.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# scaledstyle configuration
# Docs: https://github.com/yacobolo/scaledstyle

# Shared settings
verbose: false
color: false

# Frame the definitions are authored against
baseline:
  width: 375
  height: 667

# Target screen and device class
screen:
  width: 375
  height: 667
device: large              # large | compact

# Key classification (added to the built-in sets)
rules:
  vertical: []
  horizontal: []
  ignore: []
  default-axis: none       # none | horizontal | vertical

# Definition files
include:
  - "styles/**/*.css"
  - "styles/**/*.yaml"

output-format: text        # text | json | yaml | css
strict: false

# Orientation replay
simulate:
  sizes:
    - 375x667
    - 667x375
  mode: merge              # merge | replace
  animate: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
