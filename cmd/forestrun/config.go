package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/forestrun/internal/config"
	"github.com/vovakirdan/forestrun/internal/games/forestrun"
)

var (
	flagConfigWrite bool
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the default config",
	Long: `Print the built-in game config, or write it to the user config
directory (~/.forestrun/configs/forestrun.yaml) as a starting point.

Files are layered over the built-in values, so an edited copy only needs
the keys it changes.

Examples:
  forestrun config
  forestrun config --write
  forestrun config show --difficulty hard
  forestrun config show --config ./my.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the config a run would use, after --config and --difficulty",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the default config to the user config directory")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing user config")
	configCmd.AddCommand(configShowCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigWrite {
		_, err := os.Stdout.Write(config.EmbeddedDefault())
		return err
	}

	path := config.UserConfigPath()
	if path == "" {
		return errors.New("no home directory to write the config to")
	}
	if _, err := os.Stat(path); err == nil && !flagConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.EmbeddedDefault(), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	fc, err := config.LoadForestRun(flagConfig)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyForestRunPreset(&fc, preset)
	} else if flagDifficulty != "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	out, err := yaml.Marshal(fc)
	if err != nil {
		return err
	}
	fmt.Print(string(out))

	if err := forestrun.SimConfig(fc).Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "\nWarning: this config is rejected and runs fall back to defaults: %v\n", err)
	}
	return nil
}
