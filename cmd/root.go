package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/websh-dev/websh/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		// No config is fine for local use; run init to customize.
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	return configuration, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "websh",
	Short: "Emulated shell with a web API",
	Long: `A sandboxed shell emulator that answers the common Unix file,
system and environment commands against a virtual filesystem, usable
interactively or over a JSON HTTP API.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		return runInteractive(cmd, configuration)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
