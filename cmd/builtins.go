package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/websh-dev/websh/commands"
)

// builtinsCmd lists every registered verb and synonym
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range commands.Catalog() {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(c.Names, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
