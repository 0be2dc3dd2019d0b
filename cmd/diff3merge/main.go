// Command diff3merge is a small front end over this module's Differ
// and Merger: it diffs two text files, three-way merges two divergent
// files against a common ancestor, keeps a compressed history of past
// merges, and signs or verifies a merge output's digest with an SSH key.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "diff3merge",
		Short: "Myers diff and three-way merge over plain text files",
	}

	root.PersistentFlags().String("config", "", "path to a diff3merge.toml config file (default ~/.diff3mergerc.toml)")
	root.PersistentFlags().String("sep", "", "line separator to split on (default \\n)")

	root.AddCommand(newDiffCmd())
	root.AddCommand(newMergeCmd())
	root.AddCommand(newMergeFileCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newVerifyCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfigForCmd(cmd *cobra.Command) (*Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return LoadConfig(path)
}

func separatorForCmd(cmd *cobra.Command, cfg *Config) string {
	if sep, _ := cmd.Flags().GetString("sep"); sep != "" {
		return sep
	}
	return cfg.Separator()
}
