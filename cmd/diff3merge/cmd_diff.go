package main

import (
	"fmt"
	"io"
	"os"

	"github.com/odvcencio/diff3merge/pkg/linediff"
	"github.com/odvcencio/diff3merge/pkg/myers"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <original> <modified>",
		Short: "Print the Myers shortest edit script between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigForCmd(cmd)
			if err != nil {
				return err
			}
			sep := separatorForCmd(cmd, cfg)

			original, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %q: %w", args[0], err)
			}
			modified, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %q: %w", args[1], err)
			}

			changes := linediff.Diff(string(original), string(modified), sep)
			printDiff(cmd.OutOrStdout(), changes)
			return nil
		},
	}
}

func printDiff(out io.Writer, changes []myers.Change[string]) {
	var added, removed int
	for _, c := range changes {
		switch c.Type {
		case myers.Equal:
			fmt.Fprintf(out, "  %s\n", c.Element)
		case myers.Delete:
			removed++
			fmt.Fprintf(out, "- %s\n", c.Element)
		case myers.Insert:
			added++
			fmt.Fprintf(out, "+ %s\n", c.Element)
		}
	}
	fmt.Fprintf(out, "%d addition", added)
	if added != 1 {
		fmt.Fprint(out, "s")
	}
	fmt.Fprintf(out, ", %d deletion", removed)
	if removed != 1 {
		fmt.Fprint(out, "s")
	}
	fmt.Fprintln(out)
}
