package main

import (
	"fmt"
	"os"

	"github.com/odvcencio/diff3merge/pkg/linediff"
	"github.com/spf13/cobra"
)

// newMergeFileCmd mirrors the classic `git merge-file` UX: merge ours
// against theirs with base as the common ancestor, overwrite ours with
// the result (conflict markers included on conflict), and exit 1 if
// any conflict remains.
func newMergeFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge-file <ours> <base> <theirs>",
		Short: "Merge ours and theirs in place, like git merge-file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigForCmd(cmd)
			if err != nil {
				return err
			}
			sep := separatorForCmd(cmd, cfg)

			oursPath, basePath, theirsPath := args[0], args[1], args[2]
			base, ours, theirs, err := readThreeWaySources(basePath, oursPath, theirsPath)
			if err != nil {
				return err
			}

			result := linediff.Merge(base, ours, theirs, sep)
			labels := linediff.MarkerLabels{Ours: cfg.Markers.Ours, Base: cfg.Markers.Base, Theirs: cfg.Markers.Theirs}
			rendered := linediff.FormatMerge(result, sep, labels)

			if err := os.WriteFile(oursPath, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write %q: %w", oursPath, err)
			}

			if !result.Success() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d conflict", oursPath, len(result.Conflicts))
				if len(result.Conflicts) != 1 {
					fmt.Fprint(cmd.ErrOrStderr(), "s")
				}
				fmt.Fprintln(cmd.ErrOrStderr())
				os.Exit(1)
			}
			return nil
		},
	}
}
