package main

import (
	"fmt"
	"os"

	"github.com/odvcencio/diff3merge/pkg/linediff"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "merge <base> <ours> <theirs>",
		Short: "Three-way merge two divergent files against a common ancestor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigForCmd(cmd)
			if err != nil {
				return err
			}
			sep := separatorForCmd(cmd, cfg)

			base, ours, theirs, err := readThreeWaySources(args[0], args[1], args[2])
			if err != nil {
				return err
			}

			result := linediff.Merge(base, ours, theirs, sep)
			out := cmd.OutOrStdout()

			if result.Success() {
				fmt.Fprintln(out, "merge completed cleanly")
			} else {
				fmt.Fprintf(out, "merge completed with %d conflict", len(result.Conflicts))
				if len(result.Conflicts) != 1 {
					fmt.Fprint(out, "s")
				}
				fmt.Fprintln(out)
			}

			if write != "" {
				labels := linediff.MarkerLabels{Ours: cfg.Markers.Ours, Base: cfg.Markers.Base, Theirs: cfg.Markers.Theirs}
				rendered := linediff.FormatMerge(result, sep, labels)
				if err := os.WriteFile(write, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("write %q: %w", write, err)
				}
				fmt.Fprintf(out, "wrote %s\n", write)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&write, "write", "", "write the merge output (with conflict markers, if any) to this path")
	return cmd
}

func readThreeWaySources(basePath, oursPath, theirsPath string) (base, ours, theirs string, err error) {
	b, err := os.ReadFile(basePath)
	if err != nil {
		return "", "", "", fmt.Errorf("read %q: %w", basePath, err)
	}
	o, err := os.ReadFile(oursPath)
	if err != nil {
		return "", "", "", fmt.Errorf("read %q: %w", oursPath, err)
	}
	th, err := os.ReadFile(theirsPath)
	if err != nil {
		return "", "", "", fmt.Errorf("read %q: %w", theirsPath, err)
	}
	return string(b), string(o), string(th), nil
}
