package main

import (
	"fmt"
	"time"

	"github.com/odvcencio/diff3merge/pkg/linediff"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage a compressed local history of past merges",
	}
	cmd.AddCommand(newHistorySaveCmd())
	cmd.AddCommand(newHistoryListCmd())
	return cmd
}

func newHistorySaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <base> <ours> <theirs>",
		Short: "Merge three files and persist the result to history",
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
			record := recordFromMerge(base, ours, theirs, result, time.Now())

			path, err := saveHistory(cfg.History.Dir, record)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}
}

func newHistoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved merge history records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigForCmd(cmd)
			if err != nil {
				return err
			}

			paths, err := listHistory(cfg.History.Dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				record, err := loadHistory(p)
				if err != nil {
					return err
				}
				status := "clean"
				if record.Conflicted {
					status = fmt.Sprintf("%d conflict(s)", record.ConflictCount)
				}
				fmt.Fprintf(out, "%s  %s  %s\n", record.TakenAt, status, p)
			}
			return nil
		},
	}
}
