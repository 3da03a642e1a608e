package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"safenum/internal/expr"
	"safenum/internal/record"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-file>",
	Short: "Re-evaluate a recorded session and verify the outcomes",
	Long: `Replay re-runs every expression in a session recorded with eval --record
and checks that each one still produces the same value or the same classified
failure. Any drift is reported and the command exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyColorMode(cmd, "")
		quiet, _ := cmd.Flags().GetBool("quiet")
		out := cmd.OutOrStdout()

		session, err := record.Read(args[0])
		if err != nil {
			return err
		}

		mismatches := 0
		for i, want := range session.Entries {
			target, ok := expr.ParseNumType(want.ResultType)
			if !ok {
				return fmt.Errorf("entry %d: unknown result type %q", i, want.ResultType)
			}
			outcome, evalErr := expr.EvalString(want.Expr, target)
			got, fatal := outcomeEntry(want.Expr, want.ResultType, outcome, evalErr)
			if fatal != nil {
				return fmt.Errorf("entry %d: %s: %w", i, want.Expr, fatal)
			}
			if got != want {
				mismatches++
				fmt.Fprintf(out, "%s entry %d: %s\n", color.RedString("drift"), i, want.Expr)
				fmt.Fprintf(out, "  recorded: %s\n", describeEntry(want))
				fmt.Fprintf(out, "  now:      %s\n", describeEntry(got))
				continue
			}
			if !quiet {
				fmt.Fprintf(out, "%s entry %d: %s\n", color.GreenString("ok"), i, want.Expr)
			}
		}

		if mismatches > 0 {
			return fmt.Errorf("%d of %d entries drifted", mismatches, len(session.Entries))
		}
		if !quiet {
			fmt.Fprintf(out, "%d entries verified\n", len(session.Entries))
		}
		return nil
	},
}

func describeEntry(e record.Entry) string {
	if e.Failed {
		return fmt.Sprintf("failed kind=%d %q", e.Kind, e.Message)
	}
	return fmt.Sprintf("value=%s bool=%v", e.Value, e.IsBool)
}
