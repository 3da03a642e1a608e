package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"safenum/internal/checked"
	"safenum/internal/expr"
	"safenum/internal/project"
	"safenum/internal/record"
)

var (
	evalType   string
	evalFormat string
	evalRecord string
	evalConfig string
)

func init() {
	evalCmd.Flags().StringVarP(&evalType, "type", "t", "", "result type (int8..uint64; default from safenum.toml or int64)")
	evalCmd.Flags().StringVar(&evalFormat, "format", "pretty", "output format (pretty|json)")
	evalCmd.Flags().StringVar(&evalRecord, "record", "", "write the evaluations to a msgpack session file")
	evalCmd.Flags().StringVar(&evalConfig, "config", project.ConfigFileName, "config file path")
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression> [expression...]",
	Short: "Evaluate expressions with checked arithmetic",
	Long: `Evaluate one or more expressions in a fixed-width result type. Every
operation is checked: a result that the type cannot represent is reported as
a classified failure instead of wrapping.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := project.Load(evalConfig)
		if err != nil {
			return err
		}
		applyColorMode(cmd, cfg.Color(""))

		typeName := evalType
		if typeName == "" {
			typeName = cfg.ResultType("int64")
		}
		target, ok := expr.ParseNumType(typeName)
		if !ok {
			return fmt.Errorf("unknown result type %q", typeName)
		}
		if evalFormat != "pretty" && evalFormat != "json" {
			return fmt.Errorf("unknown format %q (want pretty or json)", evalFormat)
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		out := cmd.OutOrStdout()

		entries := make([]record.Entry, 0, len(args))
		failures := 0
		for _, src := range args {
			outcome, evalErr := expr.EvalString(src, target)
			entry, fatal := outcomeEntry(src, typeName, outcome, evalErr)
			if fatal != nil {
				return fmt.Errorf("%s: %w", src, fatal)
			}
			entries = append(entries, entry)
			if entry.Failed {
				failures++
			}
			if err := renderEntry(out, entry, quiet); err != nil {
				return err
			}
		}

		if evalRecord != "" {
			if err := record.Write(evalRecord, entries); err != nil {
				return err
			}
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d expressions failed", failures, len(args))
		}
		return nil
	},
}

// outcomeEntry normalizes an evaluation into its recorded form. Classified
// failures become part of the entry; anything else (parse errors, unknown
// names) is returned as a fatal error.
func outcomeEntry(src, typeName string, outcome expr.Outcome, err error) (record.Entry, error) {
	e := record.Entry{Expr: src, ResultType: typeName}
	if err != nil {
		var f *checked.Failure
		if !errors.As(err, &f) {
			return e, err
		}
		e.Failed = true
		e.Kind = uint8(f.Kind)
		e.Message = f.Msg
		return e, nil
	}
	e.IsBool = outcome.IsBool
	e.Value = outcome.String()
	return e, nil
}

type evalPayload struct {
	Expr       string `json:"expr"`
	ResultType string `json:"result_type"`
	Value      string `json:"value,omitempty"`
	Failed     bool   `json:"failed"`
	Kind       string `json:"kind,omitempty"`
	Message    string `json:"message,omitempty"`
}

func renderEntry(w io.Writer, e record.Entry, quiet bool) error {
	if evalFormat == "json" {
		p := evalPayload{
			Expr:       e.Expr,
			ResultType: e.ResultType,
			Value:      e.Value,
			Failed:     e.Failed,
		}
		if e.Failed {
			p.Kind = checked.Kind(e.Kind).String()
			p.Message = e.Message
		}
		enc := json.NewEncoder(w)
		return enc.Encode(p)
	}

	if e.Failed {
		_, err := fmt.Fprintf(w, "%s = %s\n",
			e.Expr, color.RedString("%s: %s", checked.Kind(e.Kind), e.Message))
		return err
	}
	if quiet {
		_, err := fmt.Fprintln(w, e.Value)
		return err
	}
	_, err := fmt.Fprintf(w, "%s = %s %s\n",
		e.Expr, color.GreenString("%s", e.Value), color.HiBlackString("(%s)", e.ResultType))
	return err
}
