package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"safenum/internal/expr"
	"safenum/internal/project"
	"safenum/internal/ui"
)

var (
	replType   string
	replConfig string
)

func init() {
	replCmd.Flags().StringVarP(&replType, "type", "t", "", "result type (int8..uint64; default from safenum.toml or int64)")
	replCmd.Flags().StringVar(&replConfig, "config", project.ConfigFileName, "config file path")
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive checked calculator",
	Long: `Start an interactive session. Each line is evaluated in the current
result type; switch types on the fly with ":type uint16".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return errors.New("repl requires an interactive terminal")
		}
		cfg, err := project.Load(replConfig)
		if err != nil {
			return err
		}
		typeName := replType
		if typeName == "" {
			typeName = cfg.ResultType("int64")
		}
		target, ok := expr.ParseNumType(typeName)
		if !ok {
			return fmt.Errorf("unknown result type %q", typeName)
		}

		evaluate := func(line string) (string, bool) {
			if name, found := strings.CutPrefix(line, ":type"); found {
				name = strings.TrimSpace(name)
				t, ok := expr.ParseNumType(name)
				if !ok {
					return fmt.Sprintf("unknown result type %q", name), true
				}
				target = t
				return "result type is now " + t.String(), false
			}
			outcome, err := expr.EvalString(line, target)
			if err != nil {
				return err.Error(), true
			}
			return outcome.String() + " (" + target.String() + ")", false
		}

		p := tea.NewProgram(ui.NewReplModel("safenum: checked integer arithmetic", evaluate))
		_, err = p.Run()
		return err
	},
}
