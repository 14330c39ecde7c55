/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/josephgoksu/taskpanel/internal/logger"
	"github.com/josephgoksu/taskpanel/internal/todo"
	"github.com/josephgoksu/taskpanel/internal/ui"
	"github.com/spf13/cobra"
)

var traceRun bool

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Replay panel actions from a script and print the result",
	Long: `Run applies one panel action per line, read from the script file or
from stdin when no file is given, then prints the final panel.

Actions:
  add <text>        add a task
  type <text>       set the composer text, or the edit text while editing
  submit            add the composer text
  toggle <ref>      flip a task between active and completed
  edit <ref>        start editing a task
  save | cancel     finish the edit in progress
  delete <ref>      remove a task
  filter <name>     All, Active or Completed
  clear             remove completed tasks

A <ref> is a task id or #n for the n-th visible task. Blank lines and lines
starting with '#' are ignored.`,
	Example: `  printf 'add Water plants\ntoggle #1\nfilter active\n' | taskpanel run --ids sequence`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := appFs.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		cfg := GetConfig()
		ctrl, err := newController(cfg)
		if err != nil {
			return err
		}
		return runScript(ctrl, in, cmd.OutOrStdout(), staticView(cfg), traceRun)
	},
}

// runScript applies each scripted action to ctrl and renders the panel at
// the end, or after every action when trace is set.
func runScript(ctrl *todo.Controller, in io.Reader, out io.Writer, view ui.PanelView, trace bool) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		command, err := todo.ParseCommand(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		logger.SetLastCommand(command.String())
		changed := ctrl.Apply(command)
		slog.Debug("script action", "line", lineNo, "action", string(command.Action), "changed", changed)

		if trace {
			marker := ""
			if !changed {
				marker = " (no change)"
			}
			fmt.Fprintf(out, "> %s%s\n", command, marker)
			fmt.Fprintln(out, ui.RenderTodoPanel(ctrl, view))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	if !trace {
		fmt.Fprintln(out, ui.RenderTodoPanel(ctrl, view))
	}
	return nil
}

func init() {
	runCmd.Flags().BoolVarP(&traceRun, "trace", "t", false, "print the panel after every action")
	rootCmd.AddCommand(runCmd)
}
