/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/josephgoksu/taskpanel/internal/config"
	"github.com/josephgoksu/taskpanel/internal/logger"
	"github.com/josephgoksu/taskpanel/internal/todo"
	"github.com/josephgoksu/taskpanel/internal/ui"
	"github.com/josephgoksu/taskpanel/types"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output and debug logging.
	verbose bool
	// noSeed starts the session with an empty list.
	noSeed bool
	// version is the application version.
	version = "0.1.0"

	// appFs is the filesystem used for scripts and log files.
	appFs afero.Fs = afero.NewOsFs()
	// interactive decides between the live panel and a one-shot render.
	interactive = ui.IsInteractive

	logCloser io.Closer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskpanel",
	Short: "taskpanel - a task list panel for the terminal",
	Long: `taskpanel keeps a small in-memory task list in a styled terminal panel.
Add, edit, complete and delete tasks, filter the view and clear finished
work. Nothing is saved: the list lives as long as the session.

When stdout is not a terminal the panel is rendered once and printed.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	cobra.OnInitialize(InitConfig)
	cobra.OnFinalize(closeSessionLog)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.taskpanel/.taskpanel.yaml or $HOME/.taskpanel.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output and debug logging")
	pf.StringP("filter", "f", "", "initial filter: All, Active or Completed")
	pf.IntP("width", "w", 0, "panel width in cells")
	pf.String("ids", "", "task id scheme: uuid or sequence")
	pf.BoolVar(&noSeed, "no-seed", false, "start with an empty list instead of the sample tasks")
	pf.String("log-file", "", "write diagnostic logs to this file")
	pf.String("log-level", "", "log level: debug, info, warn or error")
}

// bindFlags maps persistent flags onto config keys. InitConfig calls it on
// every initialisation so the bindings land on the current viper instance.
func bindFlags() {
	pf := rootCmd.PersistentFlags()
	for key, flag := range map[string]string{
		"config":          "config",
		"verbose":         "verbose",
		"ui.filter":       "filter",
		"ui.width":        "width",
		"tasks.id_scheme": "ids",
		"log.path":        "log-file",
		"log.level":       "log-level",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func setupSession(cmd *cobra.Command, args []string) error {
	if configErr != nil {
		return configErr
	}
	cfg := GetConfig()

	logger.SetFs(appFs)
	logger.SetBasePath(config.GetBaseDir())
	logger.SetVersion(version)
	logger.SetCommand(cmd.CommandPath())

	logPath := cfg.Log.Path
	level := cfg.Log.Level
	if cfg.Verbose {
		level = "debug"
		if logPath == "" {
			logPath = filepath.Join(config.GetBaseDir(), "logs", "taskpanel.log")
		}
	}
	closer, err := logger.Setup(appFs, logPath, level)
	if err != nil {
		return err
	}
	logCloser = closer
	slog.Debug("session starting", "command", cmd.CommandPath(), "config", viper.ConfigFileUsed())
	return nil
}

// closeSessionLog runs after every command, including ones whose RunE
// failed and so never reached a post-run hook.
func closeSessionLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
	logCloser = nil
}

// newController builds the session's controller from configuration.
func newController(cfg *types.AppConfig) (*todo.Controller, error) {
	opts := []todo.Option{}
	if f, err := todo.ParseFilter(cfg.UI.Filter); err == nil {
		opts = append(opts, todo.WithFilter(f))
	}
	if cfg.Tasks.IDScheme == config.IDSchemeSequence {
		opts = append(opts, todo.WithIDGenerator(todo.Sequence(1)))
	}
	if cfg.UI.Seed {
		opts = append(opts, todo.WithTasks(todo.SampleTasks()...))
	}
	ctrl, err := todo.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start task list: %w", err)
	}
	return ctrl, nil
}

func staticView(cfg *types.AppConfig) ui.PanelView {
	return ui.PanelView{
		Title:  cfg.UI.Title,
		Width:  cfg.UI.Width,
		Theme:  ui.NewTheme(cfg.UI.Accent),
		Cursor: -1,
	}
}

func runPanel(cmd *cobra.Command) error {
	cfg := GetConfig()
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	if !interactive() {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTodoPanel(ctrl, staticView(cfg)))
		return nil
	}

	model := ui.NewTodoModel(ctrl, ui.TodoOptions{
		Title:  cfg.UI.Title,
		Width:  cfg.UI.Width,
		Accent: cfg.UI.Accent,
	})
	p := ui.NewTodoProgram(model, tea.WithAltScreen())
	watchConfig(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("task panel error: %w", err)
	}
	slog.Info("session ended", "tasks", ctrl.Len(), "remaining", ctrl.RemainingCount())
	return nil
}

// watchConfig forwards appearance changes in the config file to the panel.
func watchConfig(p *tea.Program) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		slog.Debug("config file changed", "file", e.Name, "op", e.Op.String())
		p.Send(ui.MsgConfigReloaded{
			Title:  viper.GetString("ui.title"),
			Accent: viper.GetString("ui.accent"),
		})
	})
	viper.WatchConfig()
}
