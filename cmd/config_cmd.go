/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/taskpanel/internal/config"
	"github.com/josephgoksu/taskpanel/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect taskpanel configuration",
}

// configShowCmd shows current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(GetConfig()); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where configuration, logs and crash reports live",
	RunE: func(cmd *cobra.Command, args []string) error {
		file := viper.ConfigFileUsed()
		if file == "" {
			file = "(none, using defaults)"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:   %s\n", file)
		fmt.Fprintf(out, "base dir: %s\n", config.GetBaseDir())

		logs, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Fprintln(out, "crashes:  none")
			return nil
		}
		fmt.Fprintf(out, "crashes:  %d\n", len(logs))
		for _, path := range logs {
			fmt.Fprintf(out, "  %s\n", path)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
