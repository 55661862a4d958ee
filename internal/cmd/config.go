package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/gridtable/internal/config"
	"github.com/go-theft-auto/gridtable/internal/output"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `Manage CLI configuration stored in ~/.config/gridtable/config.yaml.

Settings act as defaults: a layout file or flag that sets the same value wins.`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if *cfg == (config.Config{}) && !output.IsStructured(opts.format) {
				fmt.Fprintln(cmd.OutOrStdout(), "(empty)")
				return nil
			}
			return opts.printer(cmd).Print(cmd.Context(), cfg)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configPath()
			if err != nil {
				return err
			}
			return opts.printer(cmd).Print(cmd.Context(), path)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			value := strings.TrimSpace(args[1])
			return opts.updateConfig(cmd, key, func(cfg *config.Config) error {
				return cfg.Set(key, value)
			}, map[string]string{"status": "updated", "key": key, "value": value})
		},
	}

	unsetCmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			return opts.updateConfig(cmd, key, func(cfg *config.Config) error {
				return cfg.Unset(key)
			}, map[string]string{"status": "unset", "key": key})
		},
	}

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "List supported configuration keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.printer(cmd).Print(cmd.Context(), config.Keys())
		},
	}

	configCmd.AddCommand(showCmd, pathCmd, setCmd, unsetCmd, keysCmd)
	return configCmd
}

func (o *globalOptions) updateConfig(cmd *cobra.Command, key string, apply func(*config.Config) error, result map[string]string) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if err := apply(cfg); err != nil {
		return err
	}

	path, err := o.configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if output.IsStructured(o.format) {
		return o.printer(cmd).Print(cmd.Context(), result)
	}
	verb := "Updated"
	if result["status"] == "unset" {
		verb = "Unset"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, key)
	return err
}
