package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mattsre/gcw/internal/commit"
	"github.com/mattsre/gcw/internal/config"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage gcw configuration",
		Long:  `Manage gcw configuration: strict validation, editor, default type, signoff, and emoji decoration.`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(map[string]any{
				"strict":       cfg.Strict,
				"editor":       cfg.Editor,
				"default_type": cfg.DefaultType,
				"signoff":      cfg.Signoff,
				"emoji":        cfg.Emoji,
			})
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configErr != nil {
				return fmt.Errorf("configuration error: %w", configErr)
			}

			key, raw := args[0], args[1]
			value, err := parseConfigValue(key, raw)
			if err != nil {
				return err
			}

			viper.Set(key, value)
			if err := config.SaveConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %v\n", key, value)
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case "strict", "signoff", "emoji":
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects true or false, got %q", key, raw)
		}
		return value, nil
	case "editor":
		return raw, nil
	case "default_type":
		if raw != "" && !commit.IsValidType(raw) {
			return nil, fmt.Errorf("invalid commit type %q", raw)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown configuration key %q", key)
	}
}
