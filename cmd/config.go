// Package cmd implements the command-line interface for mu.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/config"
	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errUnknownKey rejects a key that is not in the registry, suggesting the
// closest known one for the common typo case.
func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// resolveKey takes the config key from the first positional argument or the
// --key flag and validates it against the registry. Commands calling it must
// register a --key string flag.
func resolveKey(cmd *cobra.Command, args []string) string {
	key := lo.Must(cmd.Flags().GetString("key"))
	if len(args) >= 1 {
		key = args[0]
	}

	if key == "" {
		handleErr(errors.New("key is required as an argument or --key flag"))
	}

	if _, ok := config.Default[key]; !ok {
		handleErr(errUnknownKey(key))
	}

	return key
}

// coerceValue parses raw into the type of the field's default, so a TOML
// file never ends up holding a value viper cannot read back as that type.
func coerceValue(field config.Field, raw []string) (any, error) {
	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		parsed, err := strconv.ParseInt(raw[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}

		return int(parsed), nil
	case bool:
		parsed, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}

		return parsed, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("cannot set value of type %T", field.Value)
	}
}

// persistConfig flushes the in-memory state to the config file, creating the
// file on first use.
func persistConfig() {
	err := viper.WriteConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		err = viper.SafeWriteConfig()
	}

	handleErr(err)
}

// configFile is the full path of the TOML config file.
func configFile() string {
	return filepath.Join(where.Config(), constant.Mu+".toml")
}

// printSuccess prints a confirmation line prefixed with the success icon.
func printSuccess(format string, a ...any) {
	fmt.Printf(
		"%s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		fmt.Sprintf(format, a...),
	)
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// configCmd groups the configuration management subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration settings and defaults",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Limit the output to the given keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

// configInfoCmd describes the registered configuration fields.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration fields, their defaults and current values",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJSON = lo.Must(cmd.Flags().GetBool("json"))
		)

		fields := lo.Values(config.Default)
		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, key := range keys {
				field, ok := config.Default[key]
				if !ok {
					handleErr(errUnknownKey(key))
				}

				fields = append(fields, field)
			}
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			return strings.Compare(a.Key, b.Key)
		})

		if asJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(fields))
			return
		}

		for i, field := range fields {
			fmt.Print(field.Pretty())

			if i < len(fields)-1 {
				fmt.Print("\n\n")
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The configuration key to change")
	configSetCmd.Flags().StringSliceP("value", "v", nil, "The new value to assign")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configSetCmd assigns a new value to a configuration key, coerced to the
// type of the key's default.
var configSetCmd = &cobra.Command{
	Use:               "set [key] [value]",
	Short:             "Assign a new value to a configuration key",
	Args:              cobra.MaximumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		key := resolveKey(cmd, args)

		value := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) >= 2 {
			value = args[1:]
		}

		if len(value) == 0 {
			handleErr(errors.New("value is required as an argument or --value flag"))
		}

		v, err := coerceValue(config.Default[key], value)
		handleErr(err)

		viper.Set(key, v)
		persistConfig()

		printSuccess(
			"set %s to %s",
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", v)),
		)
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The configuration key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configGetCmd prints the effective value of a configuration key.
var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the effective value of a configuration key",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(viper.Get(resolveKey(cmd, args)))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

// configWriteCmd serializes the effective configuration to disk.
var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the effective configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			err := filesystem.API().Remove(configFile())
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		printSuccess("wrote config to %s", configFile())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

// configDeleteCmd removes the config file, falling back to factory defaults.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the configuration file from the system",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		printSuccess("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The configuration key to restore to its default")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key to its factory default")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

// configResetCmd restores configuration keys to their factory defaults.
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore a configuration key to its default value",
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("key") && !cmd.Flags().Changed("all") {
			handleErr(errors.New("either --key or --all must be set"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for key, field := range config.Default {
				viper.Set(key, field.Value)
			}

			persistConfig()
			printSuccess("reset all config values")
			return
		}

		key := lo.Must(cmd.Flags().GetString("key"))
		if _, ok := config.Default[key]; !ok {
			handleErr(errUnknownKey(key))
		}

		viper.Set(key, config.Default[key].Value)
		persistConfig()

		printSuccess(
			"reset %s to default value %s",
			style.Fg(color.Purple)(key),
			style.Fg(color.Yellow)(fmt.Sprintf("%v", config.Default[key].Value)),
		)
	},
}
