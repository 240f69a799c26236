// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thatcatcamp/huekit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage huekit configuration",
	Long:  "View and modify huekit configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail(err)
		}

		fmt.Println(config.GetString(args[0]))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail(err)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fail(fmt.Errorf("setting config: %w", err))
		}
		if _, err := config.Theme(); err != nil {
			fmt.Printf("Warning: %v\n", err)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fail(err)
		}

		fmt.Printf("# %s\n", config.DefaultPath())
		for _, line := range flatten("", config.GetAll()) {
			fmt.Println(line)
		}
	},
}

// flatten turns nested settings into sorted dotted key lines
func flatten(prefix string, m map[string]any) []string {
	var out []string
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			out = append(out, flatten(key, nested)...)
			continue
		}
		out = append(out, fmt.Sprintf("%s: %v", key, v))
	}
	sort.Strings(out)
	return out
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
