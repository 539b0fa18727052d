// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/quadsolver/internal/config"
	"github.com/toeirei/quadsolver/internal/i18n"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or persist the effective configuration",
	}

	var system bool
	writeCmd := &cobra.Command{
		Use:   "write",
		Short: "Write the effective configuration to the user (or system) config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&opts.appConfig, system)
			if err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return nil
		},
	}
	writeCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide config file instead of the user one")

	configCmd.AddCommand(writeCmd)
	return configCmd
}
