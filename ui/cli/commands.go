// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/shelfmaster/internal/config"
	"github.com/toeirei/shelfmaster/internal/i18n"
	"github.com/toeirei/shelfmaster/internal/library"
	"github.com/toeirei/shelfmaster/internal/logging"
	"github.com/toeirei/shelfmaster/internal/tui"
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen terminal interface",
		Long: `Start the full-screen terminal interface. It offers the same operations
as the text menu on a fresh, empty library. Requires an interactive terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTUI(library.New())
			if errors.Is(err, tui.ErrNotATerminal) {
				return errors.New(i18n.T("tui.not_a_terminal"))
			}
			return err
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id>...",
		Short: "Check book identifiers against the catalog format",
		Long: `Check one or more book identifiers. A valid identifier is one uppercase
letter followed by four digits, e.g. A1234. Exits non-zero if any is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, id := range args {
				if library.IsValidBookID(id) {
					fmt.Fprintln(cmd.OutOrStdout(), i18n.T("validate.valid", id))
				} else {
					invalid++
					fmt.Fprintln(cmd.OutOrStdout(), i18n.T("validate.invalid", id))
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %s", library.ErrInvalidIdentifier, i18n.T("validate.failed", invalid, len(args)))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			system, _ := cmd.Flags().GetBool("system")
			path, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return err
			}
			logging.Infof("config: wrote %s", path)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	initCmd.Flags().Bool("system", false, "write the system-wide file instead of the user file")
	cmd.AddCommand(initCmd)

	return cmd
}
