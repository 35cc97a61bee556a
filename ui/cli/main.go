// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the shared
// startup sequence (config, i18n, logging) that every subcommand runs.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/shelfmaster/buildvars"
	"github.com/toeirei/shelfmaster/internal/config"
	"github.com/toeirei/shelfmaster/internal/console"
	"github.com/toeirei/shelfmaster/internal/i18n"
	"github.com/toeirei/shelfmaster/internal/library"
	"github.com/toeirei/shelfmaster/internal/logging"
)

const modulePath = "github.com/toeirei/shelfmaster"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// appConfig is the effective configuration of the running command.
var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		logging.Errorf("config: %v", err)
		return errors.New(i18n.T("config.error_load", err))
	}

	i18n.SetLang(resolveLanguage(appConfig.Language))

	// Bad logging settings fall back to the defaults instead of stopping the app.
	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v; using warn", err)
		_ = logging.SetLevel("warn")
	}
	if err := logging.SetFormat(appConfig.Log.Format); err != nil {
		logging.Warnf("%v; using text", err)
		_ = logging.SetFormat("text")
	}
	logging.Debugf("config loaded: language=%s log.level=%s", i18n.GetLang(), appConfig.Log.Level)
	return nil
}

// resolveLanguage maps lang onto one of the embedded locales, ignoring case.
// Unknown languages fall back to English with a warning.
func resolveLanguage(lang string) string {
	if lang == "" {
		return "en"
	}
	for code := range i18n.GetAvailableLocales() {
		if strings.EqualFold(code, lang) {
			return code
		}
	}
	logging.Warnf("unknown language %q; using en", lang)
	return "en"
}

// Execute runs the CLI entrypoint. The root main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shelfmaster",
		Short: "Shelfmaster is a small library catalog and borrower tracker.",
		Long: `Shelfmaster keeps a catalog of books and a list of borrowers in memory
for the length of one session. Book identifiers are one uppercase letter
followed by four digits, e.g. A1234.

Running without a subcommand starts the numbered text menu on stdin/stdout.
Nothing is saved when the program exits.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := library.New()
			return console.New(lib, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	defaults := config.Defaults()
	cmd.PersistentFlags().BoolP("version", "V", false, "Print version and exit")
	cmd.PersistentFlags().String("config", "", "config file (default is $XDG_CONFIG_HOME/shelfmaster/shelfmaster.yaml)")
	cmd.PersistentFlags().String("language", defaults["language"].(string), `interface language ("en", "de", "zh-TW")`)
	cmd.PersistentFlags().String("log.level", defaults["log.level"].(string), "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.format", defaults["log.format"].(string), "log format (text, json)")

	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// resolveBuildVersion returns version, commit and date, preferring values
// from build info over the linker defaults.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	var ok bool
	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
			ok = true
		}
	} else {
		ok = true
	}

	if ok && info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
