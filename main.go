// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
██╗  ██╗███████╗██╗   ██╗████████╗██████╗ ███████╗███████╗
██║ ██╔╝██╔════╝╚██╗ ██╔╝╚══██╔══╝██╔══██╗██╔════╝██╔════╝
█████╔╝ █████╗   ╚████╔╝    ██║   ██████╔╝█████╗  █████╗
██╔═██╗ ██╔══╝    ╚██╔╝     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██╗███████╗   ██║      ██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝╚══════╝   ╚═╝      ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Height-balanced key tree you can drive from the shell [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var logLevel string

	// config returns the loaded configuration with the --log-level override
	config := func() *Config {
		cfg, err := LoadConfig()
		if err != nil {
			fallback := defaultConfig
			cfg = &fallback
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		return cfg
	}

	runConsole := func(cmd *cobra.Command, args []string) {
		cfg := config()
		session, err := loadSession(cfg, cmd.Flag("file").Value.String(), true, os.Stderr)
		if err != nil {
			log.Fatalf("Error loading keys: %v", err)
		}
		if err := runBubbleTeaApp(session); err != nil {
			log.Fatalf("Error running console: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive keytree console",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the console, optionally preloaded from a key file`),
		Args:  cobra.NoArgs,
		Run:   runConsole,
	}
	cmdRun.Flags().StringP("file", "f", "", "key file to load before starting")

	var cmdExec = &cobra.Command{
		Use:   "exec [LINE...]",
		Short: "Run console commands non-interactively",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs each argument as a console command line. Without arguments
it reads lines from --script, or from standard input.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			session, err := loadSession(cfg, cmd.Flag("file").Value.String(), false, os.Stderr)
			if err != nil {
				return err
			}

			var input io.Reader = os.Stdin
			if len(args) > 0 {
				input = strings.NewReader(strings.Join(args, "\n"))
			} else if script := cmd.Flag("script").Value.String(); script != "" {
				file, err := os.Open(script)
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			}

			failures, err := runScript(session, input, os.Stdout, os.Stderr)
			if err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("%d command(s) failed", failures)
			}
			return nil
		},
	}
	cmdExec.Flags().StringP("file", "f", "", "key file to load first")
	cmdExec.Flags().StringP("script", "s", "", "file of command lines to run")

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Load a key file and print a traversal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show prints the keys of a key file in pre, in, post or bft order, or draws the tree`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			session, err := loadSession(cfg, cmd.Flag("file").Value.String(), false, os.Stderr)
			if err != nil {
				return err
			}

			order := cmd.Flag("order").Value.String()
			if order == "" {
				order = cfg.Tree.DefaultOrder
			}
			if order == "tree" {
				fmt.Print(session.Render(cfg.Tree.ShowValues))
				return nil
			}
			keys, err := session.Traverse(order)
			if err != nil {
				return err
			}
			fmt.Println(formatKeys(keys))
			return nil
		},
	}
	cmdShow.Flags().StringP("file", "f", "", "key file to load")
	cmdShow.Flags().StringP("order", "o", "", "pre, in, post, bft or tree (default from settings)")
	cmdShow.MarkFlagRequired("file")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print keytree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the keytree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show keytree settings, creating the default file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print keytree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "keytree",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		// Default to the console when no subcommand is provided
		Run: runConsole,
	}
	rootCmd.Flags().StringP("file", "f", "", "key file to load before starting")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(cmdRun, cmdExec, cmdShow, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
