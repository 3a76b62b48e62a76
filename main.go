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
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// bootstrap loads the config, seeds the catalogue and wires the shell.
func bootstrap(configPath, seedOverride string) (*Shell, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	inv := NewInventory(config)
	if config.Trace.Enabled {
		tracer := log.New(os.Stderr, "[trace] ", log.LstdFlags)
		inv.SetTracer(tracer.Printf)
	}

	seedFile := config.Inventory.SeedFile
	if seedOverride != "" {
		seedFile = seedOverride
	}
	if seedFile != "" {
		var progress io.Writer
		if isatty.IsTerminal(os.Stderr.Fd()) {
			progress = os.Stderr
		}
		n, err := LoadCatalogue(seedFile, inv, progress)
		if err != nil {
			return nil, fmt.Errorf("seeding from %s: %w", seedFile, err)
		}
		if progress != nil {
			fmt.Fprintln(os.Stderr)
		}
		log.Printf("Loaded %d products from %s", n, seedFile)
	}

	cards, err := NewCardRenderer(config.Cards, config.Inventory.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return NewShell(inv, cards), nil
}

func main() {
	InitializeColors()

	var configPath, seedFile string

	launchUI := func(cmd *cobra.Command, args []string) {
		shell, err := bootstrap(configPath, seedFile)
		if err != nil {
			log.Fatalf("Error starting pharmadex: %v", err)
		}
		if err := runBubbleTeaApp(shell); err != nil {
			log.Fatalf("Error running UI: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the pharmadex terminal UI",
		Args:  cobra.NoArgs,
		Run:   launchUI,
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Reads pharmadex commands line by line from stdin",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			shell, err := bootstrap(configPath, seedFile)
			if err != nil {
				log.Fatalf("Error starting pharmadex: %v", err)
			}
			prompt := isatty.IsTerminal(os.Stdin.Fd())
			if err := RunShell(shell, os.Stdin, os.Stdout, prompt); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}

	var cmdExec = &cobra.Command{
		Use:     "exec <command>...",
		Short:   "Runs each argument as a pharmadex command and exits",
		Example: `  pharmadex exec --seed catalogue.yaml "sell 3 2" "low" "history"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := bootstrap(configPath, seedFile)
			if err != nil {
				return err
			}
			for _, line := range args {
				out, err := shell.Execute(line)
				if errors.Is(err, ErrQuit) {
					return nil
				}
				if err != nil {
					return fmt.Errorf("%s: %w", line, err)
				}
				if out != "" {
					fmt.Println(out)
				}
			}
			return nil
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print pharmadex usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print pharmadex version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "pharmadex",
		Version:      version,
		Short:        "In-memory pharmacy counter: catalogue, sales, queue and undo",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		// Default to the UI when no subcommand is provided
		Run: launchUI,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.pharmadex.yaml)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML catalogue to load at start-up")
	rootCmd.AddCommand(cmdRun, cmdShell, cmdExec, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
