// Command nbterm is a terminal editor for Jupyter notebooks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nbterm: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts editorOptions
	root := &cobra.Command{
		Use:   "nbterm [flags] [notebook.ipynb...]",
		Short: "Edit Jupyter notebooks in the terminal",
		Long: `nbterm opens each notebook in its own tab. A path that does not exist
opens an empty notebook that is created on the first save.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			return runEditor(cmd, opts)
		},
	}

	f := root.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "configuration file (default $XDG_CONFIG_HOME/nbterm/config.toml)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn or error (default from config)")
	f.StringVar(&opts.logFile, "log-file", "", "append logs to this file (default from config, else discarded)")
	f.BoolVarP(&opts.readOnly, "read-only", "R", false, "open notebooks read-only")
	f.BoolVar(&opts.noScript, "no-script", false, "skip init.lua")

	root.AddCommand(newFmtCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nbterm %s (commit %s, built %s)\n", version, commit, date)
			return err
		},
	}
}
