package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
)

func newFmtCmd() *cobra.Command {
	var write, check bool
	cmd := &cobra.Command{
		Use:   "fmt [flags] notebook.ipynb...",
		Short: "Rewrite notebooks in canonical form",
		Long: `fmt parses each notebook and prints it back with sorted keys, one-space
indentation and sources split into lines. "-" reads standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && check {
				return fmt.Errorf("--write and --check are mutually exclusive")
			}
			var unformatted int
			for _, path := range args {
				orig, formatted, err := formatFile(cmd.InOrStdin(), path)
				if err != nil {
					return err
				}
				same := bytes.Equal(orig, formatted)
				switch {
				case check:
					if !same {
						unformatted++
						fmt.Fprintln(cmd.OutOrStdout(), path)
					}
				case write && path != "-":
					if same {
						continue
					}
					if err := os.WriteFile(path, formatted, 0o644); err != nil {
						return &notebook.FileError{Op: "write", Path: path, Err: err}
					}
				default:
					if _, err := cmd.OutOrStdout().Write(formatted); err != nil {
						return err
					}
				}
			}
			if unformatted > 0 {
				return fmt.Errorf("%d notebook(s) not formatted", unformatted)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to each file")
	cmd.Flags().BoolVar(&check, "check", false, "list files whose formatting differs and fail")
	return cmd
}

// formatFile returns the original bytes of path and their canonical form.
func formatFile(stdin io.Reader, path string) (orig, formatted []byte, err error) {
	if path == "-" {
		orig, err = io.ReadAll(stdin)
	} else {
		orig, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, &notebook.FileError{Op: "read", Path: path, Err: err}
	}
	nb, err := notebook.Parse(orig)
	if err != nil {
		var pe *notebook.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, nil, err
	}
	formatted, err = notebook.Serialize(nb)
	if err != nil {
		return nil, nil, err
	}
	return orig, formatted, nil
}
