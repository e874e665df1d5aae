package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/Hina-Kagiyama/nbterm/internal/notebook"
	"github.com/Hina-Kagiyama/nbterm/internal/session"
)

// summary is the YAML document printed by info.
type summary struct {
	Path     string     `yaml:"path"`
	Format   string     `yaml:"nbformat"`
	Language string     `yaml:"language,omitempty"`
	Kernel   string     `yaml:"kernel,omitempty"`
	Cells    cellCounts `yaml:"cells"`
	Outputs  int        `yaml:"outputs"`
	Executed int        `yaml:"executed"`
	Headings []string   `yaml:"headings,omitempty"`
	Symbols  []string   `yaml:"symbols,omitempty"`
}

type cellCounts struct {
	Code     int `yaml:"code"`
	Markdown int `yaml:"markdown"`
	Raw      int `yaml:"raw"`
}

func newInfoCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "info [flags] notebook.ipynb...",
		Short: "Summarize notebooks as YAML",
		Long: `info prints cell counts, language, headings and definitions of each
notebook. With --query it prints the value at a JSON path instead, for
example "metadata.kernelspec.name" or "cells.#".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if query != "" {
				for _, path := range args {
					data, err := os.ReadFile(path)
					if err != nil {
						return &notebook.FileError{Op: "read", Path: path, Err: err}
					}
					if !gjson.ValidBytes(data) {
						return &notebook.ParseError{Path: path, Message: "invalid JSON"}
					}
					fmt.Fprintln(out, gjson.GetBytes(data, query).String())
				}
				return nil
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			for _, path := range args {
				nb, err := notebook.Load(path)
				if err != nil {
					return err
				}
				if err := enc.Encode(summarize(path, nb)); err != nil {
					return err
				}
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "print the value at this JSON path")
	return cmd
}

func summarize(path string, nb *notebook.Notebook) summary {
	s := summary{
		Path:     path,
		Format:   fmt.Sprintf("%d.%d", nb.Format, nb.FormatMinor),
		Language: nb.Language(),
	}
	if ks := nb.Metadata.Kernelspec; ks != nil {
		s.Kernel = ks.DisplayName
	}
	for c := range nb.Cells() {
		switch c.Type() {
		case notebook.CellCode:
			s.Cells.Code++
		case notebook.CellMarkdown:
			s.Cells.Markdown++
		case notebook.CellRaw:
			s.Cells.Raw++
		}
	}
	for c := range nb.CodeCells() {
		s.Outputs += len(c.Outputs)
		if c.ExecutionCount != nil {
			s.Executed++
		}
	}
	for _, h := range session.Outline(nb) {
		s.Headings = append(s.Headings, strings.Repeat("#", h.Level)+" "+h.Title)
	}
	for _, sym := range session.Symbols(nb) {
		s.Symbols = append(s.Symbols, sym.Kind+" "+sym.Name)
	}
	return s
}
