package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hadalized/internal/color"
	"hadalized/internal/config"
	"hadalized/internal/tui"
	"hadalized/pkg/errors"
)

// defaultPaletteName is used when a palette command is run without a
// name argument.
const defaultPaletteName = "hadalized"

func newPaletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Inspect and parse the configured palettes",
	}

	cmd.AddCommand(newPaletteParseCmd())
	cmd.AddCommand(newPaletteListCmd())
	cmd.AddCommand(newPaletteShowCmd())

	return cmd
}

type paletteParseOptions struct {
	gamut string
}

func newPaletteParseCmd() *cobra.Command {
	opts := &paletteParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [name]",
		Short: "Parse palettes and print their derived colors as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			name := defaultPaletteName
			if len(args) == 1 {
				name = args[0]
			}
			return runPaletteParse(cmd, cfg, name, opts)
		},
	}

	cmd.Flags().StringVar(&opts.gamut, "gamut", "", "Parse against this gamut instead of each palette's own")

	return cmd
}

func runPaletteParse(cmd *cobra.Command, cfg *config.Config, name string, opts *paletteParseOptions) error {
	gamut := color.Space(opts.gamut)
	if opts.gamut != "" && !gamut.IsRGB() {
		return errors.NewValidationError("gamut", fmt.Sprintf("unsupported gamut %q", opts.gamut), nil)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	for _, item := range append([]string{name}, cfg.IncludePalettes...) {
		p, err := cfg.GetPalette(item)
		if err != nil {
			return err
		}
		parsed, err := p.Parse(gamut)
		if err != nil {
			return err
		}
		if err := enc.Encode(parsed); err != nil {
			return err
		}
	}
	return nil
}

func newPaletteListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the configured palettes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runPaletteList(cmd, cfg)
		},
	}

	return cmd
}

func runPaletteList(cmd *cobra.Command, cfg *config.Config) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMODE\tGAMUT\tALIASES\tDESCRIPTION")
	for _, name := range cfg.PaletteNames() {
		p, err := cfg.GetPalette(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			name, p.Mode, p.Gamut, strings.Join(p.Aliases, ","), p.Desc)
	}
	return tw.Flush()
}

func newPaletteShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a palette's swatches and derived values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			name := defaultPaletteName
			if len(args) == 1 {
				name = args[0]
			}
			return runPaletteShow(cmd, cfg, name)
		},
	}

	return cmd
}

func runPaletteShow(cmd *cobra.Command, cfg *config.Config, name string) error {
	p, err := cfg.GetPalette(name)
	if err != nil {
		return err
	}
	parsed, err := p.Parse("")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.Summary(parsed))
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(out)
		fmt.Fprint(out, tui.SwatchRows(parsed))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, tui.PaletteTable(parsed))
	return nil
}
