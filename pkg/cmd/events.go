// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"carvel.dev/yamlevents/pkg/cmd/ui"
	"carvel.dev/yamlevents/pkg/files"
	"carvel.dev/yamlevents/pkg/spell"
	"carvel.dev/yamlevents/pkg/yamlevents"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type EventsOptions struct {
	Files     []string
	Color     string
	Positions bool
	Debug     bool
}

func NewEventsOptions() *EventsOptions {
	return &EventsOptions{}
}

func NewEventsCmd(o *EventsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print the event stream of YAML files",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().StringVar(&o.Color, "color", "auto", "Colorize events (auto, always, never)")
	cmd.Flags().BoolVar(&o.Positions, "positions", false, "Prefix each event with its start and end position")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *EventsOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(o.Debug))
}

func (o *EventsOptions) RunWithUI(ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	colored, err := colorEnabled(o.Color, ui)
	if err != nil {
		return err
	}

	srcs, err := files.NewSources(o.Files)
	if err != nil {
		return err
	}

	palette := newNotationPalette(colored)

	for _, src := range srcs {
		if len(srcs) > 1 {
			ui.Printf("# %s\n", src.Description())
		}

		count, err := o.printEvents(src, palette, ui)
		if err != nil {
			return err
		}

		ui.Debugf("events: %s: %d events\n", src.Description(), count)
	}

	return nil
}

func (o *EventsOptions) printEvents(src files.Source, palette notationPalette, ui ui.UI) (int, error) {
	rc, err := src.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	parser := yamlevents.NewParser(rc, yamlevents.ParserOpts{})
	defer parser.Close()

	var count int
	for {
		ev, err := parser.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("Parsing %s: %w", src.Description(), err)
		}
		count++

		if o.Positions {
			ui.Printf("%s-%s ", ev.Start().AsCompactString(), ev.End().AsCompactString())
		}
		ui.Printf("%s\n", palette.Sprint(ev))
	}
}

// colorEnabled resolves --color. "auto" colors only when writing to a terminal
// and NO_COLOR is not set.
func colorEnabled(mode string, ui ui.UI) (bool, error) {
	switch mode {
	case "auto", "":
		return ui.IsTerminal() && !color.NoColor, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("Expected --color to be one of auto, always, never, but was '%s'%s",
			mode, spell.Hint(mode, []string{"auto", "always", "never"}))
	}
}

type notationPalette struct {
	structure *color.Color
	scalar    *color.Color
	alias     *color.Color
}

func newNotationPalette(enabled bool) notationPalette {
	p := notationPalette{
		structure: color.New(color.FgCyan),
		scalar:    color.New(color.FgGreen),
		alias:     color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.structure, p.scalar, p.alias} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p notationPalette) Sprint(ev yamlevents.Event) string {
	line := yamlevents.NotationString(ev)

	switch ev.Kind() {
	case yamlevents.ScalarKind:
		return p.scalar.Sprint(line)
	case yamlevents.AliasKind:
		return p.alias.Sprint(line)
	default:
		return p.structure.Sprint(line)
	}
}
