// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"carvel.dev/yamlevents/pkg/cmd/ui"
	"carvel.dev/yamlevents/pkg/files"
	"carvel.dev/yamlevents/pkg/yamlevents"
	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
)

type RoundtripOptions struct {
	Files         []string
	EmitterConfig string
	Canonical     bool
	Indent        int
	Width         int
	Unicode       bool
	LineBreak     string
	YAMLVersion   string
	Diff          bool
	Debug         bool
}

func NewRoundtripOptions() *RoundtripOptions {
	return &RoundtripOptions{}
}

func NewRoundtripCmd(o *RoundtripOptions) *cobra.Command {
	defaults := DefaultEmitterOpts()

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Parse YAML files and emit them again",
		RunE:  func(cmd *cobra.Command, _ []string) error { return o.Run(cmd.Flags().Changed) },
	}
	cmd.Flags().StringArrayVarP(&o.Files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().StringVar(&o.EmitterConfig, "emitter-config", "", "TOML file with emitter settings (flags take precedence)")
	cmd.Flags().BoolVar(&o.Canonical, "canonical", defaults.Canonical, "Emit canonical YAML")
	cmd.Flags().IntVar(&o.Indent, "indent", defaults.Indent, "Block indentation (2-9)")
	cmd.Flags().IntVar(&o.Width, "width", defaults.Width, "Preferred line width (negative for unlimited)")
	cmd.Flags().BoolVar(&o.Unicode, "unicode", defaults.Unicode, "Write non-ASCII characters unescaped")
	cmd.Flags().StringVar(&o.LineBreak, "line-break", "lf", "Line break (lf, cr, crlf)")
	cmd.Flags().StringVar(&o.YAMLVersion, "yaml-version", "", "Add an explicit %YAML directive (1.1, 1.2) to every document")
	cmd.Flags().BoolVar(&o.Diff, "diff", false, "Print a diff of input and emitted output instead of the output")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

// Run uses flagChanged to decide which flags override --emitter-config.
func (o *RoundtripOptions) Run(flagChanged func(string) bool) error {
	return o.RunWithUI(flagChanged, ui.NewTTY(o.Debug))
}

func (o *RoundtripOptions) RunWithUI(flagChanged func(string) bool, ui ui.UI) error {
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	emitterOpts, err := o.emitterOpts(flagChanged)
	if err != nil {
		return err
	}

	ui.Debugf("emitter: %#v\n", emitterOpts)

	var docVersion *yamlevents.Version
	if len(o.YAMLVersion) > 0 {
		parsed, err := yamlevents.ParseVersion(o.YAMLVersion)
		if err != nil {
			return err
		}
		docVersion = &parsed
	}

	srcs, err := files.NewSources(o.Files)
	if err != nil {
		return err
	}

	for _, src := range srcs {
		if len(srcs) > 1 {
			ui.Printf("# %s\n", src.Description())
		}

		err := o.roundtrip(src, emitterOpts, docVersion, ui)
		if err != nil {
			return err
		}
	}

	return nil
}

func (o *RoundtripOptions) emitterOpts(flagChanged func(string) bool) (yamlevents.EmitterOpts, error) {
	opts := DefaultEmitterOpts()

	if len(o.EmitterConfig) > 0 {
		var err error
		opts, err = LoadEmitterConfig(o.EmitterConfig, opts)
		if err != nil {
			return yamlevents.EmitterOpts{}, err
		}
	}

	if flagChanged == nil {
		flagChanged = func(string) bool { return false }
	}

	if flagChanged("canonical") {
		opts.Canonical = o.Canonical
	}
	if flagChanged("indent") {
		opts.Indent = o.Indent
	}
	if flagChanged("width") {
		opts.Width = o.Width
	}
	if flagChanged("unicode") {
		opts.Unicode = o.Unicode
	}
	if flagChanged("line-break") {
		lineBreak, err := yamlevents.ParseLineBreak(o.LineBreak)
		if err != nil {
			return yamlevents.EmitterOpts{}, fmt.Errorf("Parsing --line-break: %w", err)
		}
		opts.LineBreak = lineBreak
	}

	return opts, nil
}

func (o *RoundtripOptions) roundtrip(src files.Source, emitterOpts yamlevents.EmitterOpts,
	docVersion *yamlevents.Version, ui ui.UI) error {

	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	var input io.Reader = rc
	var original bytes.Buffer
	if o.Diff {
		input = io.TeeReader(rc, &original)
	}

	var emitted bytes.Buffer
	output := ui.Writer()
	if o.Diff {
		output = &emitted
	}

	parser := yamlevents.NewParser(input, yamlevents.ParserOpts{})
	defer parser.Close()

	emitter := yamlevents.NewEmitter(output, emitterOpts)
	defer emitter.Close()

	var count int
	for {
		ev, err := parser.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("Parsing %s: %w", src.Description(), err)
		}

		if docStart, ok := ev.(*yamlevents.DocumentStart); ok && docVersion != nil {
			ui.Debugf("roundtrip: %s: replacing %s\n", src.Description(), docStart)
			ev = yamlevents.NewDocumentStart(yamlevents.DocumentStartProto{Version: docVersion})
		}

		err = emitter.Emit(ev)
		if err != nil {
			return fmt.Errorf("Emitting %s: %w", src.Description(), err)
		}
		count++
	}

	err = emitter.Close()
	if err != nil {
		return fmt.Errorf("Emitting %s: %w", src.Description(), err)
	}

	ui.Debugf("roundtrip: %s: %d events\n", src.Description(), count)

	if o.Diff {
		ui.Printf("%s\n", difflib.PPDiff(strings.Split(original.String(), "\n"), strings.Split(emitted.String(), "\n")))
	}

	return nil
}
