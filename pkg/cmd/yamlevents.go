// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlevents/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type YamlEventsOptions struct{}

func NewDefaultYamlEventsOptions() *YamlEventsOptions {
	return &YamlEventsOptions{}
}

func NewDefaultYamlEventsCmd() *cobra.Command {
	return NewYamlEventsCmd(NewDefaultYamlEventsOptions())
}

func NewYamlEventsCmd(o *YamlEventsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "yamlevents",
		Version: version.Version,
		Short:   "yamlevents parses and emits YAML as a stream of events",
		Long: `yamlevents parses and emits YAML as a stream of events.

Events follow the yaml-test-suite notation (+STR, +DOC, =VAL, ...).`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewEventsCmd(NewEventsOptions()))
	cmd.AddCommand(NewRoundtripCmd(NewRoundtripOptions()))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
