// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/yamlevents/pkg/cmd/ui"
	"carvel.dev/yamlevents/pkg/version"
	"carvel.dev/yamlevents/pkg/yamlevents"
	"github.com/spf13/cobra"
)

type VersionOptions struct{}

func NewVersionOptions() *VersionOptions {
	return &VersionOptions{}
}

func NewVersionCmd(o *VersionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	return cmd
}

func (o *VersionOptions) Run() error {
	return o.RunWithUI(ui.NewTTY(false))
}

func (o *VersionOptions) RunWithUI(ui ui.UI) error {
	ui.Printf("yamlevents version %s\n", version.Version)
	ui.Printf("YAML versions: %s, %s\n", yamlevents.Version11, yamlevents.Version12)
	return nil
}
