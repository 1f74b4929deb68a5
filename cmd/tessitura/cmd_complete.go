// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessitura-dev/tessitura/cmd/tessitura/internal/notation"
	"github.com/tessitura-dev/tessitura/pkg/scale"
	"github.com/tessitura-dev/tessitura/pkg/validation"
	"github.com/tessitura-dev/tessitura/pkg/voicing"
)

var (
	completeHarmony string
	completeExclude []string

	completeCmd = &cobra.Command{
		Use:   "complete MOTIF",
		Short: "Check whether a motif fully realizes a harmony",
		Long: `Report whether the motif's pitch classes cover every pitch class of
the harmony. Register is ignored; rests never count. Positions named
with --exclude (slot index "2", or "1.0" for a note inside a cluster)
are treated as rests, so a pedal tone can be left out of the
requirement.

Examples:
  tessitura complete --harmony C,E,G "C4 E4/G4"
  tessitura complete --harmony 0,4,7 --exclude 0 "C2 E4/G4/C5"`,
		Args: cobra.ExactArgs(1),
		RunE: runComplete,
	}
)

func init() {
	completeCmd.Flags().StringVar(&completeHarmony, "harmony", "", "target chord as a pitch-class set (required)")
	completeCmd.Flags().StringArrayVar(&completeExclude, "exclude", nil, "positions to leave out of the check (repeatable)")
	_ = completeCmd.MarkFlagRequired("harmony")
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	m, err := notation.ParseMotif(args[0])
	if err != nil {
		return fmt.Errorf("motif: %w", err)
	}

	harmony, err := notation.ParseClasses(completeHarmony)
	if err != nil {
		return fmt.Errorf("harmony: %w", err)
	}
	if err := validation.ValidatePitchClasses(harmony); err != nil {
		return fmt.Errorf("harmony: %w", err)
	}

	exclude, err := notation.ParsePositions(completeExclude)
	if err != nil {
		return fmt.Errorf("exclude: %w", err)
	}

	var complete bool
	if err := capture(func() {
		complete = voicing.IsCompleteMotif(m, scale.Harmony(harmony), exclude)
	}); err != nil {
		return fmt.Errorf("complete: %w", err)
	}

	if jsonOutput {
		return printJSON(map[string]any{
			"complete": complete,
		})
	}
	if complete {
		fmt.Println(styleGood().Render("complete"))
	} else {
		fmt.Println(styleError().Render("incomplete"))
	}
	return nil
}
