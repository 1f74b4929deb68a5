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
	"github.com/tessitura-dev/tessitura/pkg/validation"
	"github.com/tessitura-dev/tessitura/pkg/voicing"
)

var (
	rescaleMap string

	rescaleCmd = &cobra.Command{
		Use:   "rescale MOTIF",
		Short: "Remap pitch classes onto a new scale",
		Long: `Remap individual pitch classes to new pitch classes, keeping each
remapped pitch in the register nearest its source (never more than a
tritone away). Unmapped classes and rests pass through unchanged.

Examples:
  tessitura rescale --map 11:0,5:4 "B3 F4"
  tessitura rescale --map B:C,F:E "B3 F4/G4"`,
		Args: cobra.ExactArgs(1),
		RunE: runRescale,
	}
)

func init() {
	rescaleCmd.Flags().StringVar(&rescaleMap, "map", "", "pitch-class remapping, comma-separated from:to pairs (required)")
	_ = rescaleCmd.MarkFlagRequired("map")
	rootCmd.AddCommand(rescaleCmd)
}

func runRescale(cmd *cobra.Command, args []string) error {
	m, err := notation.ParseMotif(args[0])
	if err != nil {
		return fmt.Errorf("motif: %w", err)
	}

	mapping, err := notation.ParseMapping(rescaleMap)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}
	if err := validation.ValidateMapping(mapping); err != nil {
		return fmt.Errorf("map: %w", err)
	}

	logger.Debug("rescaling", "slots", len(m), "entries", len(mapping))

	out := voicing.Rescale(m, mapping)

	if jsonOutput {
		return printJSON(map[string]any{
			"motif": notation.FormatMotif(out, false),
		})
	}
	printMotif(out)
	return nil
}
