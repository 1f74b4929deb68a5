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

	"github.com/tessitura-dev/tessitura/cmd/tessitura/config"
	"github.com/tessitura-dev/tessitura/cmd/tessitura/internal/notation"
	"github.com/tessitura-dev/tessitura/pkg/motif"
	"github.com/tessitura-dev/tessitura/pkg/scale"
	"github.com/tessitura-dev/tessitura/pkg/validation"
	"github.com/tessitura-dev/tessitura/pkg/voicing"
)

var (
	transposeScale string
	transposeStep  int

	transposeCmd = &cobra.Command{
		Use:   "transpose MOTIF",
		Short: "Shift every pitch of a motif along a scale",
		Long: `Move every pitch of the motif by the same number of scale steps.
Rests pass through; slot and cluster structure is preserved.

Examples:
  tessitura transpose --step 2 "C4 E4/G4 - D4"
  tessitura transpose --scale 0,2,3,5,7,8,10 --step -1 "60 63 67"`,
		Args: cobra.ExactArgs(1),
		RunE: runTranspose,
	}
)

func init() {
	transposeCmd.Flags().StringVar(&transposeScale, "scale", "", "pitch-class set, e.g. 0,2,4,5,7,9,11 or C,D,E,F,G,A,B (default: config)")
	transposeCmd.Flags().IntVar(&transposeStep, "step", 1, "signed scale-step count")
	rootCmd.AddCommand(transposeCmd)
}

func runTranspose(cmd *cobra.Command, args []string) error {
	m, err := notation.ParseMotif(args[0])
	if err != nil {
		return fmt.Errorf("motif: %w", err)
	}

	classes, err := scaleFlagOrConfig(transposeScale)
	if err != nil {
		return err
	}

	logger.Debug("transposing", "slots", len(m), "step", transposeStep)

	var out motif.Motif
	if err := capture(func() {
		out = voicing.Transpose(m, classes, transposeStep)
	}); err != nil {
		return fmt.Errorf("transpose: %w", err)
	}

	if jsonOutput {
		return printJSON(map[string]any{
			"motif": notation.FormatMotif(out, false),
		})
	}
	printMotif(out)
	return nil
}

// scaleFlagOrConfig resolves a --scale value, falling back to the
// configured default scale, and validates it.
func scaleFlagOrConfig(flag string) (scale.Scale, error) {
	var classes []motif.PitchClass
	if flag != "" {
		parsed, err := notation.ParseClasses(flag)
		if err != nil {
			return nil, fmt.Errorf("scale: %w", err)
		}
		classes = parsed
	} else {
		for _, c := range config.Global.Defaults.Scale {
			classes = append(classes, motif.PitchClass(c))
		}
	}
	if err := validation.ValidatePitchClasses(classes); err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	return scale.Scale(classes), nil
}
