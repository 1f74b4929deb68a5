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
	leadHarmony    string
	leadSteps      string
	leadIncomplete bool

	leadCmd = &cobra.Command{
		Use:   "lead MOTIF",
		Short: "Enumerate the valid leadings of a motif into a harmony",
		Long: `Generate every leading of the motif into the target harmony under
the common-tone and nearest-chordal-tone rules: each voice may retain
its pitch or move to an adjacent chordal tone (offsets from --steps).
By default only harmonically complete results are kept; pass
--incomplete to keep them all.

A motif that cannot be led under the given constraints yields no
results; that is not an error.

Examples:
  tessitura lead --harmony C,E,G "C4 E4"
  tessitura lead --harmony 0,4,7 --steps -1,1 "60 64/67"
  tessitura lead --harmony 2,5,9 --incomplete "C4"`,
		Args: cobra.ExactArgs(1),
		RunE: runLead,
	}
)

func init() {
	leadCmd.Flags().StringVar(&leadHarmony, "harmony", "", "target chord as a pitch-class set, e.g. 0,4,7 or C,E,G (required)")
	leadCmd.Flags().StringVar(&leadSteps, "steps", "", "permitted step offsets, e.g. -1,0,1 (default: config)")
	leadCmd.Flags().BoolVar(&leadIncomplete, "incomplete", false, "also keep harmonically incomplete leadings")
	_ = leadCmd.MarkFlagRequired("harmony")
	rootCmd.AddCommand(leadCmd)
}

func runLead(cmd *cobra.Command, args []string) error {
	m, err := notation.ParseMotif(args[0])
	if err != nil {
		return fmt.Errorf("motif: %w", err)
	}

	harmony, err := notation.ParseClasses(leadHarmony)
	if err != nil {
		return fmt.Errorf("harmony: %w", err)
	}
	if err := validation.ValidatePitchClasses(harmony); err != nil {
		return fmt.Errorf("harmony: %w", err)
	}

	cfg := voicing.DefaultConfig()
	cfg.Complete = config.Global.Defaults.Complete
	if len(config.Global.Defaults.Steps) > 0 {
		cfg.Steps = append([]int(nil), config.Global.Defaults.Steps...)
	}
	if leadSteps != "" {
		steps, err := notation.ParseSteps(leadSteps)
		if err != nil {
			return fmt.Errorf("steps: %w", err)
		}
		cfg.Steps = steps
	}
	if err := validation.ValidateSteps(cfg.Steps); err != nil {
		return fmt.Errorf("steps: %w", err)
	}
	if leadIncomplete {
		cfg.Complete = false
	}

	logger.Debug("leading", "voices", m.FlatLen(), "steps", cfg.Steps, "complete", cfg.Complete)

	var out []motif.Motif
	if err := capture(func() {
		out = voicing.Lead(m, scale.Harmony(harmony), cfg)
	}); err != nil {
		return fmt.Errorf("lead: %w", err)
	}

	if jsonOutput {
		return printJSON(map[string]any{
			"count":  len(out),
			"motifs": motifStrings(out),
		})
	}
	printMotifList(out)
	return nil
}
