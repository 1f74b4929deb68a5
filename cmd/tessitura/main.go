// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command tessitura manipulates symbolic pitch lines ("motifs") under
// scale and harmony constraints.
//
// Motifs are given inline: whitespace-separated slots, "/" joins the
// notes of a chordal cluster, "-" is a rest. Notes are MIDI numbers or
// note names (C4 = 60).
//
// Usage:
//
//	tessitura transpose --scale 0,2,4,5,7,9,11 --step 2 "C4 E4/G4 - D4"
//	tessitura rescale --map 11:0,5:4 "B3 F4"
//	tessitura lead --harmony C,E,G "C4 E4"
//	tessitura complete --harmony 0,4,7 --exclude 1.0 "C4 E4/G4"
//
// Results print to stdout; logs go to stderr. Pass --json for
// machine-readable output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessitura-dev/tessitura/cmd/tessitura/config"
	"github.com/tessitura-dev/tessitura/pkg/logging"
)

var (
	jsonOutput bool
	noColor    bool
	verbose    bool

	logger = logging.Default()

	rootCmd = &cobra.Command{
		Use:   "tessitura",
		Short: "Manipulate symbolic pitch lines under scale and harmony constraints",
		Long: `Tessitura moves pitches along scales, remaps pitch classes between
scales, and enumerates the valid harmonic leadings of a motif into a
target chord.

Motif notation: slots separated by spaces, "/" joins simultaneous
notes into a cluster, "-" is a rest. Notes are MIDI numbers ("60") or
note names ("C4", "F#3", "Bb2").`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError().Render("error: ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		logger = logging.New(logging.Config{Level: level, Service: "cli"})
		return nil
	}
}

// capture runs f, converting a contract-violation panic from the core
// (out-of-range motion, bad position) into a user-facing error.
func capture(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	f()
	return nil
}
