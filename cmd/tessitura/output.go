// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/tessitura-dev/tessitura/cmd/tessitura/config"
	"github.com/tessitura-dev/tessitura/cmd/tessitura/internal/notation"
	"github.com/tessitura-dev/tessitura/pkg/motif"
)

// Tessitura color palette - aged brass and parchment
var (
	colorBrass  = lipgloss.Color("#C9A227") // highlights, motif pitches
	colorUmber  = lipgloss.Color("#8A6D3B") // secondary, indices
	colorSage   = lipgloss.Color("#7C9A6D") // success / complete
	colorClaret = lipgloss.Color("#9A3B3B") // errors / incomplete
	colorSlate  = lipgloss.Color("#6B7280") // muted text, rests
)

func styleMotif() lipgloss.Style {
	return styled(lipgloss.NewStyle().Foreground(colorBrass).Bold(true))
}

func styleIndex() lipgloss.Style {
	return styled(lipgloss.NewStyle().Foreground(colorUmber))
}

func styleMuted() lipgloss.Style {
	return styled(lipgloss.NewStyle().Foreground(colorSlate))
}

func styleGood() lipgloss.Style {
	return styled(lipgloss.NewStyle().Foreground(colorSage).Bold(true))
}

func styleError() lipgloss.Style {
	return styled(lipgloss.NewStyle().Foreground(colorClaret).Bold(true))
}

// styled strips the style when color output is off.
func styled(s lipgloss.Style) lipgloss.Style {
	if !colorEnabled() {
		return lipgloss.NewStyle()
	}
	return s
}

// colorEnabled honors --no-color, the config color mode, and TTY
// detection (styled output never goes into a pipe under "auto").
func colorEnabled() bool {
	if noColor || jsonOutput {
		return false
	}
	switch config.Global.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// noteNames reports whether pitches render as names or numbers.
func noteNames() bool {
	return config.Global.Output.NoteNames
}

// printMotif prints a single result motif.
func printMotif(m motif.Motif) {
	fmt.Println(styleMotif().Render(notation.FormatMotif(m, noteNames())))
}

// printMotifList prints an enumerated list of result motifs.
func printMotifList(motifs []motif.Motif) {
	if len(motifs) == 0 {
		fmt.Println(styleMuted().Render("(no leadings)"))
		return
	}
	width := len(fmt.Sprint(len(motifs)))
	for i, m := range motifs {
		label := fmt.Sprintf("%*d.", width, i+1)
		fmt.Println(styleIndex().Render(label) + " " + styleMotif().Render(notation.FormatMotif(m, noteNames())))
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// motifStrings renders motifs as notation strings for JSON output.
func motifStrings(motifs []motif.Motif) []string {
	out := make([]string, len(motifs))
	for i, m := range motifs {
		out[i] = notation.FormatMotif(m, false)
	}
	return out
}
