// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the tessitura CLI configuration from
// ~/.tessitura/tessitura.yaml, creating a default file on first run.
package config

// TessituraConfig is the on-disk CLI configuration.
type TessituraConfig struct {
	// Defaults: fallback values for flags the user did not pass.
	Defaults DefaultsConfig `yaml:"defaults"`

	// Output: how results are rendered.
	Output OutputConfig `yaml:"output"`
}

// DefaultsConfig holds fallback musical parameters.
type DefaultsConfig struct {
	// Scale used by transpose when --scale is not given.
	Scale []int `yaml:"scale" validate:"min=1,dive,gte=0,lte=11"`

	// Steps is the permitted step-offset set for lead.
	Steps []int `yaml:"steps" validate:"min=1"`

	// Complete keeps only harmonically complete leadings.
	Complete bool `yaml:"complete"`
}

// OutputConfig holds rendering preferences.
type OutputConfig struct {
	// NoteNames renders pitches as note names ("C4") instead of
	// numbers.
	NoteNames bool `yaml:"note_names"`

	// Color controls styled output: auto (TTY detection), always, or
	// never.
	Color string `yaml:"color" validate:"oneof=auto always never"`
}

// DefaultConfig returns the configuration written on first run:
// C major scale, common-tone-or-neighbor leading, complete chords,
// note names, color when the output is a terminal.
func DefaultConfig() TessituraConfig {
	return TessituraConfig{
		Defaults: DefaultsConfig{
			Scale:    []int{0, 2, 4, 5, 7, 9, 11},
			Steps:    []int{-1, 0, 1},
			Complete: true,
		},
		Output: OutputConfig{
			NoteNames: true,
			Color:     "auto",
		},
	}
}
