// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package motif

import (
	"testing"
)

func TestPitchClass(t *testing.T) {
	tests := []struct {
		name  string
		pitch Pitch
		want  PitchClass
	}{
		{"middle C", 60, 0},
		{"E above", 64, 4},
		{"zero", 0, 0},
		{"eleven", 11, 11},
		{"octave boundary", 12, 0},
		{"negative one wraps", -1, 11},
		{"negative octave", -12, 0},
		{"deep negative", -13, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pitch.Class(); got != tt.want {
				t.Errorf("Pitch(%d).Class() = %d, want %d", tt.pitch, got, tt.want)
			}
		})
	}
}

func TestPitchOctave(t *testing.T) {
	tests := []struct {
		name  string
		pitch Pitch
		want  int
	}{
		{"middle C", 60, 5},
		{"top of octave 5", 71, 5},
		{"octave boundary", 72, 6},
		{"zero", 0, 0},
		{"negative one floors", -1, -1},
		{"negative octave boundary", -12, -1},
		{"deep negative", -13, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pitch.Octave(); got != tt.want {
				t.Errorf("Pitch(%d).Octave() = %d, want %d", tt.pitch, got, tt.want)
			}
		})
	}
}

func TestPitchClassNormalize(t *testing.T) {
	tests := []struct {
		name  string
		class PitchClass
		want  PitchClass
	}{
		{"canonical", 7, 7},
		{"twelve wraps", 12, 0},
		{"negative wraps", -1, 11},
		{"big negative", -24, 0},
		{"big positive", 25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.Normalize(); got != tt.want {
				t.Errorf("PitchClass(%d).Normalize() = %d, want %d", tt.class, got, tt.want)
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	m := New(
		Single(NewNote(60)),
		Cluster(NewNote(64), NewNote(67)),
		Single(NewRest()),
	)

	clone := m.Clone()
	clone[1].Notes[0] = NewNote(0)
	clone[0] = Single(NewRest())

	if m[1].Notes[0] != NewNote(64) {
		t.Errorf("mutating a clone's cluster leaked into the original: got %v", m[1].Notes[0])
	}
	if m[0].Notes[0] != NewNote(60) {
		t.Errorf("mutating a clone's slot leaked into the original: got %v", m[0].Notes[0])
	}
}

func TestFlatLen(t *testing.T) {
	tests := []struct {
		name string
		m    Motif
		want int
	}{
		{"empty", New(), 0},
		{"singles", New(Single(NewNote(60)), Single(NewRest())), 2},
		{"cluster expands", New(Single(NewNote(60)), Cluster(NewNote(64), NewNote(67), NewNote(72))), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.FlatLen(); got != tt.want {
				t.Errorf("FlatLen() = %d, want %d", got, tt.want)
			}
		})
	}
}
