// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package voicing implements the harmonic operations on motifs:
// completeness checks against a target harmony, pitch-class remapping,
// scalar transposition, and the combinatorial voice-leading engine.
//
// Every operation is a deterministic pure function over value inputs.
// Motifs are treated as immutable; structure (slot kinds and cluster
// lengths) is always preserved, only pitch values change.
package voicing

import (
	"github.com/tessitura-dev/tessitura/pkg/motif"
	"github.com/tessitura-dev/tessitura/pkg/scale"
)

// IsComplete reports whether the given pitches fully realize the
// harmony: the pitch classes of the non-rest notes must be a superset
// of the harmony's pitch classes. Register is ignored; rests are
// discarded before the check.
func IsComplete(notes []motif.Note, harmony scale.Harmony) bool {
	var have [12]bool
	for _, n := range notes {
		if n.Rest {
			continue
		}
		have[n.Pitch.Class()] = true
	}

	for _, c := range harmony {
		if !have[c.Normalize()] {
			return false
		}
	}
	return true
}

// IsCompleteMotif reports whether a motif fully realizes the harmony.
//
// Positions listed in exclude are treated as rests before the check,
// so designated voices (a sustained pedal tone, say) can be left out
// of the requirement. The exclusion happens on a private copy; the
// given motif is never mutated.
func IsCompleteMotif(m motif.Motif, harmony scale.Harmony, exclude []motif.Position) bool {
	if len(exclude) > 0 {
		m = m.Clone()
		for _, p := range exclude {
			m.Modify(p, motif.Single(motif.NewRest()), true)
		}
	}
	return IsComplete(m.Extract(), harmony)
}
