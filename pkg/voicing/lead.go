// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package voicing

import (
	"github.com/tessitura-dev/tessitura/pkg/motif"
	"github.com/tessitura-dev/tessitura/pkg/scale"
)

// Config controls the Lead engine.
type Config struct {
	// Steps is the set of permitted per-voice step offsets along the
	// reified harmony.
	Steps []int

	// Complete keeps only candidates whose non-rest pitch classes are
	// a superset of the harmony's pitch classes.
	Complete bool
}

// DefaultConfig returns the conventional leading configuration: each
// voice may retain its common tone or move to the neighboring chordal
// tone in either direction, and the resulting chord must be complete.
// The step slice is freshly allocated on every call; callers may
// modify it freely.
func DefaultConfig() Config {
	return Config{
		Steps:    []int{-1, 0, 1},
		Complete: true,
	}
}

// Lead enumerates every structurally valid leading of a motif into a
// target harmony.
//
// Each extracted pitch independently contributes its list of harmonic
// candidate successors: the pitches reachable along the reified
// harmony by the permitted steps (a rest contributes exactly one
// candidate, a rest; a pitch outside the harmony loses the zero step
// and may contribute none). The Cartesian product across the per-voice
// candidate lists gives the whole-motif candidates; with cfg.Complete
// set, only harmonically complete ones are kept. Each survivor is
// reconstituted into a full motif with the original slot and cluster
// structure.
//
// The result order follows the product's enumeration order, the last
// voice varying fastest. A motif that cannot be led under the given
// constraints yields an empty result; that is an expected outcome, not
// an error.
func Lead(m motif.Motif, harmony scale.Harmony, cfg Config) []motif.Motif {
	reified := scale.Reify(harmony)
	notes := m.Extract()

	candidates := make([][]motif.Note, len(notes))
	for i, n := range notes {
		candidates[i] = reified.MoveSet(n, cfg.Steps)
		if len(candidates[i]) == 0 {
			// One silent voice empties the whole product.
			return nil
		}
	}

	var out []motif.Motif
	group := make([]motif.Note, len(candidates))
	index := make([]int, len(candidates))

	for {
		for i, j := range index {
			group[i] = candidates[i][j]
		}

		if !cfg.Complete || IsComplete(group, harmony) {
			out = append(out, m.Replace(group, false))
		}

		// Odometer advance, rightmost voice fastest.
		k := len(index) - 1
		for ; k >= 0; k-- {
			index[k]++
			if index[k] < len(candidates[k]) {
				break
			}
			index[k] = 0
		}
		if k < 0 {
			return out
		}
	}
}
