// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package scale reifies pitch-class sets into concrete pitch ranges
// and moves pitches along them stepwise.
//
// A Scale (or Harmony) is a set of pitch classes. Reification expands
// it into the ordered, multi-octave "number line" of absolute pitches
// that all stepwise motion operates over: each pitch class once per
// octave, ascending, across a fixed span of eleven octaves.
package scale

import (
	"slices"

	"github.com/tessitura-dev/tessitura/pkg/motif"
)

// OctaveSpan is the number of octaves a reified scale covers (octave
// indices 0 through OctaveSpan-1). Generous enough that any reasonable
// stepwise motion stays in bounds.
const OctaveSpan = 11

// Scale is a set of pitch classes defining which chromatic positions
// are scale members for stepwise motion. Order and duplicates are
// irrelevant; Reify normalizes both.
type Scale []motif.PitchClass

// Harmony is a set of pitch classes defining a target chord. It is
// consulted by pitch-class equivalence for completeness checks and
// reified like a scale for stepwise candidate motion in leading.
type Harmony []motif.PitchClass

// Reified is the expansion of a pitch-class set: absolute pitches
// sorted ascending, one per pitch class per octave. Indexed stepwise
// motion is only defined on this form.
type Reified []motif.Pitch

// Reify expands a pitch-class set into its whole range of pitches.
// Pure: the input is not touched, and the result depends only on the
// set of (normalized) classes, not their order.
func Reify(classes []motif.PitchClass) Reified {
	normalized := make([]motif.PitchClass, 0, len(classes))
	for _, c := range classes {
		normalized = append(normalized, c.Normalize())
	}
	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	pitches := make(Reified, 0, len(normalized)*OctaveSpan)
	for octave := 0; octave < OctaveSpan; octave++ {
		for _, c := range normalized {
			pitches = append(pitches, motif.Pitch(int(c)+octave*12))
		}
	}
	return pitches
}

// Contains reports whether p is a member of the reified range.
func (r Reified) Contains(p motif.Pitch) bool {
	_, ok := slices.BinarySearch(r, p)
	return ok
}

// Move moves a note along the reified scale by step positions.
//
// Rest in, rest out, unconditionally. A pitch found in the scale moves
// to the element step positions away in the scale's ordering. A pitch
// not in the scale has no defined zero-step motion: step 0 yields a
// rest. For a nonzero step the pitch is transiently inserted into a
// private copy of the scale, keeping it sorted, and the step is
// applied from its inferred scalar position.
//
// Stepping past either end of the reified span panics (index out of
// range): callers must keep motion within the OctaveSpan range.
func (r Reified) Move(n motif.Note, step int) motif.Note {
	if n.Rest {
		return motif.NewRest()
	}

	i, ok := slices.BinarySearch(r, n.Pitch)
	line := []motif.Pitch(r)
	if !ok {
		if step == 0 {
			// Signals "undefined", not an error.
			return motif.NewRest()
		}
		// Transient insert into a local copy; the caller's scale is
		// never mutated.
		line = slices.Insert(slices.Clone(line), i, n.Pitch)
	}

	return motif.NewNote(line[i+step])
}

// MoveSet moves a note by each step in steps, returning one candidate
// per step via Move.
//
// Rest in yields exactly one candidate: rest. A pitch absent from the
// scale has no valid "stay put" candidate, so step 0 is dropped from
// its step set first; if no steps remain the result is an empty
// candidate list, not a list containing a rest. An empty candidate
// list is how a voice contributes zero candidates to downstream
// combination.
func (r Reified) MoveSet(n motif.Note, steps []int) []motif.Note {
	if n.Rest {
		return []motif.Note{motif.NewRest()}
	}

	if !r.Contains(n.Pitch) && slices.Contains(steps, 0) {
		kept := make([]int, 0, len(steps))
		for _, s := range steps {
			if s != 0 {
				kept = append(kept, s)
			}
		}
		steps = kept
	}

	if len(steps) == 0 {
		return nil
	}

	out := make([]motif.Note, 0, len(steps))
	for _, s := range steps {
		out = append(out, r.Move(n, s))
	}
	return out
}
