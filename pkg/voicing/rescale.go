// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package voicing

import (
	"github.com/tessitura-dev/tessitura/pkg/motif"
)

// Mapping is a finite partial function from source pitch class to
// destination pitch class. Pitch classes absent from the mapping pass
// through Rescale unchanged.
type Mapping map[motif.PitchClass]motif.PitchClass

// Rescale maps the pitches of a motif onto a new scale, pitch class by
// pitch class, with nearest-register correction.
//
// For each non-rest pitch whose class has a mapping entry, the
// destination class is shifted an octave toward the source when the
// signed class distance reaches a tritone, so the result is always the
// nearest realization of the destination class: for mapping {11: 0}
// pitch 59 becomes 60, not 48. The circular mod-12 distance between
// input and output class never exceeds 6 semitones.
//
// Rests and unmapped classes pass through unchanged. Structure is
// preserved; the input motif is not modified.
func Rescale(m motif.Motif, mapping Mapping) motif.Motif {
	notes := m.Extract()

	for i, n := range notes {
		if n.Rest {
			continue
		}

		from := n.Pitch.Class()
		to, ok := mapping[from]
		if !ok {
			continue
		}

		// Choose the congruent destination nearest the source
		// register rather than an arbitrary octave jump.
		dest := int(to.Normalize())
		d := dest - int(from)
		if d >= 6 {
			dest -= 12
		} else if d <= -6 {
			dest += 12
		}

		notes[i] = motif.NewNote(motif.Pitch(dest + n.Pitch.Octave()*12))
	}

	return m.Replace(notes, false)
}
