// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package motif defines the symbolic pitch-line data model: absolute
// pitches, pitch classes, rests, chordal clusters, and the Motif type
// that every transformation in this repository operates on.
//
// A motif is an ordered sequence of slots. Each slot is either a single
// pitch-or-rest or a cluster of simultaneous pitch-or-rest values. The
// slot-kind and cluster-length sequence of a motif is a structural
// invariant: transformations change pitch values only, never shape.
//
// All types are plain values. Functions that do not take an in-place
// flag return fully independent deep copies; callers retaining the
// original motif never observe side effects.
package motif

// Pitch is an absolute chromatic pitch number. Twelve pitches per
// octave; no particular zero point is assumed beyond internal
// consistency (the CLI uses the MIDI convention, C4 = 60).
type Pitch int

// PitchClass is a pitch modulo 12, in [0, 11].
type PitchClass int

// Normalize folds an arbitrary integer pitch class into [0, 11] with
// floored modulo. Pitch classes are always normalized before lookup or
// comparison.
func (c PitchClass) Normalize() PitchClass {
	n := int(c) % 12
	if n < 0 {
		n += 12
	}
	return PitchClass(n)
}

// Class returns the pitch class of p. Floored modulo, so negative
// pitches still land in [0, 11]: Pitch(-1).Class() == 11.
func (p Pitch) Class() PitchClass {
	c := int(p) % 12
	if c < 0 {
		c += 12
	}
	return PitchClass(c)
}

// Octave returns the octave index of p (floored division by 12), the
// register the pitch sits in. Pitch(-1).Octave() == -1.
func (p Pitch) Octave() int {
	o := int(p) / 12
	if int(p)%12 < 0 {
		o--
	}
	return o
}

// Duration is a note length in beats. Duration lines are part of the
// data model for callers that pair them with pitch lines; no operation
// in this repository reads or writes them.
type Duration float64

// DurationLine is the duration content of a musical line.
type DurationLine []Duration

// Note is a pitch slot value: either a concrete pitch or an explicit
// rest. The zero value is pitch 0, not a rest; construct rests with
// NewRest.
type Note struct {
	// Pitch is the absolute pitch. Meaningless when Rest is true.
	Pitch Pitch

	// Rest marks the absence of a pitch.
	Rest bool
}

// NewNote returns a sounding note at pitch p.
func NewNote(p Pitch) Note {
	return Note{Pitch: p}
}

// NewRest returns a rest.
func NewRest() Note {
	return Note{Rest: true}
}

// SlotKind discriminates the two slot variants.
type SlotKind int

const (
	// SingleSlot is a slot holding exactly one pitch-or-rest.
	SingleSlot SlotKind = iota

	// ClusterSlot is a slot holding simultaneous pitch-or-rest values.
	ClusterSlot
)

// Slot is one metric position of a motif: a tagged variant that is
// either a single note or a cluster of simultaneous notes. Traversal
// logic switches on Kind explicitly; there is no runtime type probing.
type Slot struct {
	// Kind selects the variant.
	Kind SlotKind

	// Notes holds the slot content: exactly one element for
	// SingleSlot, the cluster elements in order for ClusterSlot.
	Notes []Note
}

// Single returns a single-note slot.
func Single(n Note) Slot {
	return Slot{Kind: SingleSlot, Notes: []Note{n}}
}

// Cluster returns a cluster slot holding the given notes in order.
func Cluster(notes ...Note) Slot {
	ns := make([]Note, len(notes))
	copy(ns, notes)
	return Slot{Kind: ClusterSlot, Notes: ns}
}

// Clone returns an independent deep copy of the slot.
func (s Slot) Clone() Slot {
	ns := make([]Note, len(s.Notes))
	copy(ns, s.Notes)
	return Slot{Kind: s.Kind, Notes: ns}
}

// Width returns the number of flat elements the slot contributes to an
// extracted pitch sequence: 1 for a single, the cluster length for a
// cluster.
func (s Slot) Width() int {
	if s.Kind == SingleSlot {
		return 1
	}
	return len(s.Notes)
}

// Motif is an ordered musical line: a sequence of slots.
type Motif []Slot

// New builds a motif from slots. The slots are deep-copied.
func New(slots ...Slot) Motif {
	m := make(Motif, len(slots))
	for i, s := range slots {
		m[i] = s.Clone()
	}
	return m
}

// Clone returns an independent deep copy of the motif, transitively
// through cluster slots.
func (m Motif) Clone() Motif {
	out := make(Motif, len(m))
	for i, s := range m {
		out[i] = s.Clone()
	}
	return out
}

// FlatLen returns the length of the pitch sequence Extract produces.
func (m Motif) FlatLen() int {
	n := 0
	for _, s := range m {
		n += s.Width()
	}
	return n
}

// Position addresses one element of a motif: a whole slot by flat
// index, or one note inside a cluster by (slot, cluster-index) pair.
type Position struct {
	// Slot is the slot index.
	Slot int

	// Index is the position within a cluster slot, or -1 when the
	// position addresses the whole slot.
	Index int
}

// At returns a position addressing the whole slot i.
func At(i int) Position {
	return Position{Slot: i, Index: -1}
}

// In returns a position addressing element j of cluster slot i.
func In(i, j int) Position {
	return Position{Slot: i, Index: j}
}

// InCluster reports whether the position addresses inside a cluster.
func (p Position) InCluster() bool {
	return p.Index >= 0
}
