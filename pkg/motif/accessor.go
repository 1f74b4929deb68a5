// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package motif

import "fmt"

// The accessor operations flatten a motif to a pitch sequence and
// scatter a same-shape sequence back, plus uniform positional
// read/write. Shape mismatches and out-of-range positions are caller
// misuse and panic; they are contract violations, not recoverable
// runtime conditions.

// Extract flattens the motif into its ordered pitch sequence. Cluster
// slots contribute their elements in order; single slots contribute
// one element. The result is freshly allocated.
func (m Motif) Extract() []Note {
	notes := make([]Note, 0, m.FlatLen())
	for _, s := range m {
		notes = append(notes, s.Notes...)
	}
	return notes
}

// Replace scatters a flat pitch sequence back into the motif's shape:
// single slots receive one value, cluster slots consume a contiguous
// run equal to their length. len(notes) must equal m.FlatLen(), or
// Replace panics.
//
// With inPlace false the receiver is untouched and an independent copy
// is returned; with inPlace true the receiver's slots are overwritten
// and the receiver itself is returned.
func (m Motif) Replace(notes []Note, inPlace bool) Motif {
	if len(notes) != m.FlatLen() {
		panic(fmt.Sprintf("motif: Replace got %d notes for a motif of flat length %d", len(notes), m.FlatLen()))
	}

	out := m
	if !inPlace {
		out = m.Clone()
	}

	k := 0
	for i := range out {
		w := out[i].Width()
		copy(out[i].Notes, notes[k:k+w])
		k += w
	}
	return out
}

// Access returns the element at the given position: the whole slot for
// a flat position, or the addressed cluster note wrapped as a single
// slot for an (slot, index) position. The result is a copy; mutating
// it does not affect the motif. Out-of-range positions panic, as does
// indexing into a single slot with a cluster position.
func (m Motif) Access(p Position) Slot {
	s := m[p.Slot]
	if !p.InCluster() {
		return s.Clone()
	}
	if s.Kind != ClusterSlot {
		panic(fmt.Sprintf("motif: Access position (%d,%d) addresses into a single slot", p.Slot, p.Index))
	}
	return Single(s.Notes[p.Index])
}

// Modify sets the element at the given position. For a flat position
// the value replaces the whole slot (the slot's kind and width may
// change; Modify is a structural edit, unlike Replace). For an
// (slot, index) position the value must be a single slot and its note
// replaces the addressed cluster element.
//
// Copy-vs-in-place semantics match Replace. Out-of-range positions and
// non-single values at cluster positions panic.
func (m Motif) Modify(p Position, value Slot, inPlace bool) Motif {
	out := m
	if !inPlace {
		out = m.Clone()
	}

	if !p.InCluster() {
		out[p.Slot] = value.Clone()
		return out
	}

	s := out[p.Slot]
	if s.Kind != ClusterSlot {
		panic(fmt.Sprintf("motif: Modify position (%d,%d) addresses into a single slot", p.Slot, p.Index))
	}
	if value.Kind != SingleSlot {
		panic(fmt.Sprintf("motif: Modify at (%d,%d) needs a single-note value", p.Slot, p.Index))
	}
	s.Notes[p.Index] = value.Notes[0]
	return out
}
