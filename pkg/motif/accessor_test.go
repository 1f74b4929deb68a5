// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMotif is "60 64/67/72 - 62": a single, a three-note cluster, a
// rest, a single.
func testMotif() Motif {
	return New(
		Single(NewNote(60)),
		Cluster(NewNote(64), NewNote(67), NewNote(72)),
		Single(NewRest()),
		Single(NewNote(62)),
	)
}

// TestExtract verifies clusters expand in place.
func TestExtract(t *testing.T) {
	got := testMotif().Extract()

	want := []Note{
		NewNote(60),
		NewNote(64), NewNote(67), NewNote(72),
		NewRest(),
		NewNote(62),
	}
	assert.Equal(t, want, got)
}

// TestReplaceRoundTrip verifies replace(m, extract(m)) reproduces the
// motif exactly.
func TestReplaceRoundTrip(t *testing.T) {
	m := testMotif()
	got := m.Replace(m.Extract(), false)
	assert.Equal(t, m, got, "extract/replace round-trip should preserve structure and values")
}

// TestReplaceCopy verifies the copy mode leaves the receiver alone.
func TestReplaceCopy(t *testing.T) {
	m := testMotif()
	notes := m.Extract()
	for i := range notes {
		if !notes[i].Rest {
			notes[i] = NewNote(notes[i].Pitch + 12)
		}
	}

	out := m.Replace(notes, false)

	assert.Equal(t, testMotif(), m, "copy-mode Replace must not touch the receiver")
	assert.Equal(t, NewNote(72), out[0].Notes[0])
	assert.Equal(t, NewRest(), out[2].Notes[0], "rests pass through")
}

// TestReplaceInPlace verifies the in-place mode mutates the receiver
// and returns it.
func TestReplaceInPlace(t *testing.T) {
	m := testMotif()
	notes := m.Extract()
	notes[0] = NewNote(48)

	out := m.Replace(notes, true)

	assert.Equal(t, NewNote(48), m[0].Notes[0], "in-place Replace must mutate the receiver")
	assert.Same(t, &m[0], &out[0], "in-place Replace should return the receiver")
}

// TestReplaceShapeMismatch verifies a wrong-length pitch sequence is a
// contract violation.
func TestReplaceShapeMismatch(t *testing.T) {
	m := testMotif()

	require.Panics(t, func() {
		m.Replace([]Note{NewNote(60)}, false)
	}, "short pitch sequence must panic")

	require.Panics(t, func() {
		m.Replace(make([]Note, m.FlatLen()+1), false)
	}, "long pitch sequence must panic")
}

// TestAccess covers flat and nested addressing.
func TestAccess(t *testing.T) {
	m := testMotif()

	assert.Equal(t, Single(NewNote(60)), m.Access(At(0)))
	assert.Equal(t, Cluster(NewNote(64), NewNote(67), NewNote(72)), m.Access(At(1)))
	assert.Equal(t, Single(NewNote(67)), m.Access(In(1, 1)))
	assert.Equal(t, Single(NewRest()), m.Access(At(2)))
}

// TestAccessMisuse verifies bad positions panic.
func TestAccessMisuse(t *testing.T) {
	m := testMotif()

	require.Panics(t, func() { m.Access(At(99)) }, "slot out of range")
	require.Panics(t, func() { m.Access(In(1, 99)) }, "cluster index out of range")
	require.Panics(t, func() { m.Access(In(0, 0)) }, "nested position into a single slot")
}

// TestModifyCopy verifies copy-mode Modify.
func TestModifyCopy(t *testing.T) {
	m := testMotif()

	out := m.Modify(In(1, 2), Single(NewNote(71)), false)

	assert.Equal(t, testMotif(), m, "copy-mode Modify must not touch the receiver")
	assert.Equal(t, NewNote(71), out[1].Notes[2])
}

// TestModifyInPlace verifies in-place Modify on both position kinds.
func TestModifyInPlace(t *testing.T) {
	m := testMotif()

	m.Modify(At(3), Single(NewRest()), true)
	assert.Equal(t, Single(NewRest()), m[3])

	m.Modify(In(1, 0), Single(NewNote(65)), true)
	assert.Equal(t, NewNote(65), m[1].Notes[0])
}

// TestModifyStructuralEdit verifies a flat-position Modify may change
// slot arity (unlike Replace, which preserves shape).
func TestModifyStructuralEdit(t *testing.T) {
	m := testMotif()

	out := m.Modify(At(0), Cluster(NewNote(60), NewNote(67)), false)

	assert.Equal(t, ClusterSlot, out[0].Kind)
	assert.Equal(t, 5, out.FlatLen())
}

// TestModifyMisuse verifies bad positions and values panic.
func TestModifyMisuse(t *testing.T) {
	m := testMotif()

	require.Panics(t, func() { m.Modify(At(99), Single(NewRest()), false) })
	require.Panics(t, func() { m.Modify(In(0, 0), Single(NewRest()), false) }, "nested position into a single slot")
	require.Panics(t, func() { m.Modify(In(1, 0), Cluster(NewNote(1), NewNote(2)), false) }, "cluster value at a nested position")
}
