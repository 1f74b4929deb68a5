// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package notation parses and formats the inline motif notation the
// CLI accepts on the command line.
//
// A motif is written as whitespace-separated slots. A slot is a single
// note, a rest ("-"), or a cluster of notes joined by "/":
//
//	"60 64/67/72 - 62"
//	"C4 E4/G4 - D4"
//
// Notes are either absolute pitch numbers (MIDI convention, C4 = 60)
// or note names: letter A-G, optional accidental "#" or "b", octave
// (which may be negative, as in "C-1"). Pitch-class sets and mappings
// use comma-separated lists: "0,4,7", "C,E,G", "11:0,5:4".
//
// This is a command-line argument syntax, not a file format; nothing
// here reads files.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tessitura-dev/tessitura/pkg/motif"
	"github.com/tessitura-dev/tessitura/pkg/voicing"
)

// noteOffsets maps note letters to semitone offsets from C.
var noteOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// sharpNames spells each pitch class with sharps.
var sharpNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// restToken is the rest marker in motif notation.
const restToken = "-"

// clusterSep joins the notes of a cluster slot.
const clusterSep = "/"

// ParseMotif parses the inline motif notation.
func ParseMotif(s string) (motif.Motif, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty motif")
	}

	m := make(motif.Motif, 0, len(tokens))
	for _, tok := range tokens {
		slot, err := parseSlot(tok)
		if err != nil {
			return nil, err
		}
		m = append(m, slot)
	}
	return m, nil
}

func parseSlot(tok string) (motif.Slot, error) {
	if !strings.Contains(tok, clusterSep) {
		n, err := ParseNote(tok)
		if err != nil {
			return motif.Slot{}, err
		}
		return motif.Single(n), nil
	}

	parts := strings.Split(tok, clusterSep)
	notes := make([]motif.Note, 0, len(parts))
	for _, part := range parts {
		n, err := ParseNote(part)
		if err != nil {
			return motif.Slot{}, fmt.Errorf("cluster %q: %w", tok, err)
		}
		notes = append(notes, n)
	}
	return motif.Cluster(notes...), nil
}

// ParseNote parses a single note token: "-" for a rest, an integer
// pitch, or a note name.
func ParseNote(tok string) (motif.Note, error) {
	if tok == restToken {
		return motif.NewRest(), nil
	}
	p, err := ParsePitch(tok)
	if err != nil {
		return motif.Note{}, err
	}
	return motif.NewNote(p), nil
}

// ParsePitch parses an absolute pitch: a plain integer ("60", "-3") or
// a note name ("C4", "F#3", "Bb2", "C-1"). Note names follow the MIDI
// convention: pitch = (octave+1)*12 + semitone, so C4 is 60.
func ParsePitch(tok string) (motif.Pitch, error) {
	if v, err := strconv.Atoi(tok); err == nil {
		return motif.Pitch(v), nil
	}
	return parsePitchName(tok)
}

func parsePitchName(name string) (motif.Pitch, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("note %q too short", name)
	}

	letter := name[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	semitone, ok := noteOffsets[letter]
	if !ok {
		return 0, fmt.Errorf("note %q: letter must be A-G", name)
	}

	idx := 1
	switch name[idx] {
	case '#':
		semitone++
		idx++
	case 'b':
		semitone--
		idx++
	}

	if idx >= len(name) {
		return 0, fmt.Errorf("note %q: missing octave", name)
	}
	octave, err := strconv.Atoi(name[idx:])
	if err != nil {
		return 0, fmt.Errorf("note %q: bad octave: %w", name, err)
	}

	return motif.Pitch((octave+1)*12 + semitone), nil
}

// ParseClass parses one pitch class: an integer "0".."11" or a class
// name like "C", "F#", "Bb".
func ParseClass(tok string) (motif.PitchClass, error) {
	if tok == "" {
		return 0, fmt.Errorf("empty pitch class")
	}
	if v, err := strconv.Atoi(tok); err == nil {
		return motif.PitchClass(v), nil
	}

	letter := tok[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	semitone, ok := noteOffsets[letter]
	if !ok || len(tok) > 2 {
		return 0, fmt.Errorf("pitch class %q: want 0-11 or a name like C, F#, Bb", tok)
	}
	if len(tok) == 2 {
		switch tok[1] {
		case '#':
			semitone++
		case 'b':
			semitone--
		default:
			return 0, fmt.Errorf("pitch class %q: bad accidental", tok)
		}
	}
	return motif.PitchClass(semitone).Normalize(), nil
}

// ParseClasses parses a comma-separated pitch-class set: "0,4,7" or
// "C,E,G".
func ParseClasses(s string) ([]motif.PitchClass, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty pitch-class set")
	}

	classes := make([]motif.PitchClass, 0, len(parts))
	for _, part := range parts {
		c, err := ParseClass(part)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// ParseSteps parses a comma-separated step-offset set: "-1,0,1".
func ParseSteps(s string) ([]int, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty step set")
	}

	steps := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", part, err)
		}
		steps = append(steps, v)
	}
	return steps, nil
}

// ParseMapping parses a pitch-class remapping: comma-separated
// from:to pairs, "11:0,5:4" or "B:C,F:E".
func ParseMapping(s string) (voicing.Mapping, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty mapping")
	}

	mapping := make(voicing.Mapping, len(parts))
	for _, part := range parts {
		from, to, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("mapping entry %q: want from:to", part)
		}
		f, err := ParseClass(from)
		if err != nil {
			return nil, fmt.Errorf("mapping entry %q: %w", part, err)
		}
		t, err := ParseClass(to)
		if err != nil {
			return nil, fmt.Errorf("mapping entry %q: %w", part, err)
		}
		mapping[f] = t
	}
	return mapping, nil
}

// ParsePosition parses a motif position: a slot index "2" or a
// slot.cluster pair "1.2".
func ParsePosition(s string) (motif.Position, error) {
	slot, index, nested := strings.Cut(s, ".")

	i, err := strconv.Atoi(slot)
	if err != nil || i < 0 {
		return motif.Position{}, fmt.Errorf("position %q: bad slot index", s)
	}
	if !nested {
		return motif.At(i), nil
	}

	j, err := strconv.Atoi(index)
	if err != nil || j < 0 {
		return motif.Position{}, fmt.Errorf("position %q: bad cluster index", s)
	}
	return motif.In(i, j), nil
}

// ParsePositions parses a list of positions.
func ParsePositions(list []string) ([]motif.Position, error) {
	positions := make([]motif.Position, 0, len(list))
	for _, s := range list {
		p, err := ParsePosition(s)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// FormatMotif renders a motif in the same notation ParseMotif accepts.
// With names set, pitches render as note names ("C4"), otherwise as
// numbers.
func FormatMotif(m motif.Motif, names bool) string {
	var b strings.Builder
	for i, slot := range m {
		if i > 0 {
			b.WriteByte(' ')
		}
		for j, n := range slot.Notes {
			if j > 0 {
				b.WriteString(clusterSep)
			}
			b.WriteString(FormatNote(n, names))
		}
	}
	return b.String()
}

// FormatNote renders one note token.
func FormatNote(n motif.Note, names bool) string {
	if n.Rest {
		return restToken
	}
	if names {
		return FormatPitch(n.Pitch)
	}
	return strconv.Itoa(int(n.Pitch))
}

// FormatPitch renders a pitch as a sharp-spelled note name: 60 is
// "C4", 61 is "C#4", 59 is "B3".
func FormatPitch(p motif.Pitch) string {
	return sharpNames[p.Class()] + strconv.Itoa(p.Octave()-1)
}

// splitList splits a comma-separated list, trimming blanks and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
