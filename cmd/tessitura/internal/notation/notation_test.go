// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package notation

import (
	"testing"

	"github.com/tessitura-dev/tessitura/pkg/motif"
	"github.com/tessitura-dev/tessitura/pkg/voicing"
)

func note(p int) motif.Note { return motif.NewNote(motif.Pitch(p)) }

func TestParsePitch(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    motif.Pitch
		wantErr bool
	}{
		{"plain number", "60", 60, false},
		{"negative number", "-3", -3, false},
		{"middle C", "C4", 60, false},
		{"sharp", "F#3", 54, false},
		{"flat", "Bb2", 46, false},
		{"lowercase letter", "c4", 60, false},
		{"negative octave", "C-1", 0, false},
		{"high B", "B8", 119, false},
		{"bad letter", "H4", 0, true},
		{"missing octave", "C#", 0, true},
		{"too short", "C", 0, true},
		{"garbage octave", "Cx", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePitch(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePitch(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParsePitch(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseMotif(t *testing.T) {
	got, err := ParseMotif("C4 E4/G4/C5 - 62")
	if err != nil {
		t.Fatalf("ParseMotif() error = %v", err)
	}

	want := motif.New(
		motif.Single(note(60)),
		motif.Cluster(note(64), note(67), note(72)),
		motif.Single(motif.NewRest()),
		motif.Single(note(62)),
	)
	assertMotifEqual(t, want, got)
}

func TestParseMotifClusterRest(t *testing.T) {
	got, err := ParseMotif("60/-/67")
	if err != nil {
		t.Fatalf("ParseMotif() error = %v", err)
	}

	want := motif.New(motif.Cluster(note(60), motif.NewRest(), note(67)))
	assertMotifEqual(t, want, got)
}

func TestParseMotifErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"bad note", "C4 X9"},
		{"bad cluster member", "60/x"},
		{"dangling separator", "60/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMotif(tt.input); err == nil {
				t.Errorf("ParseMotif(%q) expected an error", tt.input)
			}
		})
	}
}

func TestFormatMotifRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		names string
		nums  string
	}{
		{"singles", "C4 D4", "C4 D4", "60 62"},
		{"cluster", "E4/G4/C5", "E4/G4/C5", "64/67/72"},
		{"rests", "- C4 -", "- C4 -", "- 60 -"},
		{"sharp spelling", "61", "C#4", "61"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMotif(tt.input)
			if err != nil {
				t.Fatalf("ParseMotif(%q) error = %v", tt.input, err)
			}
			if got := FormatMotif(m, true); got != tt.names {
				t.Errorf("FormatMotif(names) = %q, want %q", got, tt.names)
			}
			if got := FormatMotif(m, false); got != tt.nums {
				t.Errorf("FormatMotif(numbers) = %q, want %q", got, tt.nums)
			}

			// Parsing the formatted string reproduces the motif.
			back, err := ParseMotif(FormatMotif(m, true))
			if err != nil {
				t.Fatalf("reparse error = %v", err)
			}
			assertMotifEqual(t, m, back)
		})
	}
}

func TestFormatPitch(t *testing.T) {
	tests := []struct {
		pitch motif.Pitch
		want  string
	}{
		{60, "C4"},
		{61, "C#4"},
		{59, "B3"},
		{0, "C-1"},
		{127, "G9"},
	}

	for _, tt := range tests {
		if got := FormatPitch(tt.pitch); got != tt.want {
			t.Errorf("FormatPitch(%d) = %q, want %q", tt.pitch, got, tt.want)
		}
	}
}

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []motif.PitchClass
		wantErr bool
	}{
		{"numbers", "0,4,7", []motif.PitchClass{0, 4, 7}, false},
		{"names", "C,E,G", []motif.PitchClass{0, 4, 7}, false},
		{"accidentals", "C#,Bb", []motif.PitchClass{1, 10}, false},
		{"flat C wraps", "Cb", []motif.PitchClass{11}, false},
		{"spaces tolerated", " 0 , 4 , 7 ", []motif.PitchClass{0, 4, 7}, false},
		{"empty", "", nil, true},
		{"bad name", "X", nil, true},
		{"name with octave", "C4,E4", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClasses(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClasses(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseClasses(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseClasses(%q)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSteps(t *testing.T) {
	got, err := ParseSteps("-1,0,1")
	if err != nil {
		t.Fatalf("ParseSteps() error = %v", err)
	}
	want := []int{-1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseSteps()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	if _, err := ParseSteps(""); err == nil {
		t.Error("empty step set should error")
	}
	if _, err := ParseSteps("1,x"); err == nil {
		t.Error("non-integer step should error")
	}
}

func TestParseMapping(t *testing.T) {
	got, err := ParseMapping("11:0,5:4")
	if err != nil {
		t.Fatalf("ParseMapping() error = %v", err)
	}
	want := voicing.Mapping{11: 0, 5: 4}
	if len(got) != len(want) || got[11] != 0 || got[5] != 4 {
		t.Errorf("ParseMapping() = %v, want %v", got, want)
	}

	named, err := ParseMapping("B:C,F:E")
	if err != nil {
		t.Fatalf("ParseMapping(names) error = %v", err)
	}
	if named[11] != 0 || named[5] != 4 {
		t.Errorf("ParseMapping(names) = %v, want %v", named, want)
	}

	for _, bad := range []string{"", "11", "11:0:4", ":0", "11:"} {
		if _, err := ParseMapping(bad); err == nil {
			t.Errorf("ParseMapping(%q) expected an error", bad)
		}
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    motif.Position
		wantErr bool
	}{
		{"flat", "2", motif.At(2), false},
		{"nested", "1.2", motif.In(1, 2), false},
		{"zero", "0", motif.At(0), false},
		{"negative slot", "-1", motif.Position{}, true},
		{"bad slot", "x", motif.Position{}, true},
		{"bad cluster index", "1.x", motif.Position{}, true},
		{"negative cluster index", "1.-2", motif.Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePosition(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParsePosition(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func assertMotifEqual(t *testing.T, want, got motif.Motif) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("motif length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if want[i].Kind != got[i].Kind || len(want[i].Notes) != len(got[i].Notes) {
			t.Fatalf("slot %d shape mismatch: got %+v, want %+v", i, got[i], want[i])
		}
		for j := range want[i].Notes {
			if want[i].Notes[j] != got[i].Notes[j] {
				t.Errorf("slot %d note %d = %v, want %v", i, j, got[i].Notes[j], want[i].Notes[j])
			}
		}
	}
}
