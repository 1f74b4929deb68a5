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

// Transpose moves every pitch of a motif along the given scale by the
// same number of steps: a uniform, structure-preserving scalar shift.
// Rests pass through. The input motif is not modified.
func Transpose(m motif.Motif, s scale.Scale, step int) motif.Motif {
	reified := scale.Reify(s)

	notes := m.Extract()
	for i, n := range notes {
		notes[i] = reified.Move(n, step)
	}

	return m.Replace(notes, false)
}
