// Copyright (C) 2026 Tessitura contributors (maintainers@tessitura.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validators for user-provided
// musical values.
//
// The core packages treat contract violations as programming errors
// and panic; anything arriving from a CLI flag or config file goes
// through these validators first so users get an error message instead
// of a stack trace.
package validation

import (
	"fmt"

	"github.com/tessitura-dev/tessitura/pkg/motif"
	"github.com/tessitura-dev/tessitura/pkg/voicing"
)

// ValidatePitchClass checks that c is a canonical pitch class in
// [0, 11].
//
// Example:
//
//	if err := validation.ValidatePitchClass(c); err != nil {
//	    return fmt.Errorf("invalid --harmony: %w", err)
//	}
func ValidatePitchClass(c motif.PitchClass) error {
	if c < 0 || c > 11 {
		return fmt.Errorf("pitch class %d out of range (must be 0-11)", c)
	}
	return nil
}

// ValidatePitchClasses checks a whole pitch-class set. It also rejects
// the empty set: an empty scale or harmony has no reified range to
// move along.
func ValidatePitchClasses(classes []motif.PitchClass) error {
	if len(classes) == 0 {
		return fmt.Errorf("pitch-class set is empty")
	}

	var invalid []motif.PitchClass
	for _, c := range classes {
		if err := ValidatePitchClass(c); err != nil {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid pitch classes: %v (must be 0-11)", invalid)
	}
	return nil
}

// ValidateSteps checks a step-offset set for leading. Empty step sets
// are rejected: they could only ever produce empty results.
func ValidateSteps(steps []int) error {
	if len(steps) == 0 {
		return fmt.Errorf("step set is empty")
	}
	return nil
}

// ValidateMapping checks a pitch-class remapping: every source and
// destination class must be canonical.
func ValidateMapping(mapping voicing.Mapping) error {
	for from, to := range mapping {
		if err := ValidatePitchClass(from); err != nil {
			return fmt.Errorf("mapping source: %w", err)
		}
		if err := ValidatePitchClass(to); err != nil {
			return fmt.Errorf("mapping %d destination: %w", from, err)
		}
	}
	return nil
}
