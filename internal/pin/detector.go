// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pin holds the PIN-strength rules and the PIN generator. The
// detector functions are pure and total over non-empty decimal digit
// strings; the generator draws candidates from a [DigitSource] and rejects
// the ones the detector flags as weak.
package pin

// IsSequential reports whether every adjacent digit pair consistently
// ascends by exactly 1, or consistently descends by exactly 1, across the
// whole string ("1234", "9876"). A single non-conforming pair disqualifies
// that direction. Strings of length 1 or 2 trivially satisfy one direction,
// so callers must gate minimum length separately.
func IsSequential(pin string) bool {
	asc, desc := true, true
	for i := 1; i < len(pin); i++ {
		prev := int(pin[i-1] - '0')
		cur := int(pin[i] - '0')
		if cur != prev+1 {
			asc = false
		}
		if cur != prev-1 {
			desc = false
		}
	}
	return asc || desc
}

// HasTooManyRepeats reports whether pin contains a run of 3 or more
// identical consecutive digits, or consists of a single repeated digit.
// The all-same clause covers the length-2 case ("77") that the run-length
// check alone would miss.
func HasTooManyRepeats(pin string) bool {
	sameCount := 1
	for i := 1; i < len(pin); i++ {
		if pin[i] == pin[i-1] {
			sameCount++
			if sameCount >= 3 {
				return true
			}
		} else {
			sameCount = 1
		}
	}

	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[0] {
			return false
		}
	}
	return len(pin) > 0
}
