/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package projection

import "math"

/*
sampleCursors precomputes the list of integer cursors a sampling walk
over [start, end) visits, stepping by stride and optionally switching
to geometric spacing. The source this is ported from mutates a single
float loop variable in place, reassigning it mid-body and letting the
for-loop's own increment clause carry it forward even across a
"continue" that skips a duplicate; this builds the same sequence ahead
of time so the walk itself can be a plain range over a slice.
*/
func sampleCursors(start, end, stride int64, logScale bool) []int64 {
	if end <= start || stride <= 0 {
		return nil
	}

	if !logScale {
		cursors := make([]int64, 0, (end-start+stride-1)/stride)
		for i := start; i < end; i += stride {
			cursors = append(cursors, i)
		}
		return cursors
	}

	count := end - start
	nsamples := (count + 1) / stride
	if nsamples < 1 {
		nsamples = 1
	}
	factor := math.Pow(float64(count), 1/float64(nsamples))

	var cursors []int64
	prevFloor := int64(-1)

	// Guard against a pathological factor (e.g. very close to 1) that
	// would advance the cursor by less than one float64 ULP forever;
	// the sequence cannot legitimately need more steps than this.
	maxSteps := 4*count + 64

	cursor := float64(start)
	for n := int64(0); n < maxSteps; n++ {
		fc := int64(math.Floor(cursor))
		if fc >= end {
			break
		}
		if fc != prevFloor {
			cursors = append(cursors, fc)
			prevFloor = fc
		}
		cursor = math.Pow(factor, float64(n+1))
	}

	return cursors
}
