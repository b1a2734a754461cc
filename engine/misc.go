// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math/bits"

// distance stores the number of king steps required to reach from one
// square to another on an empty board. The eval's king-tropism and
// square-rule terms compute the same distance with squareDistance.
var distance [SquareArraySize][SquareArraySize]int32

// logN returns the base-2 logarithm of n rounded down; n must be non-zero.
func logN(n uint64) uint { return uint(bits.Len64(n) - 1) }

func maxI32(a, b int32) int32 {
	if a >= b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a <= b {
		return a
	}
	return b
}

func maxI(a, b int) int {
	if a >= b {
		return a
	}
	return b
}

func minI(a, b int) int {
	if a <= b {
		return a
	}
	return b
}

func init() {
	for i := SquareMinValue; i <= SquareMaxValue; i++ {
		for j := SquareMinValue; j <= SquareMaxValue; j++ {
			f, r := int32(i.File()-j.File()), int32(i.Rank()-j.Rank())
			f, r = maxI32(f, -f), maxI32(r, -r)
			distance[i][j] = maxI32(f, r)
		}
	}
}
