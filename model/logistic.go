// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

package model

// squashPoints are the values of 4096/(1+exp(-x/256)) for x = -2048, -1920,
// ..., 2048.
var squashPoints = [33]int{
	1, 2, 3, 6, 10, 16, 27, 45, 73, 120, 194, 310, 488, 747, 1101,
	1546, 2047, 2549, 2994, 3348, 3607, 3785, 3901, 3975, 4022,
	4050, 4068, 4079, 4085, 4089, 4092, 4093, 4094,
}

// Squash maps the stretched domain to a probability. The function
// interpolates linearly between the squash points. Values outside of
// [-2047, 2047] are saturated.
func Squash(d int) int {
	if d > 2047 {
		return 4095
	}
	if d < -2047 {
		return 0
	}
	w := d & 127
	i := (d >> 7) + 16
	return (squashPoints[i]*(128-w) + squashPoints[i+1]*w + 64) >> 7
}

// stretchTable is the inverse of Squash.
var stretchTable [4096]int16

func init() {
	pi := 0
	for x := -2047; x <= 2047; x++ {
		v := Squash(x)
		for i := pi; i <= v; i++ {
			stretchTable[i] = int16(x)
		}
		pi = v + 1
	}
	for i := pi; i < len(stretchTable); i++ {
		stretchTable[i] = 2047
	}
}

// Stretch returns ln(p/(1-p)) scaled to the range [-2047, 2047]. The
// argument p must be in the range [0, 4095].
func Stretch(p int) int { return int(stretchTable[p]) }

// ClampP restricts a probability to the open interval accepted by the range
// coder.
func ClampP(p int) int {
	if p < 1 {
		return 1
	}
	if p > 4095 {
		return 4095
	}
	return p
}
