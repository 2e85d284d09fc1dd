// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

/*
Package model provides the building blocks of the bit predictors: adaptive
counters, the stretch and squash transforms, bit-history states, state maps,
adaptive probability maps, the logistic mixer and a slot hash table.

All probabilities are 12-bit fixed point values giving the probability that
the next bit is 1. The stretched domain covers [-2047, 2047].

None of the types is safe for concurrent use. A predictor owns its tables and
a table must not be shared between predictors.
*/
package model
