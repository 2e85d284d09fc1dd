// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
// SPDX-FileCopyrightText: © 2026 The compression-algorithms Authors
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt generates pseudo random English text for tests. Words are
// drawn from a small weighted vocabulary and grouped into sentences and
// lines, which gives the text realistic redundancy for the context models.
package randtxt

import (
	"math/rand"
	"sort"
)

type word struct {
	s string
	w float64
}

var vocabulary = []word{
	{"the", 62}, {"of", 29}, {"and", 28}, {"to", 26}, {"a", 22},
	{"in", 19}, {"is", 10}, {"that", 10}, {"it", 9}, {"was", 9},
	{"for", 8}, {"on", 7}, {"with", 7}, {"as", 7}, {"he", 6},
	{"be", 6}, {"by", 6}, {"at", 5}, {"from", 5}, {"his", 5},
	{"this", 5}, {"have", 4}, {"not", 4}, {"are", 4}, {"but", 4},
	{"which", 3}, {"they", 3}, {"one", 3}, {"you", 3}, {"all", 3},
	{"were", 3}, {"her", 3}, {"she", 3}, {"there", 3}, {"would", 2},
	{"their", 2}, {"will", 2}, {"when", 2}, {"who", 2}, {"him", 2},
	{"been", 2}, {"has", 2}, {"more", 2}, {"if", 2}, {"no", 2},
	{"out", 2}, {"so", 2}, {"said", 2}, {"what", 2}, {"up", 2},
	{"its", 2}, {"about", 2}, {"into", 2}, {"than", 2}, {"them", 2},
	{"can", 2}, {"only", 2}, {"other", 2}, {"new", 2}, {"some", 2},
	{"could", 1}, {"time", 1}, {"these", 1}, {"two", 1}, {"may", 1},
	{"then", 1}, {"do", 1}, {"first", 1}, {"any", 1}, {"my", 1},
	{"now", 1}, {"such", 1}, {"like", 1}, {"our", 1}, {"over", 1},
	{"man", 1}, {"me", 1}, {"even", 1}, {"most", 1}, {"made", 1},
	{"after", 1}, {"also", 1}, {"did", 1}, {"many", 1}, {"before", 1},
	{"must", 1}, {"through", 1}, {"back", 1}, {"years", 1}, {"where", 1},
	{"much", 1}, {"your", 1}, {"way", 1}, {"well", 1}, {"down", 1},
	{"should", 1}, {"because", 1}, {"each", 1}, {"just", 1}, {"those", 1},
	{"people", 1}, {"how", 1}, {"too", 1}, {"little", 1}, {"state", 1},
	{"good", 1}, {"very", 1}, {"make", 1}, {"world", 1}, {"still", 1},
	{"own", 1}, {"see", 1}, {"men", 1}, {"work", 1}, {"long", 1},
	{"get", 1}, {"here", 1}, {"between", 1}, {"both", 1}, {"life", 1},
	{"being", 1}, {"under", 1}, {"never", 1}, {"day", 1}, {"same", 1},
	{"another", 1}, {"know", 1}, {"while", 1}, {"last", 1}, {"might", 1},
	{"us", 1}, {"great", 1}, {"old", 1}, {"year", 1}, {"off", 1},
	{"come", 1}, {"since", 1}, {"against", 1}, {"go", 1}, {"came", 1},
	{"right", 1}, {"used", 1}, {"take", 1}, {"three", 1}, {"compression", 1},
	{"arithmetic", 1}, {"probability", 1}, {"context", 1}, {"model", 1},
}

// cdf holds the cumulative distribution of the vocabulary.
var cdf = func() []float64 {
	c := make([]float64, len(vocabulary))
	sum := 0.0
	for _, w := range vocabulary {
		sum += w.w
	}
	x := 0.0
	for i, w := range vocabulary {
		x += w.w / sum
		if x > 1.0 {
			x = 1.0
		}
		c[i] = x
	}
	if !sort.Float64sAreSorted(c) {
		panic("randtxt: cdf not sorted")
	}
	return c
}()

// lineLen is the maximum length of a line.
const lineLen = 72

// Reader produces an endless stream of text.
type Reader struct {
	rnd  *rand.Rand
	buf  []byte
	col  int
	left int
}

// NewReader returns a text reader using the given source of randomness.
func NewReader(src rand.Source) *Reader {
	return &Reader{rnd: rand.New(src)}
}

func (r *Reader) word() string {
	i := sort.SearchFloat64s(cdf, r.rnd.Float64())
	if i >= len(vocabulary) {
		i = len(vocabulary) - 1
	}
	return vocabulary[i].s
}

// fill appends the next word to the buffer.
func (r *Reader) fill() {
	w := []byte(r.word())
	start := r.left == 0
	if start {
		r.left = 4 + r.rnd.Intn(12)
		w[0] -= 'a' - 'A'
	}
	r.left--
	if r.left == 0 {
		w = append(w, '.')
	} else if r.rnd.Intn(16) == 0 {
		w = append(w, ',')
	}
	switch {
	case r.col == 0:
	case r.col+1+len(w) > lineLen:
		r.buf = append(r.buf, '\n')
		r.col = 0
	default:
		r.buf = append(r.buf, ' ')
		r.col++
	}
	r.buf = append(r.buf, w...)
	r.col += len(w)
}

// Read fills p with text. It never returns an error.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.buf) == 0 {
			r.fill()
		}
		k := copy(p[n:], r.buf)
		r.buf = r.buf[k:]
		n += k
	}
	return n, nil
}

// Text returns n bytes of text generated with the given seed.
func Text(seed int64, n int) []byte {
	p := make([]byte, n)
	NewReader(rand.NewSource(seed)).Read(p)
	return p
}
