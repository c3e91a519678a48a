// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"golang.org/x/sync/errgroup"
)

// NumMasks is the number of mask patterns.
const NumMasks = 8

// maskFuncs[i](x, y) returns zero where mask pattern i inverts the
// data module in column x, row y.
var maskFuncs = [NumMasks]func(x, y int) int{
	func(x, y int) int { return (x + y) & 1 },
	func(x, y int) int { return y & 1 },
	func(x, y int) int { return x % 3 },
	func(x, y int) int { return (x + y) % 3 },
	func(x, y int) int { return (y/2 + x/3) & 1 },
	func(x, y int) int { return x*y&1 + x*y%3 },
	func(x, y int) int { return (x*y&1 + x*y%3) & 1 },
	func(x, y int) int { return (x*y%3 + (x+y)&1) & 1 },
}

// ApplyMask returns a copy of m with mask pattern mask applied to the
// data modules and the format information for level l written.
func ApplyMask(m *Matrix, l Level, mask int) *Matrix {
	f := maskFuncs[mask]
	c := m.Clone()
	w := c.Size
	for y := 0; y < w; y++ {
		row := c.Cells[y*w : (y+1)*w]
		for x, v := range row {
			if v&CellReserved == 0 && f(x, y) == 0 {
				row[x] = v ^ CellDark
			}
		}
	}
	WriteFormat(c, l, mask)
	return c
}

// WriteFormat writes the format information for level l and mask
// pattern mask to both copies of the format area of m.
func WriteFormat(m *Matrix, l Level, mask int) {
	w := m.Size
	format := FormatBits(l, mask)
	for i := 0; i < 8; i++ {
		c := formatCell | byte(format&1)
		m.Set(w-1-i, 8, c)
		if i < 6 {
			m.Set(8, i, c)
		} else {
			m.Set(8, i+1, c)
		}
		format >>= 1
	}
	for i := 0; i < 7; i++ {
		c := formatCell | byte(format&1)
		m.Set(8, w-7+i, c)
		if i == 0 {
			m.Set(7, 8, c)
		} else {
			m.Set(6-i, 8, c)
		}
		format >>= 1
	}
}

// Penalty weights.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// Penalty returns the penalty score of m used for choosing the mask:
// the sum of the four rules N1 (runs of five or more), N2 (2x2
// blocks), N3 (finder-like 1:1:3:1:1 patterns with a light margin of
// four) and N4 (dark module balance).  The light quiet zone counts as
// margin for N3.
func Penalty(m *Matrix) int {
	w := m.Size
	p := 0
	runs := make([]int, 0, w+1)
	col := make([]byte, w)
	for i := 0; i < w; i++ {
		p += linePenalty(m.Cells[i*w:(i+1)*w], runs)
		for y := range col {
			col[y] = m.Cells[y*w+i]
		}
		p += linePenalty(col, runs)
	}

	dark := 0
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			c := m.Cells[y*w+x] & CellDark
			dark += int(c)
			if x > 0 && y > 0 &&
				c == m.Cells[y*w+x-1]&CellDark &&
				c == m.Cells[(y-1)*w+x]&CellDark &&
				c == m.Cells[(y-1)*w+x-1]&CellDark {
				p += penaltyN2
			}
		}
	}

	pct := dark * 100 / (w * w)
	p += abs(pct-50) / 5 * penaltyN4
	return p
}

// linePenalty returns the N1 and N3 penalties of a row or column.
// runs is scratch space.
func linePenalty(line []byte, runs []int) int {
	// runs alternate light and dark, starting with a possibly
	// empty light run.
	runs = append(runs[:0], 0)
	cur := byte(0)
	for _, c := range line {
		if c&CellDark != cur {
			cur ^= CellDark
			runs = append(runs, 0)
		}
		runs[len(runs)-1]++
	}

	p := 0
	for _, n := range runs {
		if n >= 5 {
			p += penaltyN1 + n - 5
		}
	}

	// Dark runs have odd indices.  Light runs at either end border
	// the quiet zone.
	margin := func(i int) bool {
		return i <= 0 || i >= len(runs)-1 || runs[i] >= 4
	}
	for i := 3; i+2 < len(runs); i += 2 {
		if runs[i] == 3 && runs[i-2] == 1 && runs[i-1] == 1 &&
			runs[i+1] == 1 && runs[i+2] == 1 &&
			(margin(i-3) || margin(i+3)) {
			p += penaltyN3
		}
	}
	return p
}

// A MaskPolicy selects the mask patterns evaluated by SelectMask.
// The zero value is BestMask.
type MaskPolicy struct {
	kind maskKind
	n    int    // mask for fixed, sample size for sampled
	seed uint64 // sampled
}

type maskKind int

const (
	maskBest maskKind = iota
	maskFixed
	maskSampled
)

// BestMask evaluates all eight mask patterns and chooses the one with
// the lowest penalty, the lowest numbered on ties.
func BestMask() MaskPolicy { return MaskPolicy{} }

// FixedMask uses mask pattern n without evaluating penalties.
func FixedMask(n int) MaskPolicy { return MaskPolicy{kind: maskFixed, n: n} }

// SampledMask evaluates k mask patterns chosen pseudo-randomly from
// seed and chooses the best of them.
func SampledMask(k int, seed uint64) MaskPolicy {
	return MaskPolicy{kind: maskSampled, n: k, seed: seed}
}

func (p MaskPolicy) String() string {
	switch p.kind {
	case maskFixed:
		return fmt.Sprintf("fixed(%d)", p.n)
	case maskSampled:
		return fmt.Sprintf("sampled(%d)", p.n)
	}
	return "best"
}

// IsValid reports whether p names a mask pattern or a sample size
// from 1 to 8.
func (p MaskPolicy) IsValid() bool {
	switch p.kind {
	case maskBest:
		return true
	case maskFixed:
		return 0 <= p.n && p.n < NumMasks
	case maskSampled:
		return 1 <= p.n && p.n <= NumMasks
	}
	return false
}

// Candidates returns the mask patterns p evaluates, in increasing
// order.
func (p MaskPolicy) Candidates() []int {
	if !p.IsValid() {
		panic(InternalError("invalid mask policy " + p.String()))
	}
	switch p.kind {
	case maskFixed:
		return []int{p.n}
	case maskSampled:
		r := rand.New(rand.NewPCG(p.seed, p.seed^0x9e3779b97f4a7c15))
		c := r.Perm(NumMasks)[:p.n]
		slices.Sort(c)
		return c
	}
	return []int{0, 1, 2, 3, 4, 5, 6, 7}
}

// Selection is the result of SelectMask.
type Selection struct {
	Matrix  *Matrix
	Mask    int
	Penalty int
}

// SelectMask applies the candidate masks of policy to the placed
// matrix m and returns the one with the lowest penalty.  With more
// than one worker, candidates are evaluated concurrently.  A fixed
// mask is still scored.
func SelectMask(m *Matrix, l Level, policy MaskPolicy, workers int) Selection {
	cand := policy.Candidates()
	res := make([]Selection, len(cand))
	eval := func(i int) {
		mm := ApplyMask(m, l, cand[i])
		res[i] = Selection{mm, cand[i], Penalty(mm)}
	}
	if workers > 1 && len(cand) > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range cand {
			g.Go(func() error {
				eval(i)
				return nil
			})
		}
		g.Wait()
	} else {
		for i := range cand {
			eval(i)
		}
	}
	best := res[0]
	for _, r := range res[1:] {
		if r.Penalty < best.Penalty {
			best = r
		}
	}
	return best
}
