// Copyright 2026 The Cmult Authors
// This file is part of cmult-go.
//
// cmult-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmult-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with cmult-go. If not, see <http://www.gnu.org/licenses/>.

package search

import "github.com/sirupsen/logrus"

// Leapfrog4 enumerates the 4-parameter leapfrog topology
// e*(a +/- b) +/- a*d over terms1 x terms2 x terms4 x terms5, relaxing the
// table against all four sign variants.
//
// Loop nesting and the parity-pruning continues inside it reference
// parameters by position and must not be reordered.
func Leapfrog4(t *Table, terms1, terms2, terms4, terms5 []uint64, layer uint8, log logrus.FieldLogger) {
	log.WithField("terms1_count", len(terms1)).
		WithField("terms2_count", len(terms2)).
		WithField("terms4_count", len(terms4)).
		WithField("terms5_count", len(terms5)).
		WithField("cost", layer).
		Debug("leapfrog4: starting")

	for _, a := range terms1 {
		wa := widen(a)
		aOdd := isEven(a) == false
		for _, b := range terms2 {
			if isEven(a) && isEven(b) {
				continue
			}
			wb := widen(b)
			for _, d := range terms4 {
				if isEven(a) && isEven(d) {
					continue
				}
				wd := widen(d)
				for _, e := range terms5 {
					if isEven(d) && isEven(e) {
						continue
					}
					we := widen(e)
					eOdd := isEven(e) == false
					bothOddAGEe := aOdd && eOdd && a >= e

					sumAB := addW(wa, wb)
					diffAB := absDiffW(wa, wb)
					ad := mulW(wa, wd)

					// Leapfrog4_1: e*(a+b) + a*d
					if v, ok := toBoundedU64(oddKernelWide(addW(mulW(we, sumAB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
						if !bothOddAGEe && !(b == d && a >= e) {
							t.relax(v, layer, Graph{Tag: TagLeapfrog4_1, Params: []uint64{a, b, d, e}})
						}
					}

					// Leapfrog4_2: |e*(a+b) - a*d|
					if v, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(we, sumAB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
						if !bothOddAGEe {
							t.relax(v, layer, Graph{Tag: TagLeapfrog4_2, Params: []uint64{a, b, d, e}})
						}
					}

					// Leapfrog4_3: e*|a-b| + a*d
					if v, ok := toBoundedU64(oddKernelWide(addW(mulW(we, diffAB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
						if !bothOddAGEe && !(b == 1 && d == 1 && isEven(a) && isEven(e)) {
							t.relax(v, layer, Graph{Tag: TagLeapfrog4_3, Params: []uint64{a, b, d, e}})
						}
					}

					// Leapfrog4_4: |e*|a-b| - a*d|
					if v, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(we, diffAB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
						if !bothOddAGEe && !(a >= e && b == 1 && d == 1) {
							t.relax(v, layer, Graph{Tag: TagLeapfrog4_4, Params: []uint64{a, b, d, e}})
						}
					}
				}
			}
		}
	}
}

// Leapfrog5 enumerates the 5-parameter topology e*(a*c +/- b) +/- a*d over
// terms1 x terms2 x terms3 x terms4 x terms5.
func Leapfrog5(t *Table, terms1, terms2, terms3, terms4, terms5 []uint64, layer uint8, log logrus.FieldLogger) {
	log.WithField("terms1_count", len(terms1)).
		WithField("terms2_count", len(terms2)).
		WithField("terms3_count", len(terms3)).
		WithField("terms4_count", len(terms4)).
		WithField("terms5_count", len(terms5)).
		WithField("cost", layer).
		Debug("leapfrog5: starting")

	for _, a := range terms1 {
		wa := widen(a)
		aOdd := OddKernel(a) == a
		for _, b := range terms2 {
			if isEven(a) && isEven(b) {
				continue
			}
			wb := widen(b)
			for _, c := range terms3 {
				if OddKernel(c) == 1 {
					continue
				}
				if (isEven(a) || isEven(b)) && isEven(c) {
					continue
				}
				wc := widen(c)
				for _, d := range terms4 {
					if (isEven(a) || isEven(c)) && isEven(d) {
						continue
					}
					wd := widen(d)
					for _, e := range terms5 {
						if (isEven(c) || isEven(d)) && isEven(e) {
							continue
						}
						we := widen(e)
						eOdd := OddKernel(e) == e
						bothOddAGEe := aOdd && eOdd && a >= e

						ac := mulW(wa, wc)
						acPlusB := addW(ac, wb)
						acDiffB := absDiffW(ac, wb)
						ad := mulW(wa, wd)

						// Leapfrog5_1: e*(a*c+b) + a*d; skipped only when b == d
						if v, ok := toBoundedU64(oddKernelWide(addW(mulW(we, acPlusB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
							if b != d {
								t.relax(v, layer, Graph{Tag: TagLeapfrog5_1, Params: []uint64{a, b, c, d, e}})
							}
						}

						// Leapfrog5_2: |e*(a*c+b) - a*d|
						if v, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(we, acPlusB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
							if !bothOddAGEe {
								t.relax(v, layer, Graph{Tag: TagLeapfrog5_2, Params: []uint64{a, b, c, d, e}})
							}
						}

						// Leapfrog5_3: e*|a*c-b| + a*d
						if v, ok := toBoundedU64(oddKernelWide(addW(mulW(we, acDiffB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
							trivialCascade := b == 1 && d == 1
							symmetricOverflow := b == d && d > c*e && a >= e
							if !trivialCascade && !symmetricOverflow && !bothOddAGEe {
								t.relax(v, layer, Graph{Tag: TagLeapfrog5_3, Params: []uint64{a, b, c, d, e}})
							}
						}

						// Leapfrog5_4: |e*|a*c-b| - a*d|
						if v, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(we, acDiffB), ad)), t.TableMax); ok && t.Cost[v] >= layer {
							degenerate := a >= e && b == 1 && d == 1 && isEven(a) && isEven(e)
							if !bothOddAGEe && !degenerate {
								t.relax(v, layer, Graph{Tag: TagLeapfrog5_4, Params: []uint64{a, b, c, d, e}})
							}
						}
					}
				}
			}
		}
	}
}

// Leapfrog7 enumerates the 7-parameter topology
// g*(e*(a*c +/- b) +/- a*d) +/- f*(a*c +/- b) over 7 frontiers, relaxing
// against all 8 sign variants. No symmetry predicate is known for this
// family: the parity continues are its only pruning.
func Leapfrog7(t *Table, terms1, terms2, terms3, terms4, terms5, terms6, terms7 []uint64, layer uint8, log logrus.FieldLogger) {
	log.WithField("terms1_count", len(terms1)).
		WithField("terms2_count", len(terms2)).
		WithField("terms3_count", len(terms3)).
		WithField("terms4_count", len(terms4)).
		WithField("terms5_count", len(terms5)).
		WithField("terms6_count", len(terms6)).
		WithField("terms7_count", len(terms7)).
		WithField("cost", layer).
		Debug("leapfrog7: starting")

	for _, a := range terms1 {
		wa := widen(a)
		for _, b := range terms2 {
			if isEven(a) && isEven(b) {
				continue
			}
			wb := widen(b)
			for _, c := range terms3 {
				if isEven(b) && isEven(c) {
					continue
				}
				wc := widen(c)
				ac := mulW(wa, wc)
				p := addW(ac, wb)     // a*c + b
				m := absDiffW(ac, wb) // |a*c - b|
				for _, d := range terms4 {
					if (isEven(b) || isEven(c)) && isEven(d) {
						continue
					}
					wd := widen(d)
					v := mulW(wa, wd) // a*d
					for _, e := range terms5 {
						if isEven(d) && isEven(e) {
							continue
						}
						we := widen(e)
						for _, f := range terms6 {
							if (isEven(d) || isEven(e)) && isEven(f) {
								continue
							}
							wf := widen(f)
							for _, g := range terms7 {
								if isEven(f) && isEven(g) {
									continue
								}
								wg := widen(g)

								params := []uint64{a, b, c, d, e, f, g}

								epPlusV := addW(mulW(we, p), v)
								epMinusV := absDiffW(mulW(we, p), v)
								emPlusV := addW(mulW(we, m), v)
								emMinusV := absDiffW(mulW(we, m), v)

								// 7_1: g*(e*P+v) + f*P
								if val, ok := toBoundedU64(oddKernelWide(addW(mulW(wg, epPlusV), mulW(wf, p))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_1, Params: params})
								}
								// 7_2: g*(e*M+v) + f*M
								if val, ok := toBoundedU64(oddKernelWide(addW(mulW(wg, emPlusV), mulW(wf, m))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_2, Params: params})
								}
								// 7_3: g*|e*P-v| + f*P
								if val, ok := toBoundedU64(oddKernelWide(addW(mulW(wg, epMinusV), mulW(wf, p))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_3, Params: params})
								}
								// 7_4: |g*(e*P+v) - f*P|
								if val, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(wg, epPlusV), mulW(wf, p))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_4, Params: params})
								}
								// 7_5: g*|e*M-v| + f*M
								if val, ok := toBoundedU64(oddKernelWide(addW(mulW(wg, emMinusV), mulW(wf, m))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_5, Params: params})
								}
								// 7_6: |g*(e*M+v) - f*M|
								if val, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(wg, emPlusV), mulW(wf, m))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_6, Params: params})
								}
								// 7_7: |g*|e*P-v| - f*P|
								if val, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(wg, epMinusV), mulW(wf, p))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_7, Params: params})
								}
								// 7_8: |g*|e*M-v| - f*M|
								if val, ok := toBoundedU64(oddKernelWide(absDiffW(mulW(wg, emMinusV), mulW(wf, m))), t.TableMax); ok && t.Cost[val] >= layer {
									t.relax(val, layer, Graph{Tag: TagLeapfrog7_8, Params: params})
								}
							}
						}
					}
				}
			}
		}
	}
}
