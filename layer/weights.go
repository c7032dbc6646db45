// SPDX-License-Identifier: MIT

// Package layer - weight storage (row-major int8) & structural edits.
//
// Purpose:
//   - Keep the whole matrix in one flat buffer with the index formula i*cols + j.
//   - Every structural edit builds a NEW buffer and swaps it in only on success,
//     so a failed edit never leaves a half-shifted matrix and no earlier copy
//     of a row is ever aliased by later storage.
//
// Complexity quicksheet:
//   - at: O(1); row copy: O(c); insertRow/appendCol/deleteCol: O(r*c); equal: O(r*c).
package layer

// weights is a concrete row-major int8 matrix.
//   - r,c hold dimensions (neurons, inputs+1).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type weights struct {
	r, c int    // row and column counts (>0)
	data []int8 // contiguous row-major storage (len == r*c)
}

// newWeights allocates an r×c zero matrix. Callers validate the shape.
// Complexity: O(r*c).
func newWeights(rows, cols int) weights {
	return weights{r: rows, c: cols, data: make([]int8, rows*cols)}
}

// rowView returns row i as a sub-slice of data (no copy, internal only).
func (w *weights) rowView(i int) []int8 {
	return w.data[i*w.c : (i+1)*w.c]
}

// at reads (i, j) without bounds checks (callers validate).
func (w *weights) at(i, j int) int8 {
	return w.data[i*w.c+j]
}

// clone returns an independent deep copy.
// Complexity: O(r*c).
func (w *weights) clone() weights {
	cp := make([]int8, len(w.data))
	copy(cp, w.data)

	return weights{r: w.r, c: w.c, data: cp}
}

// insertRow places row at position index (0 ≤ index ≤ r) and shifts the rest down.
// Implementation:
//   - Stage 1: allocate (r+1)*c.
//   - Stage 2: copy rows [0,index), the new row, rows [index,r).
//   - Stage 3: swap buffers.
//
// Complexity: O(r*c).
func (w *weights) insertRow(index int, row []int8) {
	buf := make([]int8, (w.r+1)*w.c)
	split := index * w.c

	copy(buf, w.data[:split])             // rows above the insertion point
	copy(buf[split:], row)                // the new row
	copy(buf[split+w.c:], w.data[split:]) // rows shifted down by one
	w.data = buf
	w.r++
}

// appendCol appends column values (len == r) as the new last column.
//
// Complexity: O(r*c).
func (w *weights) appendCol(col []int8) {
	nc := w.c + 1
	buf := make([]int8, w.r*nc)

	var i int
	for i = 0; i < w.r; i++ {
		copy(buf[i*nc:i*nc+w.c], w.rowView(i)) // existing weights keep their columns
		buf[i*nc+w.c] = col[i]                 // new weight goes last
	}
	w.data = buf
	w.c = nc
}

// deleteCol removes column index (0 ≤ index < c) from every row.
//
// Complexity: O(r*c).
func (w *weights) deleteCol(index int) {
	nc := w.c - 1
	buf := make([]int8, w.r*nc)

	var (
		i   int
		src []int8
		dst []int8
	)
	for i = 0; i < w.r; i++ {
		src = w.rowView(i)
		dst = buf[i*nc : (i+1)*nc]
		copy(dst, src[:index])
		copy(dst[index:], src[index+1:])
	}
	w.data = buf
	w.c = nc
}

// equal reports identical shape and identical entries.
// Complexity: O(r*c).
func (w *weights) equal(o *weights) bool {
	if w.r != o.r || w.c != o.c {
		return false
	}
	var i int
	for i = range w.data {
		if w.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
