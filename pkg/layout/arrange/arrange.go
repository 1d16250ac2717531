// Package arrange solves the plug-to-zone assignment problem with a greedy
// exchange heuristic.
//
// Given a cost table with one row per connected plug and one column per
// perimeter zone, [Arrange] picks a distinct column for every row so that the
// total picked cost is low. This is the classical rectangular assignment
// problem, but the implementation is deliberately NOT a minimum-cost solver:
// the optimal Hungarian algorithm is O(n³) and this code re-runs on every
// interactive node move, so a cheap greedy pass with a single swap
// optimization is used instead. For specific inputs the result is provably
// suboptimal; do not "fix" it. Visual stability of the plug placement
// depends on the heuristic behaving exactly like this.
//
// # Algorithm
//
//  1. Pick the cheapest column for every row independently. This is the best
//     possible total but usually invalid (columns collide).
//  2. While any column is picked by more than one row, move the one
//     (row, empty column) pair with the smallest cost increase onto a free
//     column. Ties fall to the first pair found in iteration order.
//  3. Finally, swap the picks of any row pair whose combined cost shrinks by
//     swapping. A single pass only; remaining local improvements are an
//     accepted speed/quality trade-off.
package arrange

import "math"

// CostTable is a dense rows × cols matrix of non-negative assignment costs.
// Rows correspond to plugs, columns to zones. Use [NewCostTable] to create
// one; the zero value is not usable.
type CostTable struct {
	rows, cols int
	cells      []float64
}

// NewCostTable returns a zero-filled cost table with the given dimensions.
// Both dimensions must be positive; NewCostTable panics otherwise because a
// degenerate table indicates a caller bug, not a runtime condition.
func NewCostTable(rows, cols int) *CostTable {
	if rows <= 0 || cols <= 0 {
		panic("arrange: cost table dimensions must be positive")
	}
	return &CostTable{
		rows:  rows,
		cols:  cols,
		cells: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows (plugs).
func (t *CostTable) Rows() int { return t.rows }

// Cols returns the number of columns (zones).
func (t *CostTable) Cols() int { return t.cols }

// At returns the cost at (row, col).
func (t *CostTable) At(row, col int) float64 {
	return t.cells[row*t.cols+col]
}

// Set stores the cost at (row, col).
func (t *CostTable) Set(row, col int, cost float64) {
	t.cells[row*t.cols+col] = cost
}

// Arrange returns one column index per row such that no two rows share a
// column, approximately minimizing the total cost. The returned slice has
// length t.Rows() and values in [0, t.Cols()).
//
// The caller must guarantee t.Rows() <= t.Cols(); the zone builder upholds
// this by construction (zone count is always >= connected plug count). If
// the contract is violated anyway, Arrange degrades instead of crashing:
// the first Cols() rows receive a proper conflict-free assignment and every
// overflow row keeps its per-row cheapest column, which may collide. The
// degraded result is safe to render (plugs overlap visually) but is not a
// permutation.
func Arrange(t *CostTable) []int {
	rows := t.rows
	capped := min(rows, t.cols)

	// Best possible solution as the first guess. Most likely invalid.
	guess := make([]int, rows)
	for row := 0; row < rows; row++ {
		minCost := math.MaxFloat64
		for col := 0; col < t.cols; col++ {
			if cell := t.At(row, col); cell < minCost {
				minCost = cell
				guess[row] = col
			}
		}
	}
	if capped < rows {
		// Contract violation: resolve conflicts among the rows that fit,
		// leave the rest on their arg-min.
		resolveConflicts(t, guess[:capped])
		swapPass(t, guess[:capped])
		return guess
	}

	resolveConflicts(t, guess)
	swapPass(t, guess)
	return guess
}

// resolveConflicts mutates guess until every row holds a distinct column.
// Each iteration moves one conflicting row onto the empty column with the
// globally smallest cost delta. Terminates because every iteration consumes
// one empty column and len(guess) <= t.cols guarantees enough of them.
func resolveConflicts(t *CostTable, guess []int) {
	problemRows := conflictedRows(guess)

	taken := make([]bool, t.cols)
	for _, col := range guess {
		taken[col] = true
	}
	var emptyColumns []int
	for col := 0; col < t.cols; col++ {
		if !taken[col] {
			emptyColumns = append(emptyColumns, col)
		}
	}

	for len(problemRows) > 0 {
		// The marginal cost of moving a problem row off its contested
		// column onto a free one. First found wins on ties.
		minDelta := math.MaxFloat64
		inRow, inCol := -1, -1
		for ri, row := range problemRows {
			current := t.At(row, guess[row])
			for ci, col := range emptyColumns {
				if delta := t.At(row, col) - current; delta < minDelta {
					minDelta = delta
					inRow, inCol = ri, ci
				}
			}
		}

		guess[problemRows[inRow]] = emptyColumns[inCol]
		emptyColumns = append(emptyColumns[:inCol], emptyColumns[inCol+1:]...)

		// The vacated column may be contested differently now, so the
		// conflict set is recomputed from scratch.
		problemRows = conflictedRows(guess)
	}
}

// conflictedRows returns the rows whose chosen column is shared with at
// least one other row.
func conflictedRows(guess []int) []int {
	counts := make(map[int]int, len(guess))
	for _, col := range guess {
		counts[col]++
	}
	var problem []int
	for row, col := range guess {
		if counts[col] > 1 {
			problem = append(problem, row)
		}
	}
	return problem
}

// swapPass exchanges the columns of any two rows whose combined cost is
// lower after the swap. One pass over all unordered pairs, not iterated to
// a fixed point.
func swapPass(t *CostTable, guess []int) {
	for left := 0; left < len(guess); left++ {
		for right := left + 1; right < len(guess); right++ {
			currentSum := t.At(left, guess[left]) + t.At(right, guess[right])
			swapSum := t.At(left, guess[right]) + t.At(right, guess[left])
			if swapSum < currentSum {
				guess[left], guess[right] = guess[right], guess[left]
			}
		}
	}
}
