package stats

import (
	"fmt"

	"hypotest/domain/core"
)

// ContingencyTable maps (row category, column category) to a non-negative
// observed count. Row and column order is preserved from construction so
// derived totals and expected counts line up with the input.
type ContingencyTable struct {
	rows   []string
	cols   []string
	counts [][]float64
}

// NewContingencyTable builds a table from ordered row labels, column labels
// and an R x C matrix of observed counts. All cells must be >= 0 and the
// grand total must be positive.
func NewContingencyTable(rows, cols []string, counts [][]float64) (ContingencyTable, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return ContingencyTable{}, fmt.Errorf("%w: empty rows or columns", core.ErrDegenerateTable)
	}
	if len(counts) != len(rows) {
		return ContingencyTable{}, core.NewLengthMismatchError("count rows", len(counts), len(rows))
	}

	grand := 0.0
	copied := make([][]float64, len(counts))
	for i, row := range counts {
		if len(row) != len(cols) {
			return ContingencyTable{}, core.NewLengthMismatchError(
				fmt.Sprintf("row %q", rows[i]), len(row), len(cols))
		}
		copied[i] = make([]float64, len(row))
		for j, c := range row {
			if c < 0 {
				return ContingencyTable{}, fmt.Errorf("%w: cell (%s, %s) = %g",
					core.ErrNegativeCellCount, rows[i], cols[j], c)
			}
			copied[i][j] = c
			grand += c
		}
	}
	if grand <= 0 {
		return ContingencyTable{}, fmt.Errorf("%w: grand total is zero", core.ErrDegenerateTable)
	}

	rs := make([]string, len(rows))
	copy(rs, rows)
	cs := make([]string, len(cols))
	copy(cs, cols)
	return ContingencyTable{rows: rs, cols: cs, counts: copied}, nil
}

// RowLabels returns the ordered row category labels.
func (t ContingencyTable) RowLabels() []string {
	rs := make([]string, len(t.rows))
	copy(rs, t.rows)
	return rs
}

// ColLabels returns the ordered column category labels.
func (t ContingencyTable) ColLabels() []string {
	cs := make([]string, len(t.cols))
	copy(cs, t.cols)
	return cs
}

// Rows returns the number of row categories.
func (t ContingencyTable) Rows() int { return len(t.rows) }

// Cols returns the number of column categories.
func (t ContingencyTable) Cols() int { return len(t.cols) }

// Count returns the observed count at (i, j).
func (t ContingencyTable) Count(i, j int) float64 {
	return t.counts[i][j]
}

// RowTotals returns the per-row sums of observed counts.
func (t ContingencyTable) RowTotals() []float64 {
	totals := make([]float64, len(t.rows))
	for i, row := range t.counts {
		for _, c := range row {
			totals[i] += c
		}
	}
	return totals
}

// ColTotals returns the per-column sums of observed counts.
func (t ContingencyTable) ColTotals() []float64 {
	totals := make([]float64, len(t.cols))
	for _, row := range t.counts {
		for j, c := range row {
			totals[j] += c
		}
	}
	return totals
}

// GrandTotal returns the sum over all cells.
func (t ContingencyTable) GrandTotal() float64 {
	total := 0.0
	for _, row := range t.counts {
		for _, c := range row {
			total += c
		}
	}
	return total
}
