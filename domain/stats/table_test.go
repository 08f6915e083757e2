package stats

import (
	"testing"

	"hypotest/domain/core"
)

func mustTable(t *testing.T) ContingencyTable {
	t.Helper()
	table, err := NewContingencyTable(
		[]string{"Primark", "Debenhams", "Next"},
		[]string{"yes", "no"},
		[][]float64{{28, 61}, {32, 62}, {27, 57}},
	)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return table
}

func TestContingencyTableTotals(t *testing.T) {
	table := mustTable(t)

	if table.Rows() != 3 || table.Cols() != 2 {
		t.Fatalf("dimensions: got %dx%d", table.Rows(), table.Cols())
	}

	wantRows := []float64{89, 94, 84}
	for i, want := range wantRows {
		if got := table.RowTotals()[i]; got != want {
			t.Fatalf("row total %d: got %v, want %v", i, got, want)
		}
	}
	wantCols := []float64{87, 180}
	for j, want := range wantCols {
		if got := table.ColTotals()[j]; got != want {
			t.Fatalf("col total %d: got %v, want %v", j, got, want)
		}
	}
	if got := table.GrandTotal(); got != 267 {
		t.Fatalf("grand total: got %v, want 267", got)
	}
	if got := table.Count(1, 0); got != 32 {
		t.Fatalf("count(1,0): got %v, want 32", got)
	}
}

func TestContingencyTableValidation(t *testing.T) {
	cases := []struct {
		name   string
		rows   []string
		cols   []string
		counts [][]float64
	}{
		{"no rows", nil, []string{"x"}, nil},
		{"count rows mismatch", []string{"a", "b"}, []string{"x"}, [][]float64{{1}}},
		{"ragged row", []string{"a"}, []string{"x", "y"}, [][]float64{{1}}},
		{"negative cell", []string{"a"}, []string{"x", "y"}, [][]float64{{1, -2}}},
		{"all zero", []string{"a"}, []string{"x", "y"}, [][]float64{{0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewContingencyTable(tc.rows, tc.cols, tc.counts); !core.IsInvalidInputError(err) {
				t.Fatalf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestContingencyTableCopiesInput(t *testing.T) {
	counts := [][]float64{{1, 2}, {3, 4}}
	table, err := NewContingencyTable([]string{"a", "b"}, []string{"x", "y"}, counts)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	counts[0][0] = 99
	if got := table.Count(0, 0); got != 1 {
		t.Fatalf("table shares backing array with caller: got %v", got)
	}
}
