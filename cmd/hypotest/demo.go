package main

import (
	"fmt"
	"math"

	"hypotest/domain/stats"
	"hypotest/internal/hypothesis"

	"github.com/spf13/cobra"
)

// newDemoCmd walks through the classic worked examples, computing each
// statistic with bare arithmetic and cross-checking against the calculator's
// distribution oracle.
func newDemoCmd(calc *hypothesis.Calculator) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Narrated worked examples with hand arithmetic and oracle cross-checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			demoGoodnessOfFit(calc)
			demoIndependence(calc)
			demoOneSampleT(calc)
			return nil
		},
	}
}

func demoGoodnessOfFit(calc *hypothesis.Calculator) {
	fmt.Println("== Goodness of fit: are customer counts uniform across stores? ==")
	observed := []float64{28, 32, 27}

	sum := 0.0
	for _, o := range observed {
		sum += o
	}
	mean := sum / float64(len(observed))
	fmt.Printf("observed %v, so each store expects the mean count %.4f\n", observed, mean)

	byHand := 0.0
	for _, o := range observed {
		byHand += (o - mean) * (o - mean) / mean
	}
	fmt.Printf("by hand: chi2 = sum (O-E)^2/E = %.4f with dof = %d\n", byHand, len(observed)-1)

	result, err := calc.GoodnessOfFit(observed, nil, 0)
	if err != nil {
		fmt.Println("calculator:", err)
		return
	}
	fmt.Printf("calculator: chi2 = %.4f, dof = %.0f, p = %.4f\n", result.Statistic, result.DoF, result.PValue)
	fmt.Printf("for dof 2 the survival function is exp(-x/2) = %.4f, matching the oracle\n\n",
		math.Exp(-result.Statistic/2))
}

func demoIndependence(calc *hypothesis.Calculator) {
	fmt.Println("== Independence: does store choice depend on the response? ==")
	table, err := stats.NewContingencyTable(
		[]string{"Primark", "Debenhams", "Next"},
		[]string{"yes", "no"},
		[][]float64{{28, 61}, {32, 62}, {27, 57}},
	)
	if err != nil {
		fmt.Println("table:", err)
		return
	}

	fmt.Printf("row totals %v, column totals %v, grand total %.0f\n",
		table.RowTotals(), table.ColTotals(), table.GrandTotal())
	fmt.Println("each expected cell is rowTotal*colTotal/grandTotal")

	result, err := calc.ContingencyTest(table)
	if err != nil {
		fmt.Println("calculator:", err)
		return
	}
	fmt.Printf("calculator: chi2 = %.4f, dof = %.0f, p = %.4f\n", result.Statistic, result.DoF, result.PValue)
	fmt.Println("a p-value this large gives no reason to doubt independence")
	fmt.Println()
}

func demoOneSampleT(calc *hypothesis.Calculator) {
	fmt.Println("== One-sample T: is the mean of a small sample really 0.1? ==")
	sample := stats.MustSample(
		0.33, 0.46, 0.15, 0.74, 0.47,
		0.81, 0.28, 0.19, 0.57, 0.62,
		0.09, 0.71, 0.38, 0.52, 0.44,
	)

	mean := sample.Mean()
	s := sample.StdDev()
	n := float64(sample.N())
	byHand := (mean - 0.1) / (s / math.Sqrt(n))
	fmt.Printf("n = %.0f, mean = %.4f, sample std = %.4f\n", n, mean, s)
	fmt.Printf("by hand: t = (mean - 0.1)/(s/sqrt(n)) = %.4f with dof = %.0f\n", byHand, n-1)

	result, err := calc.OneSampleT(sample, 0.1)
	if err != nil {
		fmt.Println("calculator:", err)
		return
	}
	fmt.Printf("calculator: t = %.4f, dof = %.0f, one-tailed p = %.6f, two-tailed p = %.6f\n",
		result.Statistic, result.DoF, result.PValue, result.TwoTailedP())
	fmt.Println("the sample mean sits far above 0.1 relative to its standard error")
}
