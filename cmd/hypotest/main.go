package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"hypotest/adapters/gonumdist"
	"hypotest/adapters/tabular"
	"hypotest/domain/stats"
	"hypotest/internal/config"
	"hypotest/internal/hypothesis"
	"hypotest/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	calc := hypothesis.NewCalculator(gonumdist.NewOracle())

	rootCmd := &cobra.Command{
		Use:   "hypotest",
		Short: "Hypothesis-test calculator: chi-squared, Z and T tests",
	}

	rootCmd.AddCommand(
		newGofCmd(calc, cfg),
		newIndependenceCmd(calc, cfg),
		newZTestCmd(calc, cfg),
		newTTestCmd(calc, cfg),
		newDemoCmd(calc),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGofCmd(calc *hypothesis.Calculator, cfg config.Config) *cobra.Command {
	var expectedCSV string
	var extraParams int
	var alpha float64

	cmd := &cobra.Command{
		Use:   "gof [observed counts...]",
		Short: "Chi-squared goodness-of-fit test over observed counts",
		Long: `Chi-squared goodness-of-fit test. With no --expected the observed counts
are tested against a uniform expectation at their mean.

Example: hypotest gof 28 32 27
         hypotest gof 10 20 30 --expected 1,2,3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			observed, err := parseFloats(args)
			if err != nil {
				return err
			}
			var expected []float64
			if expectedCSV != "" {
				expected, err = parseFloats(strings.Split(expectedCSV, ","))
				if err != nil {
					return err
				}
			}

			result, err := calc.GoodnessOfFit(observed, expected, extraParams)
			if err != nil {
				return err
			}
			// Chi-squared is inherently one-sided at the statistic.
			printReport(report.New(result, stats.OneTailed, alpha))
			return nil
		},
	}
	cmd.Flags().StringVar(&expectedCSV, "expected", "", "comma-separated expected counts (rescaled to the observed total)")
	cmd.Flags().IntVar(&extraParams, "extra-params", 0, "distribution parameters estimated from the data")
	cmd.Flags().Float64Var(&alpha, "alpha", cfg.Alpha, "significance level")
	return cmd
}

func newIndependenceCmd(calc *hypothesis.Calculator, cfg config.Config) *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "independence [table file]",
		Short: "Chi-squared test of independence over a contingency table",
		Long: `Chi-squared test of independence (homogeneity) over an R x C table read
from a CSV or Excel file. The first row holds column labels, the first
column holds row labels.

Example: hypotest independence survey.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tabular.NewDataReader(args[0]).ReadContingencyTable()
			if err != nil {
				return err
			}
			result, err := calc.ContingencyTest(table)
			if err != nil {
				return err
			}
			printReport(report.New(result, stats.OneTailed, alpha))
			return nil
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", cfg.Alpha, "significance level")
	return cmd
}

func newZTestCmd(calc *hypothesis.Calculator, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ztest",
		Short: "Z-tests over summary statistics with known population std",
	}
	cmd.AddCommand(newOneSampleZCmd(calc, cfg), newTwoSampleZCmd(calc, cfg))
	return cmd
}

func newOneSampleZCmd(calc *hypothesis.Calculator, cfg config.Config) *cobra.Command {
	var mean, mu, std, alpha float64
	var n int
	var tailName string

	cmd := &cobra.Command{
		Use:   "one",
		Short: "One-sample Z-test",
		Long:  `Example: hypotest ztest one --mean 5.2 --mu 5.0 --std 1.1 --n 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tail, err := stats.ParseTail(tailName)
			if err != nil {
				return err
			}
			result, err := calc.OneSampleZ(mean, mu, std, n)
			if err != nil {
				return err
			}
			printReport(report.New(result, tail, alpha))
			return nil
		},
	}
	cmd.Flags().Float64Var(&mean, "mean", 0, "sample mean")
	cmd.Flags().Float64Var(&mu, "mu", 0, "population mean under the null")
	cmd.Flags().Float64Var(&std, "std", 0, "population standard deviation")
	cmd.Flags().IntVar(&n, "n", 1, "sample size")
	addTailAlphaFlags(cmd, &tailName, &alpha, cfg)
	cmd.MarkFlagRequired("mean")
	cmd.MarkFlagRequired("std")
	return cmd
}

func newTwoSampleZCmd(calc *hypothesis.Calculator, cfg config.Config) *cobra.Command {
	var mean1, mean2, std1, std2, diff, alpha float64
	var n1, n2 int
	var tailName string

	cmd := &cobra.Command{
		Use:   "two",
		Short: "Two-sample Z-test",
		Long:  `Example: hypotest ztest two --mean1 5.2 --mean2 4.9 --std1 1.1 --std2 1.3 --n1 40 --n2 35`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tail, err := stats.ParseTail(tailName)
			if err != nil {
				return err
			}
			result, err := calc.TwoSampleZ(mean1, mean2, std1, std2, n1, n2, diff)
			if err != nil {
				return err
			}
			printReport(report.New(result, tail, alpha))
			return nil
		},
	}
	cmd.Flags().Float64Var(&mean1, "mean1", 0, "first sample mean")
	cmd.Flags().Float64Var(&mean2, "mean2", 0, "second sample mean")
	cmd.Flags().Float64Var(&std1, "std1", 0, "first population standard deviation")
	cmd.Flags().Float64Var(&std2, "std2", 0, "second population standard deviation")
	cmd.Flags().IntVar(&n1, "n1", 1, "first sample size")
	cmd.Flags().IntVar(&n2, "n2", 1, "second sample size")
	cmd.Flags().Float64Var(&diff, "diff", 0, "hypothesized mean difference")
	addTailAlphaFlags(cmd, &tailName, &alpha, cfg)
	cmd.MarkFlagRequired("std1")
	cmd.MarkFlagRequired("std2")
	return cmd
}

func newTTestCmd(calc *hypothesis.Calculator, cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ttest",
		Short: "T-tests over raw samples",
	}
	cmd.AddCommand(
		newOneSampleTCmd(calc, cfg),
		newTwoSampleTCmd(calc, cfg, "welch", "Welch's two-sample T-test (unequal variances)"),
		newTwoSampleTCmd(calc, cfg, "pooled", "Two-sample T-test with pooled variance"),
		newTwoSampleTCmd(calc, cfg, "paired", "Paired-sample T-test"),
	)
	return cmd
}

func newOneSampleTCmd(calc *hypothesis.Calculator, cfg config.Config) *cobra.Command {
	var mu, alpha float64
	var file, column, tailName string

	cmd := &cobra.Command{
		Use:   "one [values...]",
		Short: "One-sample T-test",
		Long: `One-sample T-test against a hypothesized mean. Observations come from
inline arguments or from a CSV/Excel column.

Example: hypotest ttest one --mu 0.1 0.32 0.08 0.41 0.22
         hypotest ttest one --mu 0.1 --file data.csv --column weight`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tail, err := stats.ParseTail(tailName)
			if err != nil {
				return err
			}
			sample, err := sampleFromInput(args, file, column)
			if err != nil {
				return err
			}
			result, err := calc.OneSampleT(sample, mu)
			if err != nil {
				return err
			}
			printReport(report.New(result, tail, alpha))
			return nil
		},
	}
	cmd.Flags().Float64Var(&mu, "mu", 0, "hypothesized mean under the null")
	cmd.Flags().StringVar(&file, "file", "", "CSV or Excel file to read observations from")
	cmd.Flags().StringVar(&column, "column", "", "column name inside --file")
	addTailAlphaFlags(cmd, &tailName, &alpha, cfg)
	return cmd
}

func newTwoSampleTCmd(calc *hypothesis.Calculator, cfg config.Config, variant, short string) *cobra.Command {
	var diff, alpha float64
	var file, column1, column2, tailName string

	cmd := &cobra.Command{
		Use:   variant,
		Short: short,
		Long: fmt.Sprintf(`%s. Both samples come from columns of one CSV/Excel file.

Example: hypotest ttest %s --file data.csv --column1 before --column2 after`, short, variant),
		RunE: func(cmd *cobra.Command, args []string) error {
			tail, err := stats.ParseTail(tailName)
			if err != nil {
				return err
			}
			reader := tabular.NewDataReader(file)
			s1, err := reader.ReadSample(column1)
			if err != nil {
				return err
			}
			s2, err := reader.ReadSample(column2)
			if err != nil {
				return err
			}

			var result stats.TestResult
			switch variant {
			case "welch":
				result, err = calc.TwoSampleTWelch(s1, s2)
			case "pooled":
				result, err = calc.TwoSampleTPooled(s1, s2)
			case "paired":
				result, err = calc.PairedT(s1, s2, diff)
			}
			if err != nil {
				return err
			}
			printReport(report.New(result, tail, alpha))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "CSV or Excel file holding both columns")
	cmd.Flags().StringVar(&column1, "column1", "", "first sample column name")
	cmd.Flags().StringVar(&column2, "column2", "", "second sample column name")
	if variant == "paired" {
		cmd.Flags().Float64Var(&diff, "diff", 0, "hypothesized mean difference")
	}
	addTailAlphaFlags(cmd, &tailName, &alpha, cfg)
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("column1")
	cmd.MarkFlagRequired("column2")
	return cmd
}

func addTailAlphaFlags(cmd *cobra.Command, tailName *string, alpha *float64, cfg config.Config) {
	cmd.Flags().StringVar(tailName, "tail", string(cfg.Tail), "one-tailed or two-tailed")
	cmd.Flags().Float64Var(alpha, "alpha", cfg.Alpha, "significance level")
}

func printReport(r report.Report) {
	fmt.Println(r.Interpretation())
}

func parseFloats(raw []string) ([]float64, error) {
	vals := make([]float64, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func sampleFromInput(args []string, file, column string) (stats.Sample, error) {
	if file != "" {
		return tabular.NewDataReader(file).ReadSample(column)
	}
	vals, err := parseFloats(args)
	if err != nil {
		return stats.Sample{}, err
	}
	return stats.NewSample(vals)
}
