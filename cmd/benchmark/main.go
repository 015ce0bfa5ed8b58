package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/limaJavier/incsat/pkg/backend/cadical"
	"github.com/limaJavier/incsat/pkg/backend/exec"
	_ "github.com/limaJavier/incsat/pkg/backend/gini"

	"github.com/limaJavier/incsat/internal/config"
	"github.com/limaJavier/incsat/pkg/sat"
)

type ResultType int

const (
	satisfiable ResultType = iota
	unsatisfiable
	timeout
	wrong
)

var resultTypes = map[ResultType]string{
	satisfiable:   "satisfiable",
	unsatisfiable: "unsatisfiable",
	timeout:       "timeout",
	wrong:         "wrong",
}

type TestMetadata struct {
	Name     string
	Formula  sat.Formula
	Expected sat.Status
}

type BenchmarkResult struct {
	Backend  string
	Test     TestMetadata
	Duration int64
	Result   ResultType
}

type benchmarkOptions struct {
	configPath string
	output     string
	backends   []string
	random     int
}

func main() {
	opts := &benchmarkOptions{}
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Benchmark the registered solver backends on generated instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or YAML configuration file")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "benchmark_results.csv", "CSV file the results are written to")
	cmd.Flags().StringSliceVar(&opts.backends, "backends", nil, "backends to benchmark, all registered ones by default")
	cmd.Flags().IntVar(&opts.random, "random", 5, "number of random instances")

	if err := cmd.Execute(); err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
}

func runBenchmark(opts *benchmarkOptions) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	if err := exec.Register(cfg.Executables, exec.WithLogger(logger), exec.WithPollInterval(cfg.PollInterval)); err != nil {
		return err
	}

	backends := opts.backends
	if len(backends) == 0 {
		backends = sat.Backends()
	}
	tests := getTests(opts.random)
	results := make([]BenchmarkResult, 0, len(tests)*len(backends))

	for _, test := range tests {
		for _, backend := range backends {
			logger.Info("benchmarking", zap.String("test", test.Name), zap.String("backend", backend))

			duration, result, err := measure(backend, test, cfg.Timeout)
			if err != nil {
				return err
			}
			results = append(results, BenchmarkResult{
				Backend:  backend,
				Test:     test,
				Duration: duration,
				Result:   result,
			})
		}
	}

	file, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()
	return toCsv(file, results)
}

func getTests(random int) []TestMetadata {
	tests := lo.Map([]int32{4, 6, 8, 9}, func(n int32, _ int) TestMetadata {
		return TestMetadata{
			Name:     fmt.Sprintf("pigeonhole-%d", n),
			Formula:  sat.Pigeonhole(n),
			Expected: sat.Unsatisfiable,
		}
	})

	for i := range random {
		tests = append(tests, TestMetadata{
			Name:     fmt.Sprintf("random-%d", i),
			Formula:  sat.RandomFormula(200, 1000),
			Expected: sat.Unset,
		})
	}
	return tests
}

// measure solves the test once on a fresh solver. A satisfiable answer is
// checked against the formula and an answer contradicting the expected one
// is reported as wrong.
func measure(backend string, test TestMetadata, limit time.Duration) (duration int64, result ResultType, err error) {
	var opts []sat.Option
	if limit > 0 {
		opts = append(opts, sat.WithTerminator(sat.NewTimeout(limit)))
	}
	solver, err := sat.New(backend, opts...)
	if err != nil {
		return 0, 0, err
	}
	defer solver.Close()

	solver.AddFormula(test.Formula)
	start := time.Now()
	status := solver.Solve()
	duration = time.Since(start).Milliseconds()

	switch {
	case status == sat.Indeterminate:
		result = timeout
	case test.Expected != sat.Unset && status != test.Expected:
		result = wrong
	case status == sat.Satisfiable && !test.Formula.Satisfies(solver.Model(test.Formula.Variables)):
		result = wrong
	case status == sat.Satisfiable:
		result = satisfiable
	default:
		result = unsatisfiable
	}
	return duration, result, nil
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Backend", "Test", "Variables", "Clauses", "Duration(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Backend,
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Formula.Variables),
			fmt.Sprintf("%d", len(result.Test.Formula.Clauses)),
			fmt.Sprintf("%d", result.Duration),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}
	return nil
}
