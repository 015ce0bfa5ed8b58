package exec

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSolution extracts the model from solver output. It accepts both the
// competition format ("s ..." status and "v ..." value lines) and the bare
// format minisat-like solvers write to their output file ("SAT" followed by
// the literals). The terminating 0 is dropped.
func parseSolution(solverOutput string) ([]int32, error) {
	values := make([]int32, 0)
	for _, line := range strings.Split(solverOutput, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "", line == "SAT", line == "UNSAT", line == "INDET":
			continue
		case line[0] == 'c' || line[0] == 's':
			continue
		case line[0] == 'v':
			line = line[1:]
		}

		for _, valueStr := range strings.Fields(line) {
			value, err := strconv.ParseInt(valueStr, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid literal in solver output: %w", err)
			}
			if value != 0 {
				values = append(values, int32(value))
			}
		}
	}
	return values, nil
}
