package exec

import (
	"slices"

	"github.com/samber/lo"
)

// Dialect describes how to run one family of DIMACS solver executables. All
// of them exit with 10 for satisfiable and 20 for unsatisfiable.
type Dialect struct {
	Name string
	Args []string
	// InputFile passes the instance as a file argument instead of on the
	// standard input.
	InputFile bool
	// OutputFile passes a second file argument the solver writes its model
	// to, instead of printing "v" lines on the standard output.
	OutputFile bool
}

var dialects = map[string]Dialect{
	"kissat":        {Name: "kissat", Args: []string{"-q", "--relaxed"}},
	"cadical":       {Name: "cadical", Args: []string{"-q"}},
	"cryptominisat": {Name: "cryptominisat", Args: []string{"--verb", "0"}},
	"minisat":       {Name: "minisat", Args: []string{"-verb=0"}, InputFile: true, OutputFile: true},
	"glucosesimp":   {Name: "glucosesimp", Args: []string{"-verb=0"}, InputFile: true, OutputFile: true},
	"glucosesyrup":  {Name: "glucosesyrup", Args: []string{"-verb=0"}, InputFile: true, OutputFile: true},
	"slime":         {Name: "slime", InputFile: true},
	"ortoolsat":     {Name: "ortoolsat", InputFile: true},
}

// LookupDialect returns the dialect with the given name.
func LookupDialect(name string) (Dialect, bool) {
	dialect, ok := dialects[name]
	return dialect, ok
}

// Dialects returns the sorted names of the known dialects.
func Dialects() []string {
	names := lo.Keys(dialects)
	slices.Sort(names)
	return names
}
