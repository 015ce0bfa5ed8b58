// Package exec turns external DIMACS solver executables (kissat, cadical,
// minisat, ...) into engines for the sat package.
//
// Each Solve writes the clauses added so far, plus the assumptions as unit
// clauses, to a fresh solver process. This is not incremental, but it gives
// every solver that follows the SAT competition conventions the same
// interface as a native binding. The registered terminator is polled while
// the process runs and the process is killed when it asks to stop. Failed
// assumptions are computed on demand by re-running the solver without each
// assumption in turn, which yields a minimal unsatisfiable subset.
package exec

import (
	"bytes"
	"fmt"
	"os"
	osexec "os/exec"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/limaJavier/incsat/pkg/sat"
)

// DefaultPollInterval is how often a running process polls the terminator.
const DefaultPollInterval = 10 * time.Millisecond

// killWaitDelay bounds how long Wait keeps reading output once the solver
// process has exited.
const killWaitDelay = time.Second

// Register registers one "exec/<dialect>" backend per entry of executables,
// which maps dialect names to executable paths. Dialects already registered
// are left alone.
func Register(executables map[string]string, opts ...Option) error {
	registered := sat.Backends()
	for name, path := range executables {
		dialect, ok := LookupDialect(name)
		if !ok {
			return fmt.Errorf("unknown solver dialect %q (known: %v)", name, Dialects())
		}
		if slices.Contains(registered, BackendName(name)) {
			continue
		}
		sat.Register(BackendName(name), func() sat.Engine { return New(dialect, path, opts...) })
	}
	return nil
}

// BackendName returns the sat backend name of a dialect.
func BackendName(dialect string) string {
	return "exec/" + dialect
}

// Engine runs one solver process per solve.
type Engine struct {
	dialect      Dialect
	path         string
	workDir      string
	pollInterval time.Duration
	logger       *zap.Logger

	clauses [][]sat.Lit
	current []sat.Lit
	maxVar  int32

	assumptions []sat.Lit
	poll        func() bool

	// Results of the last solve.
	model           map[int32]bool
	lastAssumptions []sat.Lit
	core            map[int32]bool
	err             error
}

type Option func(*Engine)

// WithPollInterval sets the interval between two polls of the terminator.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.pollInterval = d
		}
	}
}

// WithWorkDir sets the directory for the temporary instance and model files.
// The default is os.TempDir().
func WithWorkDir(dir string) Option {
	return func(e *Engine) {
		e.workDir = dir
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an engine running the executable at path, which follows
// dialect.
func New(dialect Dialect, path string, opts ...Option) *Engine {
	e := &Engine{
		dialect:      dialect,
		path:         path,
		workDir:      os.TempDir(),
		pollInterval: DefaultPollInterval,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Signature() string {
	return fmt.Sprintf("%v (%v)", e.dialect.Name, e.path)
}

func (e *Engine) Add(lit int32) {
	if lit == 0 {
		e.clauses = append(e.clauses, e.current)
		e.current = nil
		return
	}
	e.current = append(e.current, sat.Lit(lit))
	e.maxVar = max(e.maxVar, sat.Lit(lit).Var())
}

func (e *Engine) Assume(lit int32) {
	e.assumptions = append(e.assumptions, sat.Lit(lit))
	e.maxVar = max(e.maxVar, sat.Lit(lit).Var())
}

// Solve runs the executable. A process that cannot be started, crashes or
// prints garbage yields an indeterminate result; Err tells why.
func (e *Engine) Solve() int {
	e.lastAssumptions, e.assumptions = e.assumptions, nil
	e.model, e.core, e.err = nil, nil, nil

	code, model, err := e.run(e.lastAssumptions, e.poll)
	if err != nil {
		e.err = err
		e.logger.Warn("solver process failed", zap.String("solver", e.dialect.Name), zap.Error(err))
		return sat.CodeUnknown
	}
	if code == sat.CodeSatisfiable {
		e.model = lo.SliceToMap(model, func(lit int32) (int32, bool) { return lit, true })
	}
	return code
}

// Err returns the error of the last solve, if it was indeterminate because
// the process failed.
func (e *Engine) Err() error {
	return e.err
}

func (e *Engine) Val(lit int32) int32 {
	switch {
	case e.model[lit]:
		return lit
	case e.model[-lit]:
		return -lit
	default:
		return 0
	}
}

// Failed reports whether lit belongs to the failed assumptions of the last
// solve. The first call after a solve computes them, which runs the solver
// again up to once per assumption plus once, so it may take as long as the
// solve itself several times over. The registered terminator is polled
// during these runs too.
func (e *Engine) Failed(lit int32) int {
	if e.core == nil {
		e.core = e.minimizeCore()
	}
	if e.core[lit] {
		return 1
	}
	return 0
}

// minimizeCore shrinks the assumptions of the last solve to a minimal subset
// that is still unsatisfiable together with the clauses. A run that fails or
// is stopped by the terminator keeps the assumption under test, so the result
// over-approximates rather than losing a necessary member.
func (e *Engine) minimizeCore() map[int32]bool {
	core := make(map[int32]bool)
	if len(e.lastAssumptions) == 0 {
		return core
	}
	if code, _, err := e.run(nil, e.poll); err == nil && code == sat.CodeUnsatisfiable {
		return core
	}

	candidates := lo.Uniq(e.lastAssumptions)
	for i := 0; i < len(candidates); {
		without := append(append([]sat.Lit{}, candidates[:i]...), candidates[i+1:]...)
		code, _, err := e.run(without, e.poll)
		if err == nil && code == sat.CodeUnsatisfiable {
			candidates = without
			continue
		}
		i++
	}

	for _, lit := range candidates {
		core[int32(lit)] = true
	}
	return core
}

func (e *Engine) SetTerminate(poll func() bool) {
	e.poll = poll
}

func (e *Engine) Release() {
	e.clauses, e.current, e.assumptions = nil, nil, nil
	e.model, e.core, e.poll = nil, nil, nil
}

func (e *Engine) formula(assumptions []sat.Lit) sat.Formula {
	clauses := make([][]sat.Lit, 0, len(e.clauses)+len(assumptions))
	clauses = append(clauses, e.clauses...)
	for _, lit := range assumptions {
		clauses = append(clauses, []sat.Lit{lit})
	}
	return sat.Formula{Variables: e.maxVar, Clauses: clauses}
}

// run solves the clauses under assumptions in a new process. If poll is not
// nil and returns true the process is killed and the result is unknown.
func (e *Engine) run(assumptions []sat.Lit, poll func() bool) (code int, model []int32, err error) {
	dimacs := e.formula(assumptions).ToDIMACS() // Transform into DIMACS-CNF string format

	cmd := osexec.Command(e.path, e.dialect.Args...)
	if e.dialect.InputFile {
		// Create a temporary file to hold the DIMACS content
		inputFile, err := writeTempFile(e.workDir, "dimacs-*.cnf", dimacs)
		if err != nil {
			return 0, nil, err
		}
		defer os.Remove(inputFile) // Ensure the file is removed after execution
		cmd.Args = append(cmd.Args, inputFile)
	} else {
		cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into the solver's standard input
	}

	var outputFile string
	if e.dialect.OutputFile {
		outputFile, err = writeTempFile(e.workDir, e.dialect.Name+"_output-*.cnf", "")
		if err != nil {
			return 0, nil, err
		}
		defer os.Remove(outputFile)
		cmd.Args = append(cmd.Args, outputFile)
	}

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	stopped, err := e.wait(cmd, poll)
	if stopped {
		return sat.CodeUnknown, nil, nil
	}
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != sat.CodeSatisfiable && exitCode != sat.CodeUnsatisfiable {
		return 0, nil, fmt.Errorf("an error occurred during %v execution: %w: %v", e.dialect.Name, err, stdErr.String())
	} else if exitCode == sat.CodeUnsatisfiable {
		return sat.CodeUnsatisfiable, nil, nil
	} else if exitCode != sat.CodeSatisfiable {
		return 0, nil, fmt.Errorf("%v exited with unexpected code %d", e.dialect.Name, exitCode)
	}

	output := stdOut.String()
	if e.dialect.OutputFile {
		content, err := os.ReadFile(outputFile) // Read the output file
		if err != nil {
			return 0, nil, fmt.Errorf("failed to read output file: %w", err)
		}
		output = string(content)
	}

	model, err = parseSolution(output)
	if err != nil {
		return 0, nil, err
	}
	return sat.CodeSatisfiable, model, nil
}

// wait runs cmd to completion, polling poll meanwhile. It reports whether the
// process was killed because poll asked to stop.
func (e *Engine) wait(cmd *osexec.Cmd, poll func() bool) (stopped bool, err error) {
	startGroup(cmd)
	// Output pipes held by an orphaned grandchild must not block Wait.
	cmd.WaitDelay = killWaitDelay
	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("cannot start %v: %w", e.path, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	if poll == nil {
		return false, <-done
	}

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()
	for {
		if poll() {
			if err := killGroup(cmd); err != nil {
				e.logger.Warn("cannot kill solver process", zap.String("solver", e.dialect.Name), zap.Error(err))
			}
			<-done
			return true, nil
		}
		select {
		case err := <-done:
			return false, err
		case <-ticker.C:
		}
	}
}

func writeTempFile(dir, pattern, content string) (string, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return file.Name(), nil
}
