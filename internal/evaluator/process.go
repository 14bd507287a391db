package evaluator

import (
	"bytes"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/ashlang/ash/internal/ast"
	"github.com/google/uuid"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

// ProcessEngine starts OS processes on behalf of spawn and pipeline
// expressions and tracks every live one so they can be reaped when the
// script dies.
type ProcessEngine struct {
	mu   sync.Mutex
	live map[string]*exec.Cmd
	log  commonlog.Logger
}

func NewProcessEngine() *ProcessEngine {
	return &ProcessEngine{
		live: make(map[string]*exec.Cmd),
		log:  commonlog.GetLogger("ash.process"),
	}
}

func (pe *ProcessEngine) track(id string, cmd *exec.Cmd) {
	pe.mu.Lock()
	pe.live[id] = cmd
	pe.mu.Unlock()
}

func (pe *ProcessEngine) untrack(id string) {
	pe.mu.Lock()
	delete(pe.live, id)
	pe.mu.Unlock()
}

// KillAll terminates and reaps every process still tracked. Called when a
// fatal error aborts the script so pipelines don't outlive it.
func (pe *ProcessEngine) KillAll() {
	pe.mu.Lock()
	defer pe.mu.Unlock()
	for id, cmd := range pe.live {
		if cmd.Process != nil {
			pe.log.Infof("killing %s (pid %d)", id, cmd.Process.Pid)
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
		delete(pe.live, id)
	}
}

// killStarted kills and reaps stages that were already running when a later
// stage failed to start, so none of them is left as a zombie.
func (pe *ProcessEngine) killStarted(cmds []*exec.Cmd, ids []string) {
	for j, cmd := range cmds {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
		pe.untrack(ids[j])
	}
}

type spawnSpec struct {
	program string
	args    []string
}

func (e *Evaluator) evalSpawn(node *ast.SpawnExpression, env *Environment) Object {
	spec, errObj := e.resolveSpawn(node, env)
	if errObj != nil {
		return errObj
	}
	return e.Engine.Run(spec)
}

func (e *Evaluator) evalPipeline(node *ast.PipelineExpression, env *Environment) Object {
	specs := make([]spawnSpec, 0, len(node.Stages))
	for _, stage := range node.Stages {
		spec, errObj := e.resolveSpawn(stage, env)
		if errObj != nil {
			return errObj
		}
		specs = append(specs, spec)
	}
	return e.Engine.RunPipeline(specs)
}

// resolveSpawn evaluates a spawn's program and arguments. Arguments must be
// strings or ints; ints render in decimal.
func (e *Evaluator) resolveSpawn(node *ast.SpawnExpression, env *Environment) (spawnSpec, Object) {
	program := e.Eval(node.Program, env)
	if isError(program) {
		return spawnSpec{}, program
	}
	prog, ok := program.(*Str)
	if !ok {
		return spawnSpec{}, newError("program name must be a string, got %s", program.Type())
	}

	args := make([]string, 0, len(node.Args))
	for _, argExpr := range node.Args {
		arg := e.Eval(argExpr, env)
		if isError(arg) {
			return spawnSpec{}, arg
		}
		switch a := arg.(type) {
		case *Str:
			args = append(args, a.Value)
		case *Integer:
			args = append(args, strconv.FormatInt(a.Value, 10))
		default:
			return spawnSpec{}, newError("process arguments must be strings or ints, got %s", arg.Type())
		}
	}

	return spawnSpec{program: prog.Value, args: args}, nil
}

// Run starts a single process, waits for it, and captures its stdout. The
// child inherits stdin and stderr. A failure to start is fatal; a non-zero
// exit is a recoverable fault.
func (pe *ProcessEngine) Run(spec spawnSpec) Object {
	id := uuid.NewString()
	cmd := exec.Command(spec.program, spec.args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	pe.log.Debugf("spawn %s: %s %s", id, spec.program, strings.Join(spec.args, " "))
	if err := cmd.Start(); err != nil {
		return newError("failed to start '%s': %v", spec.program, err)
	}
	pe.track(id, cmd)
	defer pe.untrack(id)

	code, err := waitExitCode(cmd)
	if err != nil {
		return newError("process '%s' failed: %v", spec.program, err)
	}

	proc := &Process{ID: id, Program: spec.program, Out: out.String(), Codes: []int64{code}}
	if code != 0 {
		return newFault(FaultProcessNonZeroExit, "process '%s' exited with code %d",
			spec.program, code)
	}
	return proc
}

// RunPipeline wires stages stdout-to-stdin with OS pipes, starts them all
// concurrently, and waits for every stage before reporting. Only the last
// stage's stdout is captured.
func (pe *ProcessEngine) RunPipeline(specs []spawnSpec) Object {
	if len(specs) == 1 {
		return pe.Run(specs[0])
	}

	cmds := make([]*exec.Cmd, len(specs))
	ids := make([]string, len(specs))
	for i, spec := range specs {
		cmds[i] = exec.Command(spec.program, spec.args...)
		cmds[i].Stderr = os.Stderr
		ids[i] = uuid.NewString()
	}

	var out bytes.Buffer
	cmds[0].Stdin = os.Stdin
	cmds[len(cmds)-1].Stdout = &out

	var pipes []*os.File
	for i := 0; i < len(cmds)-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			closeAll(pipes)
			return newError("failed to create pipe: %v", err)
		}
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
		pipes = append(pipes, r, w)
	}

	for i, cmd := range cmds {
		pe.log.Debugf("pipeline stage %d (%s): %s", i, ids[i], specs[i].program)
		if err := cmd.Start(); err != nil {
			pe.killStarted(cmds[:i], ids[:i])
			closeAll(pipes)
			return newError("failed to start '%s': %v", specs[i].program, err)
		}
		pe.track(ids[i], cmd)
	}

	// The children hold their own pipe ends now. Close the parent's copies
	// so each stage sees EOF when its upstream exits.
	closeAll(pipes)

	codes := make([]int64, len(cmds))
	var g errgroup.Group
	for i := range cmds {
		i := i
		g.Go(func() error {
			defer pe.untrack(ids[i])
			code, err := waitExitCode(cmds[i])
			codes[i] = code
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return newError("pipeline failed: %v", err)
	}

	last := len(specs) - 1
	proc := &Process{
		ID:      ids[last],
		Program: specs[last].program,
		Out:     out.String(),
		Codes:   codes,
	}
	for i, code := range codes {
		if code != 0 {
			return newFault(FaultProcessNonZeroExit,
				"pipeline stage '%s' exited with code %d", specs[i].program, code)
		}
	}
	return proc
}

// waitExitCode reaps a started command. Exit statuses, including signals,
// come back as codes; anything else is an I/O level failure.
func waitExitCode(cmd *exec.Cmd) (int64, error) {
	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return int64(cmd.ProcessState.ExitCode()), nil
	}
	return -1, err
}

func closeAll(files []*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
