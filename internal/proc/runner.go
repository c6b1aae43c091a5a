package proc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Options controls where and how an external process runs.
type Options struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env entries are appended to the parent environment.
	Env []string
}

// Result is the captured outcome of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner abstracts external process execution so the pipeline can be
// driven against a fake implementation in tests without spawning real
// processes.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// ExecRunner runs processes with os/exec. Every invocation is awaited
// to completion; output is captured rather than streamed.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	res := Result{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return res, fmt.Errorf("%s failed: %w", name, err)
	}
	return res, nil
}
