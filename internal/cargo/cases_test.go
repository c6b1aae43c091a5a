package cargo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexkirsz/criterion-compare-action/internal/proc"
)

const listOutput = `full prompt: bench
incremental parse: bench
warming up
not a case line
render/large table: bench
`

func TestListCases(t *testing.T) {
	fake := &fakeRunner{respond: func(name string, args []string) (proc.Result, error) {
		return proc.Result{Stdout: listOutput}, nil
	}}
	c := testCargo(fake)

	names, err := c.ListCases(context.Background(), "/tmp/bench-exe")
	require.NoError(t, err)

	assert.Equal(t, []string{"full prompt", "incremental parse", "render/large table"}, names)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "/tmp/bench-exe", fake.calls[0].name)
	assert.Equal(t, []string{"--bench", "--list"}, fake.calls[0].args)
}

func TestListCases_Failure(t *testing.T) {
	fake := &fakeRunner{respond: func(string, []string) (proc.Result, error) {
		return proc.Result{Stderr: "no such file", ExitCode: 127}, errors.New("exec failed")
	}}
	c := testCargo(fake)

	_, err := c.ListCases(context.Background(), "/tmp/missing")
	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, "/tmp/missing", runErr.Executable)
}

func TestCatalog_LastExecutableWins(t *testing.T) {
	fake := &fakeRunner{respond: func(name string, args []string) (proc.Result, error) {
		switch name {
		case "/tmp/first":
			return proc.Result{Stdout: "bench_a: bench\nbench_b: bench\n"}, nil
		case "/tmp/second":
			return proc.Result{Stdout: "bench_a: bench\nbench_c: bench\n"}, nil
		}
		return proc.Result{}, errors.New("unexpected executable")
	}}
	c := testCargo(fake)

	catalog, err := c.Catalog(context.Background(), []string{"/tmp/first", "/tmp/second"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"bench_a": "/tmp/second",
		"bench_b": "/tmp/first",
		"bench_c": "/tmp/second",
	}, catalog)
}

func TestRunCase(t *testing.T) {
	fake := &fakeRunner{}
	c := testCargo(fake)

	require.NoError(t, c.RunCase(context.Background(), "/tmp/bench-exe", "full prompt", "changes"))

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "/tmp/bench-exe", fake.calls[0].name)
	assert.Equal(t, []string{"--bench", "full prompt", "--exact", "--save-baseline", "changes"}, fake.calls[0].args)
}

func TestRunCase_Failure(t *testing.T) {
	fake := &fakeRunner{respond: func(string, []string) (proc.Result, error) {
		return proc.Result{Stderr: "panicked at 'boom'"}, errors.New("exit status 101")
	}}
	c := testCargo(fake)

	err := c.RunCase(context.Background(), "/tmp/bench-exe", "full prompt", "base")
	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, "full prompt", runErr.Case)
	assert.Contains(t, runErr.Stderr, "panicked")
}
