package cargo

import "fmt"

// BuildError reports a failed benchmark compilation. The whole run is
// aborted; no partial comparison is attempted.
type BuildError struct {
	Stderr string
	Err    error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("benchmark build failed: %v", e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// RunError reports a failed benchmark executable invocation.
type RunError struct {
	Executable string
	Case       string
	Stderr     string
	Err        error
}

func (e *RunError) Error() string {
	if e.Case != "" {
		return fmt.Sprintf("benchmark case %q failed in %s: %v", e.Case, e.Executable, e.Err)
	}
	return fmt.Sprintf("benchmark executable %s failed: %v", e.Executable, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// CopyError reports a failed executable relocation.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("relocating %s failed: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("relocation failed: %v", e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
