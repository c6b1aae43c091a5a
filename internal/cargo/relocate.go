package cargo

import (
	"io"
	"os"
	"path/filepath"
)

// Relocate copies the executables into a fresh scratch directory,
// preserving file names, and returns their new paths in input order.
// Build output lives under the checked-out branch's target directory;
// a later checkout can make those paths stop referring to the same
// binaries, so they are copied out before any branch switch.
func Relocate(executables []string) ([]string, error) {
	dir, err := os.MkdirTemp("", "criterion-compare-")
	if err != nil {
		return nil, &CopyError{Err: err}
	}

	relocated := make([]string, 0, len(executables))
	for _, exe := range executables {
		dst := filepath.Join(dir, filepath.Base(exe))
		if err := copyFile(exe, dst); err != nil {
			return nil, &CopyError{Path: exe, Err: err}
		}
		relocated = append(relocated, dst)
	}
	return relocated, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
