package emit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var separatorReplacer = strings.NewReplacer(".", "_", "/", "_")

// FileName derives the descriptor file name for a declaration identity.
// Distinct identities that only differ in their separators collide.
func FileName(class string, format Format) string {
	return separatorReplacer.Replace(class) + format.Extension()
}

// ensureDir creates the output directory and its parents if missing.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	return nil
}

// writeFile truncates path and fills it through a buffered writer.
// The file is closed on every return path.
func writeFile(path string, fill func(w io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("opening descriptor: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing descriptor: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)

	if err := fill(bw); err != nil {
		return fmt.Errorf("writing descriptor: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing descriptor: %w", err)
	}

	return nil
}
