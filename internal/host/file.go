package host

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/filex"
)

// FileHost stands in for the compositing application from the command line:
// the selection is a script file picked with Select, and importing copies the
// artifact into OutDir, or prints it to Out when OutDir is empty.
type FileHost struct {
	OutDir string
	Out    io.Writer

	selection string
}

func NewFileHost(outDir string, out io.Writer) *FileHost {
	return &FileHost{OutDir: outDir, Out: out}
}

// Select stages path as the selection. It must be an existing regular file.
func (h *FileHost) Select(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("select %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("select %s: not a regular file", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	h.selection = abs
	return nil
}

func (h *FileHost) Selection() string { return h.selection }

func (h *FileHost) ClearSelection() { h.selection = "" }

func (h *FileHost) HasSelection() bool { return h.selection != "" }

func (h *FileHost) Export(ctx context.Context, path string) error {
	if !h.HasSelection() {
		return common.ErrNothingSelected
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return filex.CopyFile(h.selection, path)
}

func (h *FileHost) Import(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if h.OutDir != "" {
		dst := filepath.Join(h.OutDir, filepath.Base(path))
		if err := filex.CopyFile(path, dst); err != nil {
			return err
		}
		if h.Out != nil {
			fmt.Fprintf(h.Out, "pasted into %s\n", dst)
		}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	out := h.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.Copy(out, f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
